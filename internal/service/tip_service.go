package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/mmynk/tipsplit/internal/auth"
	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/middleware"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
	pb "github.com/mmynk/tipsplit/pkg/api"
	"github.com/mmynk/tipsplit/pkg/api/apiconnect"
)

// TipService implements the Connect TipService
type TipService struct {
	apiconnect.UnimplementedTipServiceHandler
	store       storage.SessionStore
	jwtManager  *auth.JWTManager
	metrics     *metrics.Metrics
	sliderSteps int
}

// Option configures a TipService.
type Option func(*TipService)

// WithMetrics records calculations and form events on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *TipService) { s.metrics = m }
}

// WithSliderSteps sets the default slider steps for new sessions.
func WithSliderSteps(steps int) Option {
	return func(s *TipService) { s.sliderSteps = steps }
}

// NewTipService creates a new TipService with the given session store and token manager.
func NewTipService(store storage.SessionStore, jwtManager *auth.JWTManager, opts ...Option) *TipService {
	s := &TipService{
		store:       store,
		jwtManager:  jwtManager,
		sliderSteps: form.DefaultSliderSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateCalculation checks the inputs the calculator leaves to its callers.
func validateCalculation(bill float64, split int) error {
	if math.IsNaN(bill) || math.IsInf(bill, 0) {
		return fmt.Errorf("bill_amount must be a finite number")
	}
	if bill < 0 {
		return form.ErrNegativeBill
	}
	if bill > form.MaxBillAmount {
		return form.ErrBillTooLarge
	}
	if split < calculator.MinSplitCount {
		return fmt.Errorf("split_count must be at least %d, got %d", calculator.MinSplitCount, split)
	}
	return nil
}

// Calculate handles a stateless tip and split calculation
func (s *TipService) Calculate(ctx context.Context, req *connect.Request[pb.CalculateRequest]) (*connect.Response[pb.CalculateResponse], error) {
	msg := req.Msg
	if err := validateCalculation(msg.BillAmount, msg.SplitCount); err != nil {
		slog.Error("Calculate validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	pct := calculator.ClampTipPercentage(msg.TipPercentage)
	if pct != msg.TipPercentage {
		slog.Debug("Clamped tip percentage", "requested", msg.TipPercentage, "used", pct)
	}

	tip := calculator.CalculateTip(msg.BillAmount, pct)
	perPerson := calculator.CalculateTotalPerPerson(msg.BillAmount, msg.SplitCount, pct)
	s.metrics.ObserveCalculation("calculate")

	slog.Debug("Calculated split",
		"bill", msg.BillAmount,
		"split", msg.SplitCount,
		"tip_percentage", pct,
		"tip", tip,
		"per_person", perPerson,
	)

	return connect.NewResponse(&pb.CalculateResponse{
		Breakdown: toBreakdown(msg.BillAmount, msg.SplitCount, pct, tip, perPerson),
	}), nil
}

// CreateSession starts a new form session and returns its token.
func (s *TipService) CreateSession(ctx context.Context, req *connect.Request[pb.CreateSessionRequest]) (*connect.Response[pb.CreateSessionResponse], error) {
	session := models.NewSession(form.New(s.formOptions(req.Msg.SliderSteps)...))
	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(session.ID)
	if err != nil {
		slog.Error("Failed to generate session token", "session_id", session.ID, "error", err)
		_ = s.store.DeleteSession(ctx, session.ID)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Session created", "session_id", session.ID, "slider_steps", session.Form.SliderSteps)
	return connect.NewResponse(&pb.CreateSessionResponse{
		SessionID: session.ID,
		Token:     token,
		Form:      toAPIForm(session),
	}), nil
}

// GetForm returns the session's current form.
func (s *TipService) GetForm(ctx context.Context, req *connect.Request[pb.GetFormRequest]) (*connect.Response[pb.FormResponse], error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.FormResponse{Form: toAPIForm(session)}), nil
}

// EditBill records typed bill text. Changing the text clears the totals
// until the bill is committed again.
func (s *TipService) EditBill(ctx context.Context, req *connect.Request[pb.EditBillRequest]) (*connect.Response[pb.FormResponse], error) {
	return s.respond(s.apply(ctx, "edit_bill", func(f form.State) form.State {
		return form.EditBill(f, req.Msg.Text)
	}))
}

// CommitBill commits the bill text. An unparsable bill is still recorded
// (the form becomes non-actionable) and reported as InvalidArgument.
func (s *TipService) CommitBill(ctx context.Context, req *connect.Request[pb.CommitBillRequest]) (*connect.Response[pb.FormResponse], error) {
	var parseErr error
	session, err := s.apply(ctx, "commit_bill", func(f form.State) form.State {
		next, err := form.CommitBill(f, req.Msg.Text)
		parseErr = err
		return next
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		slog.Debug("Bill rejected", "session_id", session.ID, "text", req.Msg.Text, "error", parseErr)
		return nil, connect.NewError(connect.CodeInvalidArgument, parseErr)
	}
	return s.respond(session, nil)
}

// IncrementSplit adds a person to the split.
func (s *TipService) IncrementSplit(ctx context.Context, req *connect.Request[pb.IncrementSplitRequest]) (*connect.Response[pb.FormResponse], error) {
	return s.respond(s.apply(ctx, "increment_split", form.IncrementSplit))
}

// DecrementSplit removes a person from the split, stopping at one.
func (s *TipService) DecrementSplit(ctx context.Context, req *connect.Request[pb.DecrementSplitRequest]) (*connect.Response[pb.FormResponse], error) {
	return s.respond(s.apply(ctx, "decrement_split", form.DecrementSplit))
}

// MoveSlider moves the tip slider.
func (s *TipService) MoveSlider(ctx context.Context, req *connect.Request[pb.MoveSliderRequest]) (*connect.Response[pb.FormResponse], error) {
	pos := req.Msg.Position
	if math.IsNaN(pos) || pos < 0 || pos > 1 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("position must be between 0 and 1, got %v", pos))
	}
	return s.respond(s.apply(ctx, "move_slider", func(f form.State) form.State {
		return form.MoveSlider(f, pos)
	}))
}

// SetTipPercentage sets an exact tip percentage, clamped to [0, 100].
func (s *TipService) SetTipPercentage(ctx context.Context, req *connect.Request[pb.SetTipPercentageRequest]) (*connect.Response[pb.FormResponse], error) {
	return s.respond(s.apply(ctx, "set_tip_percentage", func(f form.State) form.State {
		return form.SetTipPercentage(f, req.Msg.TipPercentage)
	}))
}

// EndSession deletes the session.
func (s *TipService) EndSession(ctx context.Context, req *connect.Request[pb.EndSessionRequest]) (*connect.Response[pb.EndSessionResponse], error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return nil, storeError("EndSession", sessionID, err)
	}
	slog.Info("Session ended", "session_id", sessionID)
	return connect.NewResponse(&pb.EndSessionResponse{}), nil
}

// loadSession fetches the session named by the request's token.
func (s *TipService) loadSession(ctx context.Context) (*models.Session, error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeError("GetSession", sessionID, err)
	}
	return session, nil
}

// apply runs one form handler against the caller's session and stores the result.
func (s *TipService) apply(ctx context.Context, event string, handler func(form.State) form.State) (*models.Session, error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	session, err := s.store.ModifySession(ctx, sessionID, handler)
	if err != nil {
		return nil, storeError("ModifySession", sessionID, err)
	}

	s.metrics.ObserveFormEvent(event)
	if session.Form.Actionable {
		s.metrics.ObserveCalculation("form")
	}

	slog.Debug("Form updated",
		"session_id", session.ID,
		"event", event,
		"split", session.Form.SplitCount,
		"tip_percentage", session.Form.TipPercentage,
		"per_person", session.Form.TotalPerPerson,
	)
	return session, nil
}

// respond returns the changed form with a token that expires with the
// session's new deadline.
func (s *TipService) respond(session *models.Session, err error) (*connect.Response[pb.FormResponse], error) {
	if err != nil {
		return nil, err
	}
	token, err := s.jwtManager.Generate(session.ID)
	if err != nil {
		slog.Error("Failed to refresh session token", "session_id", session.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&pb.FormResponse{Form: toAPIForm(session), Token: token}), nil
}

func storeError(op, sessionID string, err error) error {
	if errors.Is(err, storage.ErrSessionNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", "session_id", sessionID, "error", err)
	return connect.NewError(connect.CodeInternal, err)
}
