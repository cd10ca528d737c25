package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tipsplit/pkg/api"
)

// callInfo is filled in by inner interceptors so the logger, which runs
// outside them, can report what they found.
type callInfo struct {
	sessionID string
}

type callInfoKey struct{}

// noteSessionID records the session a call was authenticated for.
func noteSessionID(ctx context.Context, sessionID string) {
	if info, ok := ctx.Value(callInfoKey{}).(*callInfo); ok {
		info.sessionID = sessionID
	}
}

// LoggingInterceptor logs one line per RPC with its outcome, the session it
// ran for and, when a form or calculation came back, the resulting totals.
// Install it outside the auth interceptors so rejected calls are logged too.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			info := &callInfo{}

			resp, err := next(context.WithValue(ctx, callInfoKey{}, info), req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("protocol", req.Peer().Protocol),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if info.sessionID != "" {
				attrs = append(attrs, slog.String("session_id", info.sessionID))
			}

			if err != nil {
				code := connect.CodeOf(err)
				attrs = append(attrs, slog.String("code", code.String()), slog.String("error", errorMessage(err)))
				slog.LogAttrs(ctx, levelFor(code), "RPC failed", attrs...)
				return resp, err
			}

			if resp != nil {
				attrs = append(attrs, resultAttrs(resp.Any())...)
			}
			slog.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
			return resp, err
		}
	}
}

// levelFor logs caller mistakes as warnings and everything else as errors.
func levelFor(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeUnauthenticated,
		connect.CodePermissionDenied, connect.CodeCanceled, connect.CodeDeadlineExceeded:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}

func resultAttrs(msg any) []slog.Attr {
	switch m := msg.(type) {
	case *api.FormResponse:
		if m.Form == nil {
			return nil
		}
		return []slog.Attr{
			slog.Bool("actionable", m.Form.Actionable),
			slog.Int("split", m.Form.SplitCount),
			slog.Int("tip_percentage", m.Form.TipPercentage),
			slog.String("per_person", m.Form.TotalPerPersonDisplay),
		}
	case *api.CreateSessionResponse:
		return []slog.Attr{slog.String("session_id", m.SessionID)}
	case *api.CalculateResponse:
		if m.Breakdown == nil {
			return nil
		}
		return []slog.Attr{
			slog.Int("split", m.Breakdown.SplitCount),
			slog.Int("tip_percentage", m.Breakdown.TipPercentage),
			slog.String("per_person", m.Breakdown.TotalPerPersonDisplay),
		}
	}
	return nil
}
