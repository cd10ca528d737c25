// Package apiconnect wires the tipsplit TipService to Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tipsplit/pkg/api"
)

// TipServiceName is the fully-qualified name of the TipService service.
const TipServiceName = "tipsplit.v1.TipService"

// Procedure paths, relative to the server's base URL.
const (
	TipServiceCalculateProcedure        = "/tipsplit.v1.TipService/Calculate"
	TipServiceCreateSessionProcedure    = "/tipsplit.v1.TipService/CreateSession"
	TipServiceGetFormProcedure          = "/tipsplit.v1.TipService/GetForm"
	TipServiceEditBillProcedure         = "/tipsplit.v1.TipService/EditBill"
	TipServiceCommitBillProcedure       = "/tipsplit.v1.TipService/CommitBill"
	TipServiceIncrementSplitProcedure   = "/tipsplit.v1.TipService/IncrementSplit"
	TipServiceDecrementSplitProcedure   = "/tipsplit.v1.TipService/DecrementSplit"
	TipServiceMoveSliderProcedure       = "/tipsplit.v1.TipService/MoveSlider"
	TipServiceSetTipPercentageProcedure = "/tipsplit.v1.TipService/SetTipPercentage"
	TipServiceEndSessionProcedure       = "/tipsplit.v1.TipService/EndSession"
)

// PublicProcedures do not need a session token.
var PublicProcedures = []string{
	TipServiceCalculateProcedure,
	TipServiceCreateSessionProcedure,
}

// TipServiceHandler is implemented by the server.
type TipServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error)
	GetForm(context.Context, *connect.Request[api.GetFormRequest]) (*connect.Response[api.FormResponse], error)
	EditBill(context.Context, *connect.Request[api.EditBillRequest]) (*connect.Response[api.FormResponse], error)
	CommitBill(context.Context, *connect.Request[api.CommitBillRequest]) (*connect.Response[api.FormResponse], error)
	IncrementSplit(context.Context, *connect.Request[api.IncrementSplitRequest]) (*connect.Response[api.FormResponse], error)
	DecrementSplit(context.Context, *connect.Request[api.DecrementSplitRequest]) (*connect.Response[api.FormResponse], error)
	MoveSlider(context.Context, *connect.Request[api.MoveSliderRequest]) (*connect.Response[api.FormResponse], error)
	SetTipPercentage(context.Context, *connect.Request[api.SetTipPercentageRequest]) (*connect.Response[api.FormResponse], error)
	EndSession(context.Context, *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error)
}

// NewTipServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)

	routes := map[string]http.Handler{
		TipServiceCalculateProcedure:        connect.NewUnaryHandler(TipServiceCalculateProcedure, svc.Calculate, opts...),
		TipServiceCreateSessionProcedure:    connect.NewUnaryHandler(TipServiceCreateSessionProcedure, svc.CreateSession, opts...),
		TipServiceGetFormProcedure:          connect.NewUnaryHandler(TipServiceGetFormProcedure, svc.GetForm, opts...),
		TipServiceEditBillProcedure:         connect.NewUnaryHandler(TipServiceEditBillProcedure, svc.EditBill, opts...),
		TipServiceCommitBillProcedure:       connect.NewUnaryHandler(TipServiceCommitBillProcedure, svc.CommitBill, opts...),
		TipServiceIncrementSplitProcedure:   connect.NewUnaryHandler(TipServiceIncrementSplitProcedure, svc.IncrementSplit, opts...),
		TipServiceDecrementSplitProcedure:   connect.NewUnaryHandler(TipServiceDecrementSplitProcedure, svc.DecrementSplit, opts...),
		TipServiceMoveSliderProcedure:       connect.NewUnaryHandler(TipServiceMoveSliderProcedure, svc.MoveSlider, opts...),
		TipServiceSetTipPercentageProcedure: connect.NewUnaryHandler(TipServiceSetTipPercentageProcedure, svc.SetTipPercentage, opts...),
		TipServiceEndSessionProcedure:       connect.NewUnaryHandler(TipServiceEndSessionProcedure, svc.EndSession, opts...),
	}

	return "/" + TipServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// TipServiceClient is a client for the TipService.
type TipServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error)
	GetForm(context.Context, *connect.Request[api.GetFormRequest]) (*connect.Response[api.FormResponse], error)
	EditBill(context.Context, *connect.Request[api.EditBillRequest]) (*connect.Response[api.FormResponse], error)
	CommitBill(context.Context, *connect.Request[api.CommitBillRequest]) (*connect.Response[api.FormResponse], error)
	IncrementSplit(context.Context, *connect.Request[api.IncrementSplitRequest]) (*connect.Response[api.FormResponse], error)
	DecrementSplit(context.Context, *connect.Request[api.DecrementSplitRequest]) (*connect.Response[api.FormResponse], error)
	MoveSlider(context.Context, *connect.Request[api.MoveSliderRequest]) (*connect.Response[api.FormResponse], error)
	SetTipPercentage(context.Context, *connect.Request[api.SetTipPercentageRequest]) (*connect.Response[api.FormResponse], error)
	EndSession(context.Context, *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error)
}

// NewTipServiceClient constructs a client for the TipService at baseURL
// (for example, http://localhost:8080).
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &tipServiceClient{
		calculate:        connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+TipServiceCalculateProcedure, opts...),
		createSession:    connect.NewClient[api.CreateSessionRequest, api.CreateSessionResponse](httpClient, baseURL+TipServiceCreateSessionProcedure, opts...),
		getForm:          connect.NewClient[api.GetFormRequest, api.FormResponse](httpClient, baseURL+TipServiceGetFormProcedure, opts...),
		editBill:         connect.NewClient[api.EditBillRequest, api.FormResponse](httpClient, baseURL+TipServiceEditBillProcedure, opts...),
		commitBill:       connect.NewClient[api.CommitBillRequest, api.FormResponse](httpClient, baseURL+TipServiceCommitBillProcedure, opts...),
		incrementSplit:   connect.NewClient[api.IncrementSplitRequest, api.FormResponse](httpClient, baseURL+TipServiceIncrementSplitProcedure, opts...),
		decrementSplit:   connect.NewClient[api.DecrementSplitRequest, api.FormResponse](httpClient, baseURL+TipServiceDecrementSplitProcedure, opts...),
		moveSlider:       connect.NewClient[api.MoveSliderRequest, api.FormResponse](httpClient, baseURL+TipServiceMoveSliderProcedure, opts...),
		setTipPercentage: connect.NewClient[api.SetTipPercentageRequest, api.FormResponse](httpClient, baseURL+TipServiceSetTipPercentageProcedure, opts...),
		endSession:       connect.NewClient[api.EndSessionRequest, api.EndSessionResponse](httpClient, baseURL+TipServiceEndSessionProcedure, opts...),
	}
}

type tipServiceClient struct {
	calculate        *connect.Client[api.CalculateRequest, api.CalculateResponse]
	createSession    *connect.Client[api.CreateSessionRequest, api.CreateSessionResponse]
	getForm          *connect.Client[api.GetFormRequest, api.FormResponse]
	editBill         *connect.Client[api.EditBillRequest, api.FormResponse]
	commitBill       *connect.Client[api.CommitBillRequest, api.FormResponse]
	incrementSplit   *connect.Client[api.IncrementSplitRequest, api.FormResponse]
	decrementSplit   *connect.Client[api.DecrementSplitRequest, api.FormResponse]
	moveSlider       *connect.Client[api.MoveSliderRequest, api.FormResponse]
	setTipPercentage *connect.Client[api.SetTipPercentageRequest, api.FormResponse]
	endSession       *connect.Client[api.EndSessionRequest, api.EndSessionResponse]
}

func (c *tipServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *tipServiceClient) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *tipServiceClient) GetForm(ctx context.Context, req *connect.Request[api.GetFormRequest]) (*connect.Response[api.FormResponse], error) {
	return c.getForm.CallUnary(ctx, req)
}

func (c *tipServiceClient) EditBill(ctx context.Context, req *connect.Request[api.EditBillRequest]) (*connect.Response[api.FormResponse], error) {
	return c.editBill.CallUnary(ctx, req)
}

func (c *tipServiceClient) CommitBill(ctx context.Context, req *connect.Request[api.CommitBillRequest]) (*connect.Response[api.FormResponse], error) {
	return c.commitBill.CallUnary(ctx, req)
}

func (c *tipServiceClient) IncrementSplit(ctx context.Context, req *connect.Request[api.IncrementSplitRequest]) (*connect.Response[api.FormResponse], error) {
	return c.incrementSplit.CallUnary(ctx, req)
}

func (c *tipServiceClient) DecrementSplit(ctx context.Context, req *connect.Request[api.DecrementSplitRequest]) (*connect.Response[api.FormResponse], error) {
	return c.decrementSplit.CallUnary(ctx, req)
}

func (c *tipServiceClient) MoveSlider(ctx context.Context, req *connect.Request[api.MoveSliderRequest]) (*connect.Response[api.FormResponse], error) {
	return c.moveSlider.CallUnary(ctx, req)
}

func (c *tipServiceClient) SetTipPercentage(ctx context.Context, req *connect.Request[api.SetTipPercentageRequest]) (*connect.Response[api.FormResponse], error) {
	return c.setTipPercentage.CallUnary(ctx, req)
}

func (c *tipServiceClient) EndSession(ctx context.Context, req *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error) {
	return c.endSession.CallUnary(ctx, req)
}

// UnimplementedTipServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTipServiceHandler struct{}

func (UnimplementedTipServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, unimplemented("Calculate")
}

func (UnimplementedTipServiceHandler) CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error) {
	return nil, unimplemented("CreateSession")
}

func (UnimplementedTipServiceHandler) GetForm(context.Context, *connect.Request[api.GetFormRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("GetForm")
}

func (UnimplementedTipServiceHandler) EditBill(context.Context, *connect.Request[api.EditBillRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("EditBill")
}

func (UnimplementedTipServiceHandler) CommitBill(context.Context, *connect.Request[api.CommitBillRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("CommitBill")
}

func (UnimplementedTipServiceHandler) IncrementSplit(context.Context, *connect.Request[api.IncrementSplitRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("IncrementSplit")
}

func (UnimplementedTipServiceHandler) DecrementSplit(context.Context, *connect.Request[api.DecrementSplitRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("DecrementSplit")
}

func (UnimplementedTipServiceHandler) MoveSlider(context.Context, *connect.Request[api.MoveSliderRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("MoveSlider")
}

func (UnimplementedTipServiceHandler) SetTipPercentage(context.Context, *connect.Request[api.SetTipPercentageRequest]) (*connect.Response[api.FormResponse], error) {
	return nil, unimplemented("SetTipPercentage")
}

func (UnimplementedTipServiceHandler) EndSession(context.Context, *connect.Request[api.EndSessionRequest]) (*connect.Response[api.EndSessionResponse], error) {
	return nil, unimplemented("EndSession")
}

func unimplemented(method string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(TipServiceName+"."+method+" is not implemented"))
}
