package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/payment-gateways/internal/interfaces/rest"
	"github.com/commercekit/payment-gateways/internal/interfaces/rest/handlers"
	"github.com/commercekit/payment-gateways/internal/provider"
)

// fakeProvider routes each lifecycle call through an optional function field,
// so tests override only what they exercise.
type fakeProvider struct {
	id      string
	gateway string

	InitiateFn  func(ctx context.Context, in provider.InitiateInput) (*provider.InitiateResult, error)
	AuthorizeFn func(ctx context.Context, externalID string) (*provider.AuthorizeResult, error)
	CaptureFn   func(ctx context.Context, externalID string) (map[string]any, error)
	RefundFn    func(ctx context.Context, externalID string, amount provider.Money) (map[string]any, error)
	CancelFn    func(ctx context.Context, externalID string) (map[string]any, error)
	GetStatusFn func(ctx context.Context, externalID string) provider.SessionStatus
	RetrieveFn  func(ctx context.Context, externalID string) (map[string]any, error)
	UpdateFn    func(ctx context.Context, externalID string, in provider.UpdateInput) (map[string]any, error)
	WebhookFn   func(ctx context.Context, payload []byte) (*provider.WebhookActionResult, error)
}

func (f *fakeProvider) ID() string      { return f.id }
func (f *fakeProvider) Gateway() string { return f.gateway }

func (f *fakeProvider) Initiate(ctx context.Context, in provider.InitiateInput) (*provider.InitiateResult, error) {
	if f.InitiateFn != nil {
		return f.InitiateFn(ctx, in)
	}
	return &provider.InitiateResult{ExternalID: "ext-1"}, nil
}

func (f *fakeProvider) Authorize(ctx context.Context, externalID string) (*provider.AuthorizeResult, error) {
	if f.AuthorizeFn != nil {
		return f.AuthorizeFn(ctx, externalID)
	}
	return &provider.AuthorizeResult{Status: provider.StatusAuthorized}, nil
}

func (f *fakeProvider) Capture(ctx context.Context, externalID string) (map[string]any, error) {
	if f.CaptureFn != nil {
		return f.CaptureFn(ctx, externalID)
	}
	return map[string]any{"id": externalID}, nil
}

func (f *fakeProvider) Refund(ctx context.Context, externalID string, amount provider.Money) (map[string]any, error) {
	if f.RefundFn != nil {
		return f.RefundFn(ctx, externalID, amount)
	}
	return map[string]any{"id": externalID}, nil
}

func (f *fakeProvider) Cancel(ctx context.Context, externalID string) (map[string]any, error) {
	if f.CancelFn != nil {
		return f.CancelFn(ctx, externalID)
	}
	return map[string]any{"id": externalID}, nil
}

func (f *fakeProvider) Delete(ctx context.Context, externalID string) (map[string]any, error) {
	return f.Cancel(ctx, externalID)
}

func (f *fakeProvider) GetStatus(ctx context.Context, externalID string) provider.SessionStatus {
	if f.GetStatusFn != nil {
		return f.GetStatusFn(ctx, externalID)
	}
	return provider.StatusPending
}

func (f *fakeProvider) Retrieve(ctx context.Context, externalID string) (map[string]any, error) {
	if f.RetrieveFn != nil {
		return f.RetrieveFn(ctx, externalID)
	}
	return map[string]any{"id": externalID}, nil
}

func (f *fakeProvider) Update(ctx context.Context, externalID string, in provider.UpdateInput) (map[string]any, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, externalID, in)
	}
	return map[string]any{"id": externalID}, nil
}

func (f *fakeProvider) WebhookActionAndData(ctx context.Context, payload []byte) (*provider.WebhookActionResult, error) {
	if f.WebhookFn != nil {
		return f.WebhookFn(ctx, payload)
	}
	return &provider.WebhookActionResult{Action: provider.ActionPending}, nil
}

func newRouter(t *testing.T, p *fakeProvider, verifiers map[string]rest.SignatureVerifier) chi.Router {
	t.Helper()

	registry := provider.NewRegistry()
	require.NoError(t, registry.Register(p))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewHandlers(registry, verifiers, logger)

	router := chi.NewRouter()
	h.Routes(router)
	return router
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestInitiate_CreatesSession(t *testing.T) {
	var got provider.InitiateInput
	p := &fakeProvider{
		id:      "mollie-ideal",
		gateway: "mollie",
		InitiateFn: func(ctx context.Context, in provider.InitiateInput) (*provider.InitiateResult, error) {
			got = in
			return &provider.InitiateResult{ExternalID: "tr_abc", Data: map[string]any{"status": "open"}}, nil
		},
	}
	router := newRouter(t, p, nil)

	body := `{"amount_cents":1999,"currency":"EUR","idempotency_key":"sess-1","description":"Order"}`
	req := httptest.NewRequest(http.MethodPost, "/providers/mollie-ideal_mollie/sessions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1999), got.Amount.Cents)
	assert.Equal(t, "EUR", got.Amount.Currency)
	assert.Equal(t, "sess-1", got.IdempotencyKey)

	data := decodeEnvelope(t, rec.Body)
	assert.Equal(t, "tr_abc", data["external_id"])
}

func TestInitiate_UnknownProviderIs400(t *testing.T) {
	router := newRouter(t, &fakeProvider{id: "mollie", gateway: "mollie"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/providers/nope_nope/sessions", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiate_MalformedBodyIs400(t *testing.T) {
	router := newRouter(t, &fakeProvider{id: "mollie", gateway: "mollie"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/providers/mollie_mollie/sessions", bytes.NewBufferString(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCapture_InvalidStateIs409(t *testing.T) {
	p := &fakeProvider{
		id:      "mollie",
		gateway: "mollie",
		CaptureFn: func(ctx context.Context, externalID string) (map[string]any, error) {
			return nil, provider.NewInvalidStateError("capture", "open")
		},
	}
	router := newRouter(t, p, nil)

	req := httptest.NewRequest(http.MethodPost, "/providers/mollie_mollie/sessions/tr_abc/capture", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_STATE", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, `"open"`)
}

func TestRefund_GatewayErrorIs502(t *testing.T) {
	p := &fakeProvider{
		id:      "mollie",
		gateway: "mollie",
		RefundFn: func(ctx context.Context, externalID string, amount provider.Money) (map[string]any, error) {
			return nil, provider.NewGatewayError("mollie", "refund", errors.New("connection reset"))
		},
	}
	router := newRouter(t, p, nil)

	body := `{"amount_cents":500,"currency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/providers/mollie_mollie/sessions/tr_abc/refund", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestStatus_ReturnsMappedStatus(t *testing.T) {
	p := &fakeProvider{
		id:      "sumup",
		gateway: "sumup",
		GetStatusFn: func(ctx context.Context, externalID string) provider.SessionStatus {
			return provider.StatusCaptured
		},
	}
	router := newRouter(t, p, nil)

	req := httptest.NewRequest(http.MethodGet, "/providers/sumup_sumup/sessions/co_abc/status", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec.Body)
	assert.Equal(t, "CAPTURED", data["status"])
}

func TestUpdate_PassesInputThrough(t *testing.T) {
	var got provider.UpdateInput
	p := &fakeProvider{
		id:      "mollie",
		gateway: "mollie",
		UpdateFn: func(ctx context.Context, externalID string, in provider.UpdateInput) (map[string]any, error) {
			got = in
			return map[string]any{"id": externalID}, nil
		},
	}
	router := newRouter(t, p, nil)

	body := `{"amount_cents":2500,"currency":"EUR","description":"updated"}`
	req := httptest.NewRequest(http.MethodPatch, "/providers/mollie_mollie/sessions/tr_abc", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Amount)
	assert.Equal(t, int64(2500), got.Amount.Cents)
	assert.Equal(t, "updated", got.Description)
}

func TestDelete_ResolvesToCancel(t *testing.T) {
	canceled := false
	p := &fakeProvider{
		id:      "mollie",
		gateway: "mollie",
		CancelFn: func(ctx context.Context, externalID string) (map[string]any, error) {
			canceled = true
			return map[string]any{"id": externalID, "status": "canceled"}, nil
		},
	}
	router := newRouter(t, p, nil)

	req := httptest.NewRequest(http.MethodDelete, "/providers/mollie_mollie/sessions/tr_abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, canceled)
}
