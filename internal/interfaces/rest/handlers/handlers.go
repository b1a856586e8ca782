// Package handlers exposes the provider lifecycle contract and the webhook
// callback endpoint over HTTP for the host platform.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commercekit/payment-gateways/internal/interfaces/rest"
	"github.com/commercekit/payment-gateways/internal/provider"
)

type Handlers struct {
	registry  *provider.Registry
	verifiers map[string]rest.SignatureVerifier
	logger    *slog.Logger
}

func NewHandlers(registry *provider.Registry, verifiers map[string]rest.SignatureVerifier, logger *slog.Logger) *Handlers {
	return &Handlers{
		registry:  registry,
		verifiers: verifiers,
		logger:    logger,
	}
}

// Routes mounts the lifecycle and webhook endpoints.
func (h *Handlers) Routes(r chi.Router) {
	r.Route("/providers/{token}/sessions", func(r chi.Router) {
		r.Post("/", h.initiate)
		r.Get("/{id}", h.retrieve)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
		r.Get("/{id}/status", h.status)
		r.Post("/{id}/authorize", h.authorize)
		r.Post("/{id}/capture", h.capture)
		r.Post("/{id}/refund", h.refund)
		r.Post("/{id}/cancel", h.cancel)
	})
	r.Post("/hooks/payment/{token}", h.webhook)
}

type initiateRequest struct {
	AmountCents    int64  `json:"amount_cents"`
	Currency       string `json:"currency"`
	IdempotencyKey string `json:"idempotency_key"`
	Email          string `json:"email,omitempty"`
	Description    string `json:"description,omitempty"`
}

type refundRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type updateRequest struct {
	AmountCents *int64            `json:"amount_cents,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

func (h *Handlers) resolve(w http.ResponseWriter, r *http.Request) (provider.Provider, bool) {
	token := chi.URLParam(r, "token")
	p, ok := h.registry.Resolve(token)
	if !ok {
		rest.WriteError(w, provider.NewValidationError("unknown provider %q", token), h.logger)
		return nil, false
	}
	return p, true
}

func (h *Handlers) initiate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, provider.WrapValidationError("malformed request body", err), h.logger)
		return
	}

	result, err := p.Initiate(r.Context(), provider.InitiateInput{
		Amount:         provider.Money{Cents: req.AmountCents, Currency: req.Currency},
		IdempotencyKey: req.IdempotencyKey,
		Email:          req.Email,
		Description:    req.Description,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, map[string]any{
		"external_id": result.ExternalID,
		"data":        result.Data,
	}, h.logger)
}

func (h *Handlers) authorize(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	result, err := p.Authorize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]any{
		"status": result.Status,
		"data":   result.Data,
	}, h.logger)
}

func (h *Handlers) capture(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	data, err := p.Capture(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, data, h.logger)
}

func (h *Handlers) refund(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, provider.WrapValidationError("malformed request body", err), h.logger)
		return
	}

	data, err := p.Refund(r.Context(), chi.URLParam(r, "id"), provider.Money{
		Cents:    req.AmountCents,
		Currency: req.Currency,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, data, h.logger)
}

func (h *Handlers) cancel(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	data, err := p.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, data, h.logger)
}

func (h *Handlers) delete(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	data, err := p.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, data, h.logger)
}

func (h *Handlers) status(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	status := p.GetStatus(r.Context(), chi.URLParam(r, "id"))
	rest.WriteJSON(w, http.StatusOK, map[string]any{"status": status}, h.logger)
}

func (h *Handlers) retrieve(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	data, err := p.Retrieve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, data, h.logger)
}

func (h *Handlers) update(w http.ResponseWriter, r *http.Request) {
	p, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, provider.WrapValidationError("malformed request body", err), h.logger)
		return
	}

	in := provider.UpdateInput{
		Description: req.Description,
		Metadata:    req.Metadata,
	}
	if req.AmountCents != nil {
		in.Amount = &provider.Money{Cents: *req.AmountCents, Currency: req.Currency}
	}

	data, err := p.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, data, h.logger)
}
