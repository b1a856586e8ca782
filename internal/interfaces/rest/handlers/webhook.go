package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commercekit/payment-gateways/internal/interfaces/rest"
)

// signatureHeader carries the hex HMAC-SHA256 of the raw payload.
const signatureHeader = "X-Payload-Signature"

// maxWebhookBody bounds webhook payload size; gateway events are small.
const maxWebhookBody = 1 << 20

// webhook authenticates and reconciles one gateway event delivery. The
// response body carries the normalized {action, data} tuple; the host applies
// its own state transitions from it.
func (h *Handlers) webhook(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	p, ok := h.registry.Resolve(token)
	if !ok {
		h.logger.Warn("webhook for unknown provider", "token", token)
		http.Error(w, "unknown provider", http.StatusNotFound)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	verifier, ok := h.verifiers[p.Gateway()]
	if !ok {
		// No secret configured means no way to authenticate the caller.
		h.logger.Error("no signature verifier configured", "gateway", p.Gateway())
		http.Error(w, "webhook verification unavailable", http.StatusServiceUnavailable)
		return
	}
	if err := verifier.Verify(payload, r.Header.Get(signatureHeader)); err != nil {
		h.logger.Warn("webhook signature rejected", "gateway", p.Gateway(), "error", err)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	result, err := p.WebhookActionAndData(r.Context(), payload)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	h.logger.Info("webhook reconciled",
		"gateway", p.Gateway(),
		"action", result.Action,
		"session_id", result.Data.SessionID,
	)

	// Always 200 once reconciled, not_supported included; anything else
	// makes the gateway redeliver an event this integration will never act on.
	rest.WriteJSON(w, http.StatusOK, result, h.logger)
}
