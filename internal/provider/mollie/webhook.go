package mollie

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/commercekit/payment-gateways/internal/provider"
)

// WebhookActionAndData reconciles one Mollie webhook delivery.
//
// The payload is untrusted: deliveries can be replayed, reordered or spoofed
// in transport, so the only field taken from it is the payment id. The
// authoritative record is always re-fetched from Mollie before any money-
// bearing field is surfaced, which also makes redelivery of the same event a
// natural no-op.
func (p *Provider) WebhookActionAndData(ctx context.Context, payload []byte) (*provider.WebhookActionResult, error) {
	paymentID := extractPaymentID(payload)
	if paymentID == "" {
		return nil, provider.NewValidationError("webhook payload carries no payment id")
	}

	pm, err := p.client.GetPayment(ctx, paymentID)
	if err != nil {
		// Webhook handlers cannot retry indefinitely; a degraded but
		// structured result beats an error as long as an id exists.
		p.logger.Error("webhook re-fetch failed, returning degraded result",
			"payment_id", paymentID,
			"error", err,
		)
		result := &provider.WebhookActionResult{
			Action: provider.ActionFailed,
			Data: provider.WebhookData{
				Raw: map[string]any{"id": paymentID},
			},
		}
		p.metrics.ObserveWebhook(gatewayName, string(result.Action))
		return result, nil
	}

	action := webhookAction(pm.Status)

	amountCents, parseErr := provider.ParseAmount(pm.Amount.Value)
	if parseErr != nil {
		p.logger.Warn("unparseable amount on webhook payment", "payment_id", pm.ID, "value", pm.Amount.Value)
	}

	// An absent session id means the event cannot be correlated; the host
	// treats that as unresolvable rather than an error.
	sessionID := pm.Metadata[metadataSessionKey]
	if sessionID == "" {
		p.logger.Warn("webhook payment carries no session correlation", "payment_id", pm.ID)
	}

	result := &provider.WebhookActionResult{
		Action: action,
		Data: provider.WebhookData{
			SessionID:   sessionID,
			AmountCents: amountCents,
			Currency:    pm.Amount.Currency,
			Raw:         toMap(pm),
		},
	}
	p.metrics.ObserveWebhook(gatewayName, string(result.Action))
	return result, nil
}

// extractPaymentID pulls the payment id out of a Mollie webhook body. Mollie
// posts form-encoded "id=tr_..." payloads; JSON bodies are accepted too for
// forward compatibility.
func extractPaymentID(payload []byte) string {
	body := strings.TrimSpace(string(payload))
	if body == "" {
		return ""
	}

	if strings.HasPrefix(body, "{") {
		var evt struct {
			ID       string `json:"id"`
			Resource struct {
				ID string `json:"id"`
			} `json:"resource"`
		}
		if err := json.Unmarshal(payload, &evt); err != nil {
			return ""
		}
		if evt.Resource.ID != "" {
			return evt.Resource.ID
		}
		return evt.ID
	}

	values, err := url.ParseQuery(body)
	if err != nil {
		return ""
	}
	return values.Get("id")
}
