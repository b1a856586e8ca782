package sumup

import (
	"context"
	"encoding/json"

	"github.com/commercekit/payment-gateways/internal/provider"
)

// webhookEvent is the SumUp delivery envelope. Only the checkout id is
// trusted; everything else is re-derived from the gateway.
type webhookEvent struct {
	EventType string `json:"event_type"`
	ID        string `json:"id"`
	Payload   struct {
		ID        string `json:"id"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"payload"`
}

// WebhookActionAndData reconciles one SumUp webhook delivery by re-fetching
// the checkout it names. Redelivered events converge on the same fetched
// state and are therefore harmless.
func (p *Provider) WebhookActionAndData(ctx context.Context, payload []byte) (*provider.WebhookActionResult, error) {
	var evt webhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return nil, provider.WrapValidationError("malformed webhook payload", err)
	}

	checkoutID := evt.Payload.ID
	if checkoutID == "" {
		checkoutID = evt.ID
	}
	if checkoutID == "" {
		return nil, provider.NewValidationError("webhook payload carries no checkout id")
	}

	co, err := p.client.GetCheckout(ctx, checkoutID)
	if err != nil {
		p.logger.Error("webhook re-fetch failed, returning degraded result",
			"checkout_id", checkoutID,
			"error", err,
		)
		result := &provider.WebhookActionResult{
			Action: provider.ActionFailed,
			Data: provider.WebhookData{
				SessionID: evt.Payload.Reference,
				Raw:       map[string]any{"id": checkoutID},
			},
		}
		p.metrics.ObserveWebhook(gatewayName, string(result.Action))
		return result, nil
	}

	if co.CheckoutReference == "" {
		p.logger.Warn("webhook checkout carries no reference", "checkout_id", co.ID)
	}

	result := &provider.WebhookActionResult{
		Action: webhookAction(co.Status),
		Data: provider.WebhookData{
			SessionID:   co.CheckoutReference,
			AmountCents: int64(co.Amount),
			Currency:    co.Currency,
			Raw:         toMap(co),
		},
	}
	p.metrics.ObserveWebhook(gatewayName, string(result.Action))
	return result, nil
}
