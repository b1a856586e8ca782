package mollie

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/commercekit/payment-gateways/internal/config"
	"github.com/commercekit/payment-gateways/internal/observability/metrics"
	"github.com/commercekit/payment-gateways/internal/provider"
)

const (
	gatewayName = "mollie"

	// metadataSessionKey carries the host's idempotency key through Mollie
	// metadata so webhooks and polls can be correlated back to the session.
	metadataSessionKey = "session_id"

	captureModeAutomatic = "automatic"
	captureModeManual    = "manual"
)

// Provider implements the payment lifecycle against Mollie. It is stateless:
// every operation re-derives truth from Mollie's record for the payment.
type Provider struct {
	client  Client
	cfg     config.GatewayConfig
	variant provider.Variant
	logger  *slog.Logger
	metrics *metrics.GatewayMetrics
}

var _ provider.Provider = (*Provider)(nil)

func New(cfg config.GatewayConfig, variant provider.Variant, client Client, logger *slog.Logger, m *metrics.GatewayMetrics) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, provider.WrapValidationError("invalid mollie configuration", err)
	}
	if variant.ID == "" {
		return nil, provider.NewValidationError("variant id is required")
	}
	if client == nil {
		client = NewClient(cfg)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		client:  client,
		cfg:     cfg,
		variant: variant,
		logger:  logger.With("gateway", gatewayName, "variant", variant.ID),
		metrics: m,
	}, nil
}

func (p *Provider) ID() string {
	return p.variant.ID
}

func (p *Provider) Gateway() string {
	return gatewayName
}

// Initiate creates exactly one Mollie payment. The capture mode follows the
// configured auto-capture policy and the host's idempotency key is embedded
// in the payment metadata.
func (p *Provider) Initiate(ctx context.Context, in provider.InitiateInput) (*provider.InitiateResult, error) {
	defer p.observe("initiate", time.Now())

	if in.IdempotencyKey == "" {
		p.fail("initiate")
		return nil, provider.NewValidationError("idempotency key is required")
	}
	if err := in.Amount.Validate(); err != nil {
		p.fail("initiate")
		return nil, err
	}

	captureMode := captureModeAutomatic
	if !p.cfg.AutoCapture {
		captureMode = captureModeManual
	}

	req := CreatePaymentRequest{
		Amount: Amount{
			Currency: in.Amount.Currency,
			Value:    in.Amount.Format(),
		},
		Description:  p.description(in.Description),
		RedirectURL:  p.cfg.RedirectURL,
		WebhookURL:   provider.WebhookURL(p.cfg.HostURL, p.variant.ID, gatewayName),
		Method:       p.variant.Method,
		CaptureMode:  captureMode,
		BillingEmail: in.Email,
		Metadata: map[string]string{
			metadataSessionKey: in.IdempotencyKey,
		},
	}

	pm, err := p.client.CreatePayment(ctx, req, in.IdempotencyKey)
	if err != nil {
		p.fail("initiate")
		if apiErr, ok := IsAPIError(err); ok && apiErr.Status < 500 {
			// Gateway rejected the request; its message travels verbatim.
			return nil, provider.WrapValidationError(apiErr.Detail, err)
		}
		p.logger.Error("payment creation failed", "error", err)
		return nil, provider.NewGatewayError(gatewayName, "initiate", err)
	}

	p.logger.Info("payment created",
		"payment_id", pm.ID,
		"capture_mode", captureMode,
		"amount", pm.Amount.Value,
		"currency", pm.Amount.Currency,
	)

	return &provider.InitiateResult{
		ExternalID: pm.ID,
		Data:       toMap(pm),
	}, nil
}

// Authorize is a read-only check: it succeeds when the payment has reached
// AUTHORIZED or CAPTURED and names the current status otherwise.
func (p *Provider) Authorize(ctx context.Context, externalID string) (*provider.AuthorizeResult, error) {
	defer p.observe("authorize", time.Now())

	pm, err := p.fetch(ctx, "authorize", externalID)
	if err != nil {
		p.fail("authorize")
		return nil, err
	}

	status := MapStatus(pm.Status)
	if status != provider.StatusAuthorized && status != provider.StatusCaptured {
		p.fail("authorize")
		return nil, provider.NewInvalidStateError("authorize", pm.Status)
	}

	return &provider.AuthorizeResult{
		Status: status,
		Data:   toMap(pm),
	}, nil
}

// Capture settles an authorized payment. Repeated capture calls are safe:
// a payment already captured returns its existing state without a second
// capture request, and a capture call is always followed by a confirmation
// fetch so an unconfirmed capture surfaces as an error instead of a silent
// success.
func (p *Provider) Capture(ctx context.Context, externalID string) (map[string]any, error) {
	defer p.observe("capture", time.Now())

	pm, err := p.fetch(ctx, "capture", externalID)
	if err != nil {
		p.fail("capture")
		return nil, err
	}

	switch status := MapStatus(pm.Status); status {
	case provider.StatusCaptured:
		return toMap(pm), nil

	case provider.StatusAuthorized:
		if p.cfg.AutoCapture {
			// The gateway captures on its own at "paid"; issuing another
			// capture here would risk a double charge.
			return toMap(pm), nil
		}

		if _, err := p.client.CreateCapture(ctx, pm.ID, CreateCaptureRequest{}, pm.Metadata[metadataSessionKey]); err != nil {
			p.fail("capture")
			p.logger.Error("capture call failed", "payment_id", pm.ID, "error", err)
			return nil, provider.NewGatewayError(gatewayName, "capture", err)
		}

		confirmed, err := p.fetch(ctx, "capture", externalID)
		if err != nil {
			p.fail("capture")
			return nil, err
		}
		if MapStatus(confirmed.Status) != provider.StatusCaptured {
			p.fail("capture")
			return nil, provider.NewInvalidStateError("confirm capture of", confirmed.Status)
		}
		return toMap(confirmed), nil

	default:
		p.fail("capture")
		return nil, provider.NewInvalidStateError("capture", pm.Status)
	}
}

// Refund returns funds from a captured payment. The amount crosses the wire
// with the same two-decimal formatting used at initiation.
func (p *Provider) Refund(ctx context.Context, externalID string, amount provider.Money) (map[string]any, error) {
	defer p.observe("refund", time.Now())

	if err := amount.Validate(); err != nil {
		p.fail("refund")
		return nil, err
	}

	pm, err := p.fetch(ctx, "refund", externalID)
	if err != nil {
		p.fail("refund")
		return nil, err
	}

	if MapStatus(pm.Status) != provider.StatusCaptured {
		p.fail("refund")
		return nil, provider.NewInvalidStateError("refund", pm.Status)
	}

	refund, err := p.client.CreateRefund(ctx, pm.ID, CreateRefundRequest{
		Amount: Amount{
			Currency: amount.Currency,
			Value:    amount.Format(),
		},
		Description: p.description(""),
	}, pm.Metadata[metadataSessionKey])
	if err != nil {
		p.fail("refund")
		p.logger.Error("refund call failed", "payment_id", pm.ID, "error", err)
		return nil, provider.NewGatewayError(gatewayName, "refund", err)
	}

	data := toMap(pm)
	data["refund"] = toMap(refund)
	return data, nil
}

// Cancel is best-effort. Payments already in a terminal state resolve to
// success with the current snapshot and no further gateway call; a failing
// cancel call is logged and the pre-cancel snapshot returned.
func (p *Provider) Cancel(ctx context.Context, externalID string) (map[string]any, error) {
	defer p.observe("cancel", time.Now())

	pm, err := p.fetch(ctx, "cancel", externalID)
	if err != nil {
		p.fail("cancel")
		return nil, err
	}

	switch MapStatus(pm.Status) {
	case provider.StatusCanceled, provider.StatusError:
		return toMap(pm), nil
	}

	canceled, err := p.client.CancelPayment(ctx, pm.ID)
	if err != nil {
		p.logger.Error("cancel call failed, returning last known payment",
			"payment_id", pm.ID,
			"status", pm.Status,
			"error", err,
		)
		return toMap(pm), nil
	}

	return toMap(canceled), nil
}

// Delete aliases Cancel; Mollie has no hard deletion of payment records.
func (p *Provider) Delete(ctx context.Context, externalID string) (map[string]any, error) {
	return p.Cancel(ctx, externalID)
}

// GetStatus degrades to ERROR on any fetch problem; callers poll blindly and
// must never be crashed by a missing payment.
func (p *Provider) GetStatus(ctx context.Context, externalID string) provider.SessionStatus {
	defer p.observe("status", time.Now())

	pm, err := p.client.GetPayment(ctx, externalID)
	if err != nil {
		p.fail("status")
		p.logger.Warn("status fetch failed", "payment_id", externalID, "error", err)
		return provider.StatusError
	}
	return MapStatus(pm.Status)
}

// Retrieve is a passthrough read, degrading to the minimal known record.
func (p *Provider) Retrieve(ctx context.Context, externalID string) (map[string]any, error) {
	defer p.observe("retrieve", time.Now())

	pm, err := p.client.GetPayment(ctx, externalID)
	if err != nil {
		p.fail("retrieve")
		p.logger.Warn("retrieve failed, returning minimal record", "payment_id", externalID, "error", err)
		return map[string]any{"id": externalID}, nil
	}
	return toMap(pm), nil
}

// Update patches the mutable payment fields Mollie supports. Amount cannot
// change after creation; a requested amount is echoed back normalized.
func (p *Provider) Update(ctx context.Context, externalID string, in provider.UpdateInput) (map[string]any, error) {
	defer p.observe("update", time.Now())

	req := UpdatePaymentRequest{
		Description: in.Description,
		Metadata:    in.Metadata,
	}

	pm, err := p.client.UpdatePayment(ctx, externalID, req)
	if err != nil {
		p.fail("update")
		p.logger.Error("update call failed", "payment_id", externalID, "error", err)
		return nil, provider.NewGatewayError(gatewayName, "update", err)
	}

	data := toMap(pm)
	if in.Amount != nil {
		data["requested_amount"] = in.Amount.Format()
		data["requested_currency"] = in.Amount.Currency
	}
	return data, nil
}

func (p *Provider) fetch(ctx context.Context, op, externalID string) (*Payment, error) {
	if externalID == "" {
		return nil, provider.NewValidationError("payment id is required")
	}
	pm, err := p.client.GetPayment(ctx, externalID)
	if err != nil {
		p.logger.Error("payment fetch failed", "op", op, "payment_id", externalID, "error", err)
		return nil, provider.NewGatewayError(gatewayName, op, err)
	}
	return pm, nil
}

func (p *Provider) description(override string) string {
	if override != "" {
		return override
	}
	if p.variant.Description != "" {
		return p.variant.Description
	}
	return p.cfg.Description
}

func (p *Provider) observe(op string, start time.Time) {
	p.metrics.ObserveOp(gatewayName, op, time.Since(start).Seconds())
}

func (p *Provider) fail(op string) {
	p.metrics.ObserveFailure(gatewayName, op)
}

func toMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}
