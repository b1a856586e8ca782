package sumup

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/commercekit/payment-gateways/internal/config"
	"github.com/commercekit/payment-gateways/internal/observability/metrics"
	"github.com/commercekit/payment-gateways/internal/provider"
)

const gatewayName = "sumup"

// Provider implements the payment lifecycle against SumUp hosted checkouts.
// SumUp checkouts settle in a single step, so the adapter always behaves as
// auto-capture regardless of policy; the host's idempotency key travels in
// checkout_reference for correlation.
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
		return nil, provider.WrapValidationError("invalid sumup configuration", err)
	}
	if cfg.MerchantCode == "" {
		return nil, provider.NewValidationError("merchant code is required for sumup")
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
	logger = logger.With("gateway", gatewayName, "variant", variant.ID)

	if !cfg.AutoCapture {
		// Hosted checkouts have no manual capture step; the closest honest
		// behavior is to proceed as automatic and say so once.
		logger.Warn("manual capture is not supported by sumup hosted checkouts, proceeding with automatic capture")
	}

	return &Provider{
		client:  client,
		cfg:     cfg,
		variant: variant,
		logger:  logger,
		metrics: m,
	}, nil
}

func (p *Provider) ID() string {
	return p.variant.ID
}

func (p *Provider) Gateway() string {
	return gatewayName
}

// Initiate creates exactly one SumUp checkout, referenced by the host's
// idempotency key.
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

	req := CreateCheckoutRequest{
		CheckoutReference: in.IdempotencyKey,
		Amount:            AmountValue(in.Amount.Cents),
		Currency:          in.Amount.Currency,
		MerchantCode:      p.cfg.MerchantCode,
		Description:       p.description(in.Description),
		ReturnURL:         provider.WebhookURL(p.cfg.HostURL, p.variant.ID, gatewayName),
		RedirectURL:       p.cfg.RedirectURL,
	}

	co, err := p.client.CreateCheckout(ctx, req)
	if err != nil {
		p.fail("initiate")
		if apiErr, ok := IsAPIError(err); ok && apiErr.StatusCode < 500 {
			return nil, provider.WrapValidationError(apiErr.Message, err)
		}
		p.logger.Error("checkout creation failed", "error", err)
		return nil, provider.NewGatewayError(gatewayName, "initiate", err)
	}

	p.logger.Info("checkout created",
		"checkout_id", co.ID,
		"reference", co.CheckoutReference,
		"amount", provider.FormatCents(int64(co.Amount)),
		"currency", co.Currency,
	)

	return &provider.InitiateResult{
		ExternalID: co.ID,
		Data:       toMap(co),
	}, nil
}

// Authorize succeeds once the checkout is settled. A PAID checkout counts as
// both authorized and captured.
func (p *Provider) Authorize(ctx context.Context, externalID string) (*provider.AuthorizeResult, error) {
	defer p.observe("authorize", time.Now())

	co, err := p.fetch(ctx, "authorize", externalID)
	if err != nil {
		p.fail("authorize")
		return nil, err
	}

	status := MapStatus(co.Status)
	if status != provider.StatusAuthorized && status != provider.StatusCaptured {
		p.fail("authorize")
		return nil, provider.NewInvalidStateError("authorize", co.Status)
	}

	return &provider.AuthorizeResult{
		Status: status,
		Data:   toMap(co),
	}, nil
}

// Capture confirms settlement. SumUp captures at payment time, so a PAID
// checkout returns its current state and anything else is an invalid state;
// no capture call ever goes out.
func (p *Provider) Capture(ctx context.Context, externalID string) (map[string]any, error) {
	defer p.observe("capture", time.Now())

	co, err := p.fetch(ctx, "capture", externalID)
	if err != nil {
		p.fail("capture")
		return nil, err
	}

	if MapStatus(co.Status) != provider.StatusCaptured {
		p.fail("capture")
		return nil, provider.NewInvalidStateError("capture", co.Status)
	}

	return toMap(co), nil
}

// Refund returns funds from the checkout's successful transaction. Without
// one there is nothing refundable.
func (p *Provider) Refund(ctx context.Context, externalID string, amount provider.Money) (map[string]any, error) {
	defer p.observe("refund", time.Now())

	if err := amount.Validate(); err != nil {
		p.fail("refund")
		return nil, err
	}

	co, err := p.fetch(ctx, "refund", externalID)
	if err != nil {
		p.fail("refund")
		return nil, err
	}

	txn := successfulTransaction(co)
	if txn == nil {
		p.fail("refund")
		return nil, provider.NewInvalidStateError("refund", co.Status)
	}

	refunded, err := p.client.RefundTransaction(ctx, txn.ID, RefundRequest{
		Amount: AmountValue(amount.Cents),
	})
	if err != nil {
		p.fail("refund")
		p.logger.Error("refund call failed", "checkout_id", co.ID, "transaction_id", txn.ID, "error", err)
		return nil, provider.NewGatewayError(gatewayName, "refund", err)
	}

	data := toMap(co)
	data["refund"] = toMap(refunded)
	return data, nil
}

// Cancel deactivates a pending checkout. Terminal checkouts resolve to
// success with the current snapshot; a failing deactivation is logged and
// the pre-cancel snapshot returned.
func (p *Provider) Cancel(ctx context.Context, externalID string) (map[string]any, error) {
	defer p.observe("cancel", time.Now())

	co, err := p.fetch(ctx, "cancel", externalID)
	if err != nil {
		p.fail("cancel")
		return nil, err
	}

	switch MapStatus(co.Status) {
	case provider.StatusCanceled, provider.StatusError:
		return toMap(co), nil
	}

	deactivated, err := p.client.DeactivateCheckout(ctx, co.ID)
	if err != nil {
		p.logger.Error("deactivate call failed, returning last known checkout",
			"checkout_id", co.ID,
			"status", co.Status,
			"error", err,
		)
		return toMap(co), nil
	}

	if deactivated.ID == "" {
		// Deactivation answered with an empty body.
		co.Status = statusCancelled
		return toMap(co), nil
	}
	return toMap(deactivated), nil
}

// Delete aliases Cancel; SumUp cannot hard-delete a checkout record.
func (p *Provider) Delete(ctx context.Context, externalID string) (map[string]any, error) {
	return p.Cancel(ctx, externalID)
}

// GetStatus degrades to ERROR on any fetch problem.
func (p *Provider) GetStatus(ctx context.Context, externalID string) provider.SessionStatus {
	defer p.observe("status", time.Now())

	co, err := p.client.GetCheckout(ctx, externalID)
	if err != nil {
		p.fail("status")
		p.logger.Warn("status fetch failed", "checkout_id", externalID, "error", err)
		return provider.StatusError
	}
	return MapStatus(co.Status)
}

// Retrieve is a passthrough read, degrading to the minimal known record.
func (p *Provider) Retrieve(ctx context.Context, externalID string) (map[string]any, error) {
	defer p.observe("retrieve", time.Now())

	co, err := p.client.GetCheckout(ctx, externalID)
	if err != nil {
		p.fail("retrieve")
		p.logger.Warn("retrieve failed, returning minimal record", "checkout_id", externalID, "error", err)
		return map[string]any{"id": externalID}, nil
	}
	return toMap(co), nil
}

// Update cannot mutate a SumUp checkout after creation. The input is echoed
// back augmented with the normalized amount and currency; a documented
// limitation, not a hidden failure.
func (p *Provider) Update(ctx context.Context, externalID string, in provider.UpdateInput) (map[string]any, error) {
	defer p.observe("update", time.Now())

	p.logger.Debug("sumup checkouts are immutable after creation, echoing input", "checkout_id", externalID)

	data := map[string]any{"id": externalID}
	if in.Description != "" {
		data["description"] = in.Description
	}
	for k, v := range in.Metadata {
		data[k] = v
	}
	if in.Amount != nil {
		data["amount"] = in.Amount.Format()
		data["currency"] = in.Amount.Currency
	}
	return data, nil
}

func (p *Provider) fetch(ctx context.Context, op, externalID string) (*Checkout, error) {
	if externalID == "" {
		return nil, provider.NewValidationError("checkout id is required")
	}
	co, err := p.client.GetCheckout(ctx, externalID)
	if err != nil {
		p.logger.Error("checkout fetch failed", "op", op, "checkout_id", externalID, "error", err)
		return nil, provider.NewGatewayError(gatewayName, op, err)
	}
	return co, nil
}

func successfulTransaction(co *Checkout) *Transaction {
	for i := range co.Transactions {
		if co.Transactions[i].Status == txnSuccessful {
			return &co.Transactions[i]
		}
	}
	return nil
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
