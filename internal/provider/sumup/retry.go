package sumup

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// RetryClient decorates a Client with bounded retries for transient
// transport failures; the lifecycle controller above it issues each call at
// most once. Checkout creation stays idempotent under retry because the
// checkout_reference is rejected by SumUp on duplicate use; refunds have no
// such token and are excluded from retry entirely.
type RetryClient struct {
	inner      Client
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner Client, baseDelay time.Duration, maxRetries int) *RetryClient {
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  baseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*Checkout, error) {
	return retry(r, ctx, func(ctx context.Context) (*Checkout, error) {
		return r.inner.CreateCheckout(ctx, req)
	})
}

func (r *RetryClient) GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	return retry(r, ctx, func(ctx context.Context) (*Checkout, error) {
		return r.inner.GetCheckout(ctx, checkoutID)
	})
}

func (r *RetryClient) DeactivateCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	return retry(r, ctx, func(ctx context.Context) (*Checkout, error) {
		return r.inner.DeactivateCheckout(ctx, checkoutID)
	})
}

// RefundTransaction is never retried. The refund endpoint carries no
// idempotency token, so re-sending after an ambiguous failure could refund
// the same transaction twice; the failure surfaces and the host decides.
func (r *RetryClient) RefundTransaction(ctx context.Context, transactionID string, req RefundRequest) (*Transaction, error) {
	return r.inner.RefundTransaction(ctx, transactionID, req)
}

func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			time.Sleep(r.backoff(attempt))
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.StatusCode >= 500
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	return true
}

func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(1000)) * time.Millisecond

	return base + jitter
}
