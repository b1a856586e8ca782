package mollie

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// RetryClient decorates a Client with bounded retries for transient
// transport failures. Retry policy lives here, in the transport layer; the
// lifecycle controller issues each gateway call at most once.
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

func (r *RetryClient) CreatePayment(ctx context.Context, req CreatePaymentRequest, idempotencyKey string) (*Payment, error) {
	return retry(r, ctx, func(ctx context.Context) (*Payment, error) {
		return r.inner.CreatePayment(ctx, req, idempotencyKey)
	})
}

func (r *RetryClient) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	return retry(r, ctx, func(ctx context.Context) (*Payment, error) {
		return r.inner.GetPayment(ctx, paymentID)
	})
}

func (r *RetryClient) UpdatePayment(ctx context.Context, paymentID string, req UpdatePaymentRequest) (*Payment, error) {
	return retry(r, ctx, func(ctx context.Context) (*Payment, error) {
		return r.inner.UpdatePayment(ctx, paymentID, req)
	})
}

func (r *RetryClient) CancelPayment(ctx context.Context, paymentID string) (*Payment, error) {
	return retry(r, ctx, func(ctx context.Context) (*Payment, error) {
		return r.inner.CancelPayment(ctx, paymentID)
	})
}

func (r *RetryClient) CreateCapture(ctx context.Context, paymentID string, req CreateCaptureRequest, idempotencyKey string) (*Capture, error) {
	return retry(r, ctx, func(ctx context.Context) (*Capture, error) {
		return r.inner.CreateCapture(ctx, paymentID, req, idempotencyKey)
	})
}

func (r *RetryClient) CreateRefund(ctx context.Context, paymentID string, req CreateRefundRequest, idempotencyKey string) (*Refund, error) {
	return retry(r, ctx, func(ctx context.Context) (*Refund, error) {
		return r.inner.CreateRefund(ctx, paymentID, req, idempotencyKey)
	})
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
		return apiErr.Status >= 500
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	// Transport-level failures without a structured response are assumed
	// transient.
	return true
}

func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(1000)) * time.Millisecond

	return base + jitter
}
