package mollie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/commercekit/payment-gateways/internal/config"
)

var tracer = otel.Tracer("paygate.provider.mollie")

const defaultBaseURL = "https://api.mollie.com"

// Client is the Mollie operation surface this adapter needs. It owns network
// and auth concerns; lifecycle semantics live in the Provider.
type Client interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest, idempotencyKey string) (*Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req UpdatePaymentRequest) (*Payment, error)
	CancelPayment(ctx context.Context, paymentID string) (*Payment, error)
	CreateCapture(ctx context.Context, paymentID string, req CreateCaptureRequest, idempotencyKey string) (*Capture, error)
	CreateRefund(ctx context.Context, paymentID string, req CreateRefundRequest, idempotencyKey string) (*Refund, error)
}

// APIError is a non-2xx response from Mollie, message preserved verbatim.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mollie error [%d %s]: %s", e.Status, e.Title, e.Detail)
}

func (e *APIError) IsRetryable() bool {
	return e.Status >= 500
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.GatewayConfig) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.ConnTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) CreatePayment(ctx context.Context, req CreatePaymentRequest, idempotencyKey string) (*Payment, error) {
	url := fmt.Sprintf("%s/v2/payments", c.baseURL)
	return sendRequest[CreatePaymentRequest, Payment](c, ctx, http.MethodPost, url, &req, idempotencyKey)
}

func (c *HTTPClient) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v2/payments/%s", c.baseURL, paymentID)
	return sendRequest[any, Payment](c, ctx, http.MethodGet, url, nil, "")
}

func (c *HTTPClient) UpdatePayment(ctx context.Context, paymentID string, req UpdatePaymentRequest) (*Payment, error) {
	url := fmt.Sprintf("%s/v2/payments/%s", c.baseURL, paymentID)
	return sendRequest[UpdatePaymentRequest, Payment](c, ctx, http.MethodPatch, url, &req, "")
}

func (c *HTTPClient) CancelPayment(ctx context.Context, paymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v2/payments/%s", c.baseURL, paymentID)
	return sendRequest[any, Payment](c, ctx, http.MethodDelete, url, nil, "")
}

func (c *HTTPClient) CreateCapture(ctx context.Context, paymentID string, req CreateCaptureRequest, idempotencyKey string) (*Capture, error) {
	url := fmt.Sprintf("%s/v2/payments/%s/captures", c.baseURL, paymentID)
	return sendRequest[CreateCaptureRequest, Capture](c, ctx, http.MethodPost, url, &req, idempotencyKey)
}

func (c *HTTPClient) CreateRefund(ctx context.Context, paymentID string, req CreateRefundRequest, idempotencyKey string) (*Refund, error) {
	url := fmt.Sprintf("%s/v2/payments/%s/refunds", c.baseURL, paymentID)
	return sendRequest[CreateRefundRequest, Refund](c, ctx, http.MethodPost, url, &req, idempotencyKey)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, url string, reqBody *Req, idempotencyKey string) (*Resp, error) {
	ctx, span := tracer.Start(ctx, "mollie."+method)
	defer span.End()
	span.SetAttributes(attribute.String("http.url", url))

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var apiErr apiErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Status == 0 {
			return nil, &APIError{Status: resp.StatusCode, Detail: string(body)}
		}
		return nil, &APIError{
			Status: apiErr.Status,
			Title:  apiErr.Title,
			Detail: apiErr.Detail,
		}
	}

	var out Resp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
