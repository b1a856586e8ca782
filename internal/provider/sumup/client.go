package sumup

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

var tracer = otel.Tracer("paygate.provider.sumup")

const defaultBaseURL = "https://api.sumup.com"

// Client is the SumUp operation surface this adapter needs.
type Client interface {
	CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*Checkout, error)
	GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error)
	DeactivateCheckout(ctx context.Context, checkoutID string) (*Checkout, error)
	RefundTransaction(ctx context.Context, transactionID string, req RefundRequest) (*Transaction, error)
}

// APIError is a non-2xx response from SumUp, message preserved verbatim.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sumup error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500
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

func (c *HTTPClient) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*Checkout, error) {
	url := fmt.Sprintf("%s/v0.1/checkouts", c.baseURL)
	return sendRequest[CreateCheckoutRequest, Checkout](c, ctx, http.MethodPost, url, &req)
}

func (c *HTTPClient) GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	url := fmt.Sprintf("%s/v0.1/checkouts/%s", c.baseURL, checkoutID)
	return sendRequest[any, Checkout](c, ctx, http.MethodGet, url, nil)
}

func (c *HTTPClient) DeactivateCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	url := fmt.Sprintf("%s/v0.1/checkouts/%s", c.baseURL, checkoutID)
	return sendRequest[any, Checkout](c, ctx, http.MethodDelete, url, nil)
}

func (c *HTTPClient) RefundTransaction(ctx context.Context, transactionID string, req RefundRequest) (*Transaction, error) {
	url := fmt.Sprintf("%s/v0.1/me/refund/%s", c.baseURL, transactionID)
	return sendRequest[RefundRequest, Transaction](c, ctx, http.MethodPost, url, &req)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	ctx, span := tracer.Start(ctx, "sumup."+method)
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

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var apiErr apiErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       apiErr.ErrorCode,
			Message:    apiErr.Message,
		}
	}

	// Deactivation can answer 204 with an empty body.
	var out Resp
	if resp.StatusCode == http.StatusNoContent {
		return &out, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
