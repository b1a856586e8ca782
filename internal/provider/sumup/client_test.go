package sumup_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/payment-gateways/internal/config"
	"github.com/commercekit/payment-gateways/internal/provider/sumup"
)

func newTestClient(serverURL string) *sumup.HTTPClient {
	return sumup.NewClient(config.GatewayConfig{
		APIKey:  "sup_sk_test",
		BaseURL: serverURL,
	})
}

func TestHTTPClient_CreateCheckout_SendsAmountAsDecimalNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v0.1/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer sup_sk_test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// Amount crosses the wire as an unquoted two-decimal number.
		assert.Contains(t, string(body), `"amount":19.99`)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"co_abc","checkout_reference":"sess-1","amount":19.99,"currency":"EUR","status":"PENDING"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	co, err := client.CreateCheckout(context.Background(), sumup.CreateCheckoutRequest{
		CheckoutReference: "sess-1",
		Amount:            sumup.AmountValue(1999),
		Currency:          "EUR",
		MerchantCode:      "M1234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "co_abc", co.ID)
	assert.Equal(t, sumup.AmountValue(1999), co.Amount)
	assert.Equal(t, "PENDING", co.Status)
}

func TestHTTPClient_GetCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v0.1/checkouts/co_abc", r.URL.Path)

		w.Write([]byte(`{"id":"co_abc","status":"PAID","transactions":[{"id":"txn_1","status":"SUCCESSFUL","amount":19.99}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	co, err := client.GetCheckout(context.Background(), "co_abc")

	require.NoError(t, err)
	assert.Equal(t, "PAID", co.Status)
	require.Len(t, co.Transactions, 1)
	assert.Equal(t, sumup.AmountValue(1999), co.Transactions[0].Amount)
}

func TestHTTPClient_DeactivateCheckout_HandlesEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v0.1/checkouts/co_abc", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	co, err := client.DeactivateCheckout(context.Background(), "co_abc")

	require.NoError(t, err)
	assert.Empty(t, co.ID)
}

func TestHTTPClient_RefundTransaction_PostsToRefundEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v0.1/me/refund/txn_1", r.URL.Path)

		w.Write([]byte(`{"id":"txn_1","status":"SUCCESSFUL","amount":5.00}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	txn, err := client.RefundTransaction(context.Background(), "txn_1", sumup.RefundRequest{
		Amount: sumup.AmountValue(500),
	})

	require.NoError(t, err)
	assert.Equal(t, "txn_1", txn.ID)
	assert.Equal(t, sumup.AmountValue(500), txn.Amount)
}

func TestHTTPClient_DecodesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error_code": "DUPLICATED_CHECKOUT",
			"message":    "Checkout with this reference already exists",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateCheckout(context.Background(), sumup.CreateCheckoutRequest{})

	require.Error(t, err)
	apiErr, ok := sumup.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "DUPLICATED_CHECKOUT", apiErr.Code)
	assert.Equal(t, "Checkout with this reference already exists", apiErr.Message)
	assert.False(t, apiErr.IsRetryable())
}

func TestAmountValue_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(sumup.AmountValue(1999))
	require.NoError(t, err)
	assert.Equal(t, "19.99", string(b))

	var a sumup.AmountValue
	require.NoError(t, json.Unmarshal([]byte("19.99"), &a))
	assert.Equal(t, sumup.AmountValue(1999), a)

	// Some SumUp responses quote the amount.
	require.NoError(t, json.Unmarshal([]byte(`"5.00"`), &a))
	assert.Equal(t, sumup.AmountValue(500), a)
}
