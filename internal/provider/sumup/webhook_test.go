package sumup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/payment-gateways/internal/provider"
	"github.com/commercekit/payment-gateways/internal/provider/sumup"
	"github.com/commercekit/payment-gateways/internal/provider/sumup/mocks"
)

func TestWebhook_ReconcilesFromFetchedCheckout(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	// The event claims PAID but the fetched record is what counts.
	payload := []byte(`{"event_type":"CHECKOUT_STATUS_CHANGED","payload":{"id":"co_abc","status":"PAID"}}`)

	mockClient.EXPECT().
		GetCheckout(mock.Anything, "co_abc").
		Return(&sumup.Checkout{
			ID:                "co_abc",
			CheckoutReference: "sess-1",
			Amount:            sumup.AmountValue(1999),
			Currency:          "EUR",
			Status:            "PAID",
		}, nil).
		Once()

	result, err := p.WebhookActionAndData(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, provider.ActionCaptured, result.Action)
	assert.Equal(t, "sess-1", result.Data.SessionID)
	assert.Equal(t, int64(1999), result.Data.AmountCents)
	assert.Equal(t, "EUR", result.Data.Currency)
}

func TestWebhook_TopLevelIDFallback(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetCheckout(mock.Anything, "co_top").
		Return(&sumup.Checkout{ID: "co_top", CheckoutReference: "sess-2", Status: "CANCELLED"}, nil).
		Once()

	result, err := p.WebhookActionAndData(context.Background(), []byte(`{"id":"co_top"}`))

	require.NoError(t, err)
	assert.Equal(t, provider.ActionCanceled, result.Action)
	assert.Equal(t, "sess-2", result.Data.SessionID)
}

func TestWebhook_MalformedPayloadIsValidationError(t *testing.T) {
	p := newProvider(t, testConfig(), mocks.NewMockClient(t))

	_, err := p.WebhookActionAndData(context.Background(), []byte(`{not json`))

	require.Error(t, err)
	_, ok := provider.IsValidationError(err)
	assert.True(t, ok)
}

func TestWebhook_MissingCheckoutIDIsValidationError(t *testing.T) {
	p := newProvider(t, testConfig(), mocks.NewMockClient(t))

	_, err := p.WebhookActionAndData(context.Background(), []byte(`{"event_type":"CHECKOUT_STATUS_CHANGED"}`))

	require.Error(t, err)
	_, ok := provider.IsValidationError(err)
	assert.True(t, ok)
}

func TestWebhook_RefetchFailureDegradesToFailedAction(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	payload := []byte(`{"payload":{"id":"co_abc","reference":"sess-1"}}`)

	mockClient.EXPECT().
		GetCheckout(mock.Anything, "co_abc").
		Return(nil, errors.New("connection reset")).
		Once()

	result, err := p.WebhookActionAndData(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, provider.ActionFailed, result.Action)
	// The reference from the envelope is the only correlation left.
	assert.Equal(t, "sess-1", result.Data.SessionID)
	assert.Equal(t, "co_abc", result.Data.Raw["id"])
}

func TestWebhook_UnknownStatusIsNotSupported(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetCheckout(mock.Anything, "co_abc").
		Return(&sumup.Checkout{ID: "co_abc", CheckoutReference: "sess-1", Status: "DISPUTED"}, nil).
		Once()

	result, err := p.WebhookActionAndData(context.Background(), []byte(`{"id":"co_abc"}`))

	require.NoError(t, err)
	assert.Equal(t, provider.ActionNotSupported, result.Action)
}
