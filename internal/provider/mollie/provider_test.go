package mollie_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/payment-gateways/internal/config"
	"github.com/commercekit/payment-gateways/internal/provider"
	"github.com/commercekit/payment-gateways/internal/provider/mollie"
	"github.com/commercekit/payment-gateways/internal/provider/mollie/mocks"
)

func testConfig() config.GatewayConfig {
	return config.GatewayConfig{
		APIKey:        "test_abc123",
		RedirectURL:   "https://shop.example.com/return",
		HostURL:       "https://shop.example.com",
		WebhookSecret: "whsec_test",
		AutoCapture:   true,
		Environment:   "test",
		Description:   "Order payment",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProvider(t *testing.T, cfg config.GatewayConfig, client mollie.Client) *mollie.Provider {
	t.Helper()
	p, err := mollie.New(cfg, provider.Variant{ID: "mollie-ideal", Method: "ideal"}, client, testLogger(), nil)
	require.NoError(t, err)
	return p
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""

	_, err := mollie.New(cfg, provider.Variant{ID: "mollie"}, mocks.NewMockClient(t), testLogger(), nil)

	require.Error(t, err)
	_, ok := provider.IsValidationError(err)
	assert.True(t, ok)
}

func TestNew_RequiresVariantID(t *testing.T) {
	_, err := mollie.New(testConfig(), provider.Variant{}, mocks.NewMockClient(t), testLogger(), nil)

	require.Error(t, err)
	_, ok := provider.IsValidationError(err)
	assert.True(t, ok)
}

func TestInitiate_CreatesPaymentWithAutomaticCapture(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	expectedReq := mollie.CreatePaymentRequest{
		Amount:      mollie.Amount{Currency: "EUR", Value: "19.99"},
		Description: "Order payment",
		RedirectURL: "https://shop.example.com/return",
		WebhookURL:  "https://shop.example.com/hooks/payment/mollie-ideal_mollie",
		Method:      "ideal",
		CaptureMode: "automatic",
		Metadata:    map[string]string{"session_id": "sess-1"},
	}

	mockClient.EXPECT().
		CreatePayment(mock.Anything, expectedReq, "sess-1").
		Return(&mollie.Payment{
			ID:     "tr_abc",
			Status: "open",
			Amount: mollie.Amount{Currency: "EUR", Value: "19.99"},
		}, nil).
		Once()

	result, err := p.Initiate(context.Background(), provider.InitiateInput{
		Amount:         provider.Money{Cents: 1999, Currency: "EUR"},
		IdempotencyKey: "sess-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "tr_abc", result.ExternalID)
	assert.Equal(t, "open", result.Data["status"])
}

func TestInitiate_ManualCaptureWhenAutoCaptureDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AutoCapture = false

	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, cfg, mockClient)

	mockClient.EXPECT().
		CreatePayment(mock.Anything, mock.MatchedBy(func(req mollie.CreatePaymentRequest) bool {
			return req.CaptureMode == "manual"
		}), "sess-1").
		Return(&mollie.Payment{ID: "tr_abc", Status: "open"}, nil).
		Once()

	_, err := p.Initiate(context.Background(), provider.InitiateInput{
		Amount:         provider.Money{Cents: 1999, Currency: "EUR"},
		IdempotencyKey: "sess-1",
	})

	require.NoError(t, err)
}

func TestInitiate_RequiresIdempotencyKey(t *testing.T) {
	p := newProvider(t, testConfig(), mocks.NewMockClient(t))

	_, err := p.Initiate(context.Background(), provider.InitiateInput{
		Amount: provider.Money{Cents: 1999, Currency: "EUR"},
	})

	require.Error(t, err)
	_, ok := provider.IsValidationError(err)
	assert.True(t, ok)
}

func TestInitiate_GatewayRejectionCarriesDetailVerbatim(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		CreatePayment(mock.Anything, mock.Anything, "sess-1").
		Return(nil, &mollie.APIError{
			Status: 422,
			Title:  "Unprocessable Entity",
			Detail: "The amount is higher than the maximum",
		}).
		Once()

	_, err := p.Initiate(context.Background(), provider.InitiateInput{
		Amount:         provider.Money{Cents: 1999, Currency: "EUR"},
		IdempotencyKey: "sess-1",
	})

	require.Error(t, err)
	ve, ok := provider.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The amount is higher than the maximum", ve.Message)
}

func TestInitiate_ServerErrorBecomesGatewayError(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		CreatePayment(mock.Anything, mock.Anything, "sess-1").
		Return(nil, &mollie.APIError{Status: 503, Detail: "service unavailable"}).
		Once()

	_, err := p.Initiate(context.Background(), provider.InitiateInput{
		Amount:         provider.Money{Cents: 1999, Currency: "EUR"},
		IdempotencyKey: "sess-1",
	})

	require.Error(t, err)
	ge, ok := provider.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "mollie", ge.Gateway)
}

func TestAuthorize_PaidCountsAsCaptured(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "paid"}, nil).
		Once()

	result, err := p.Authorize(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, provider.StatusCaptured, result.Status)
}

func TestAuthorize_OpenPaymentIsInvalidState(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "open"}, nil).
		Once()

	_, err := p.Authorize(context.Background(), "tr_abc")

	require.Error(t, err)
	se, ok := provider.IsInvalidStateError(err)
	require.True(t, ok)
	assert.Equal(t, "open", se.Status)
}

func TestCapture_AlreadyPaidIsNoOp(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	// Only the fetch goes out; a second capture request would risk a double
	// charge.
	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "paid"}, nil).
		Once()

	data, err := p.Capture(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, "paid", data["status"])
	mockClient.AssertNotCalled(t, "CreateCapture", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCapture_AuthorizedWithAutoCaptureDoesNotIssueCapture(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "authorized"}, nil).
		Once()

	data, err := p.Capture(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, "authorized", data["status"])
	mockClient.AssertNotCalled(t, "CreateCapture", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCapture_ManualModeCapturesAndConfirms(t *testing.T) {
	cfg := testConfig()
	cfg.AutoCapture = false

	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, cfg, mockClient)

	authorized := &mollie.Payment{
		ID:       "tr_abc",
		Status:   "authorized",
		Metadata: map[string]string{"session_id": "sess-1"},
	}
	paid := &mollie.Payment{
		ID:       "tr_abc",
		Status:   "paid",
		Metadata: map[string]string{"session_id": "sess-1"},
	}

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(authorized, nil).
		Once()
	mockClient.EXPECT().
		CreateCapture(mock.Anything, "tr_abc", mollie.CreateCaptureRequest{}, "sess-1").
		Return(&mollie.Capture{ID: "cpt_1", Status: "succeeded"}, nil).
		Once()
	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(paid, nil).
		Once()

	data, err := p.Capture(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, "paid", data["status"])
}

func TestCapture_UnconfirmedCaptureIsInvalidState(t *testing.T) {
	cfg := testConfig()
	cfg.AutoCapture = false

	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, cfg, mockClient)

	authorized := &mollie.Payment{
		ID:       "tr_abc",
		Status:   "authorized",
		Metadata: map[string]string{"session_id": "sess-1"},
	}

	// The confirmation fetch still reports authorized; a silent success here
	// would tell the host money moved when it did not.
	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(authorized, nil).
		Twice()
	mockClient.EXPECT().
		CreateCapture(mock.Anything, "tr_abc", mollie.CreateCaptureRequest{}, "sess-1").
		Return(&mollie.Capture{ID: "cpt_1", Status: "pending"}, nil).
		Once()

	_, err := p.Capture(context.Background(), "tr_abc")

	require.Error(t, err)
	se, ok := provider.IsInvalidStateError(err)
	require.True(t, ok)
	assert.Equal(t, "authorized", se.Status)
}

func TestCapture_OpenPaymentIsInvalidState(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "open"}, nil).
		Once()

	_, err := p.Capture(context.Background(), "tr_abc")

	require.Error(t, err)
	se, ok := provider.IsInvalidStateError(err)
	require.True(t, ok)
	assert.Equal(t, "open", se.Status)
}

func TestRefund_RequiresCapturedPayment(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "open"}, nil).
		Once()

	_, err := p.Refund(context.Background(), "tr_abc", provider.Money{Cents: 500, Currency: "EUR"})

	require.Error(t, err)
	_, ok := provider.IsInvalidStateError(err)
	assert.True(t, ok)
}

func TestRefund_FormatsAmountForTheWire(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	paid := &mollie.Payment{
		ID:       "tr_abc",
		Status:   "paid",
		Metadata: map[string]string{"session_id": "sess-1"},
	}

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(paid, nil).
		Once()
	mockClient.EXPECT().
		CreateRefund(mock.Anything, "tr_abc", mollie.CreateRefundRequest{
			Amount:      mollie.Amount{Currency: "EUR", Value: "5.00"},
			Description: "Order payment",
		}, "sess-1").
		Return(&mollie.Refund{ID: "re_1", Status: "pending"}, nil).
		Once()

	data, err := p.Refund(context.Background(), "tr_abc", provider.Money{Cents: 500, Currency: "EUR"})

	require.NoError(t, err)
	refund, ok := data["refund"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "re_1", refund["id"])
}

func TestCancel_TerminalPaymentReturnsSnapshotWithoutCall(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "expired"}, nil).
		Once()

	data, err := p.Cancel(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, "expired", data["status"])
	mockClient.AssertNotCalled(t, "CancelPayment", mock.Anything, mock.Anything)
}

func TestCancel_GatewayRejectionDegradesToSnapshot(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "open"}, nil).
		Once()
	mockClient.EXPECT().
		CancelPayment(mock.Anything, "tr_abc").
		Return(nil, &mollie.APIError{Status: 422, Detail: "cannot be canceled"}).
		Once()

	data, err := p.Cancel(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, "open", data["status"])
}

func TestCancel_PendingPaymentIsCanceled(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "open"}, nil).
		Once()
	mockClient.EXPECT().
		CancelPayment(mock.Anything, "tr_abc").
		Return(&mollie.Payment{ID: "tr_abc", Status: "canceled"}, nil).
		Once()

	data, err := p.Cancel(context.Background(), "tr_abc")

	require.NoError(t, err)
	assert.Equal(t, "canceled", data["status"])
}

func TestGetStatus_DegradesToErrorOnFetchFailure(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_gone").
		Return(nil, &mollie.APIError{Status: 404, Detail: "No payment exists"}).
		Once()

	status := p.GetStatus(context.Background(), "tr_gone")

	assert.Equal(t, provider.StatusError, status)
}

func TestRetrieve_DegradesToMinimalRecord(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		GetPayment(mock.Anything, "tr_gone").
		Return(nil, errors.New("connection reset")).
		Once()

	data, err := p.Retrieve(context.Background(), "tr_gone")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "tr_gone"}, data)
}

func TestUpdate_EchoesRequestedAmountNormalized(t *testing.T) {
	mockClient := mocks.NewMockClient(t)
	p := newProvider(t, testConfig(), mockClient)

	mockClient.EXPECT().
		UpdatePayment(mock.Anything, "tr_abc", mollie.UpdatePaymentRequest{Description: "new description"}).
		Return(&mollie.Payment{ID: "tr_abc", Status: "open", Description: "new description"}, nil).
		Once()

	amount := provider.Money{Cents: 2500, Currency: "EUR"}
	data, err := p.Update(context.Background(), "tr_abc", provider.UpdateInput{
		Description: "new description",
		Amount:      &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, "25.00", data["requested_amount"])
	assert.Equal(t, "EUR", data["requested_currency"])
}
