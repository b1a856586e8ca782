package sumup

import (
	"strings"

	"github.com/commercekit/payment-gateways/internal/provider"
)

// SumUp v0.1 API shapes, limited to what this adapter touches.

// AmountValue is an amount in cents that crosses the wire as a two-decimal
// JSON number, which is how SumUp formats monetary values.
type AmountValue int64

func (a AmountValue) MarshalJSON() ([]byte, error) {
	return []byte(provider.FormatCents(int64(a))), nil
}

func (a *AmountValue) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}
	cents, err := provider.ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = AmountValue(cents)
	return nil
}

type Checkout struct {
	ID string `json:"id"`
	// CheckoutReference echoes the host's idempotency key back on fetches
	// and webhooks.
	CheckoutReference string        `json:"checkout_reference"`
	Amount            AmountValue   `json:"amount"`
	Currency          string        `json:"currency"`
	Status            string        `json:"status"`
	Description       string        `json:"description,omitempty"`
	MerchantCode      string        `json:"merchant_code,omitempty"`
	ReturnURL         string        `json:"return_url,omitempty"`
	RedirectURL       string        `json:"redirect_url,omitempty"`
	Date              string        `json:"date,omitempty"`
	ValidUntil        string        `json:"valid_until,omitempty"`
	Transactions      []Transaction `json:"transactions,omitempty"`
}

type Transaction struct {
	ID              string      `json:"id"`
	TransactionCode string      `json:"transaction_code"`
	Amount          AmountValue `json:"amount"`
	Currency        string      `json:"currency"`
	Status          string      `json:"status"`
	Timestamp       string      `json:"timestamp,omitempty"`
}

type CreateCheckoutRequest struct {
	CheckoutReference string      `json:"checkout_reference"`
	Amount            AmountValue `json:"amount"`
	Currency          string      `json:"currency"`
	MerchantCode      string      `json:"merchant_code"`
	Description       string      `json:"description,omitempty"`
	ReturnURL         string      `json:"return_url,omitempty"`
	RedirectURL       string      `json:"redirect_url,omitempty"`
	PayToEmail        string      `json:"pay_to_email,omitempty"`
}

type RefundRequest struct {
	Amount AmountValue `json:"amount,omitempty"`
}

type apiErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Param     string `json:"param,omitempty"`
}
