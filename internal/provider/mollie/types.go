package mollie

// Mollie v2 API shapes, limited to the fields this adapter reads or writes.

type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type Payment struct {
	Resource    string            `json:"resource,omitempty"`
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	Amount      Amount            `json:"amount"`
	Description string            `json:"description,omitempty"`
	Method      string            `json:"method,omitempty"`
	CaptureMode string            `json:"captureMode,omitempty"`
	RedirectURL string            `json:"redirectUrl,omitempty"`
	WebhookURL  string            `json:"webhookUrl,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`

	AmountRefunded  *Amount `json:"amountRefunded,omitempty"`
	AmountRemaining *Amount `json:"amountRemaining,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	PaidAt          string  `json:"paidAt,omitempty"`
	AuthorizedAt    string  `json:"authorizedAt,omitempty"`
	CanceledAt      string  `json:"canceledAt,omitempty"`
	ExpiredAt       string  `json:"expiredAt,omitempty"`

	Links PaymentLinks `json:"_links,omitempty"`
}

type PaymentLinks struct {
	Checkout *Link `json:"checkout,omitempty"`
}

type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

type CreatePaymentRequest struct {
	Amount       Amount            `json:"amount"`
	Description  string            `json:"description,omitempty"`
	RedirectURL  string            `json:"redirectUrl,omitempty"`
	WebhookURL   string            `json:"webhookUrl,omitempty"`
	Method       string            `json:"method,omitempty"`
	CaptureMode  string            `json:"captureMode,omitempty"`
	BillingEmail string            `json:"billingEmail,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type UpdatePaymentRequest struct {
	Description string            `json:"description,omitempty"`
	RedirectURL string            `json:"redirectUrl,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type CreateCaptureRequest struct {
	Amount *Amount `json:"amount,omitempty"`
}

type Capture struct {
	Resource  string `json:"resource,omitempty"`
	ID        string `json:"id"`
	Status    string `json:"status"`
	Amount    Amount `json:"amount"`
	PaymentID string `json:"paymentId,omitempty"`
}

type CreateRefundRequest struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description,omitempty"`
}

type Refund struct {
	Resource  string `json:"resource,omitempty"`
	ID        string `json:"id"`
	Status    string `json:"status"`
	Amount    Amount `json:"amount"`
	PaymentID string `json:"paymentId,omitempty"`
}

type apiErrorResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
