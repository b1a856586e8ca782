// Package provider defines the host-facing payment provider contract that
// every gateway adapter implements. The host platform only ever sees this
// vocabulary; gateway-native statuses and payloads are translated at the
// adapter boundary.
package provider

import "context"

// SessionStatus is the closed set of payment states the host understands.
// Adapters produce it exclusively through their status mappers.
type SessionStatus string

const (
	StatusPending      SessionStatus = "PENDING"
	StatusRequiresMore SessionStatus = "REQUIRES_MORE"
	StatusAuthorized   SessionStatus = "AUTHORIZED"
	StatusCaptured     SessionStatus = "CAPTURED"
	StatusCanceled     SessionStatus = "CANCELED"
	StatusError        SessionStatus = "ERROR"
)

// WebhookAction is the normalized action a webhook reconciliation yields.
type WebhookAction string

const (
	ActionAuthorized   WebhookAction = "authorized"
	ActionCaptured     WebhookAction = "captured"
	ActionFailed       WebhookAction = "failed"
	ActionCanceled     WebhookAction = "canceled"
	ActionPending      WebhookAction = "pending"
	ActionRequiresMore WebhookAction = "requires_more"
	ActionNotSupported WebhookAction = "not_supported"
)

// InitiateInput carries everything needed to create a payment intent at the
// gateway. IdempotencyKey is supplied by the host and round-trips through
// gateway metadata so later webhooks and polls can be correlated back to the
// originating session.
type InitiateInput struct {
	Amount         Money
	IdempotencyKey string
	Email          string
	Description    string
}

// InitiateResult returns the gateway's identifier for the freshly created
// payment intent plus the raw gateway record.
type InitiateResult struct {
	ExternalID string
	Data       map[string]any
}

// AuthorizeResult is the outcome of a successful authorization check.
type AuthorizeResult struct {
	Status SessionStatus
	Data   map[string]any
}

// UpdateInput holds the post-creation fields a host may try to change.
// Gateways that do not support mutation return the input unchanged with
// normalized amount/currency; that is a documented limitation, not an error.
type UpdateInput struct {
	Amount      *Money
	Description string
	Metadata    map[string]string
}

// WebhookData is the correlated payload handed back to the host. SessionID is
// empty when the gateway record carries no correlation key; the host must
// treat such events as unresolvable rather than failing.
type WebhookData struct {
	SessionID   string         `json:"session_id"`
	AmountCents int64          `json:"amount"`
	Currency    string         `json:"currency,omitempty"`
	Raw         map[string]any `json:"raw,omitempty"`
}

// WebhookActionResult is produced once per webhook delivery. The host owns
// all state transitions that follow.
type WebhookActionResult struct {
	Action WebhookAction `json:"action"`
	Data   WebhookData   `json:"data"`
}

// Provider is the lifecycle contract between the host platform and one
// gateway adapter variant.
//
// Every operation re-derives truth from the gateway's authoritative record;
// implementations hold no local payment state. Calls may block on network I/O
// and accept a context for that reason, but issued gateway calls are never
// retried at this layer.
type Provider interface {
	// ID is the variant identifier, e.g. "mollie-ideal".
	ID() string
	// Gateway names the underlying processor, e.g. "mollie".
	Gateway() string

	// Initiate creates exactly one remote payment intent.
	Initiate(ctx context.Context, in InitiateInput) (*InitiateResult, error)

	// Authorize is a read-only status check that succeeds only when the
	// mapped status is AUTHORIZED or CAPTURED.
	Authorize(ctx context.Context, externalID string) (*AuthorizeResult, error)

	// Capture settles an authorized payment. Calling it on an already
	// captured payment is a no-op that returns the existing state.
	Capture(ctx context.Context, externalID string) (map[string]any, error)

	// Refund returns funds from a settled transaction.
	Refund(ctx context.Context, externalID string, amount Money) (map[string]any, error)

	// Cancel is best-effort: terminal states and gateway-side rejections
	// resolve to success with the last known snapshot.
	Cancel(ctx context.Context, externalID string) (map[string]any, error)

	// Delete aliases Cancel; the gateways in scope cannot hard-delete a
	// payment record.
	Delete(ctx context.Context, externalID string) (map[string]any, error)

	// GetStatus never fails: fetch problems degrade to StatusError because
	// callers poll blindly.
	GetStatus(ctx context.Context, externalID string) SessionStatus

	// Retrieve is a passthrough read that degrades to the minimal known
	// record on fetch failure.
	Retrieve(ctx context.Context, externalID string) (map[string]any, error)

	// Update applies post-creation changes where the gateway supports them.
	Update(ctx context.Context, externalID string, in UpdateInput) (map[string]any, error)

	// WebhookActionAndData reconciles one webhook delivery against the
	// gateway's authoritative record.
	WebhookActionAndData(ctx context.Context, payload []byte) (*WebhookActionResult, error)
}
