package mollie

import "github.com/commercekit/payment-gateways/internal/provider"

// Mollie payment statuses. The mapper below is total over this vocabulary and
// fails closed: anything unrecognized maps to ERROR rather than erroring,
// because status inspection runs in paths that cannot distinguish "unknown
// status" from "network failure".
const (
	statusOpen       = "open"
	statusPending    = "pending"
	statusAuthorized = "authorized"
	statusPaid       = "paid"
	statusCanceled   = "canceled"
	statusExpired    = "expired"
	statusFailed     = "failed"
)

// MapStatus translates a Mollie payment status into the host vocabulary.
func MapStatus(gatewayStatus string) provider.SessionStatus {
	switch gatewayStatus {
	case statusOpen:
		return provider.StatusRequiresMore
	case statusPending:
		return provider.StatusPending
	case statusAuthorized:
		return provider.StatusAuthorized
	case statusPaid:
		return provider.StatusCaptured
	case statusCanceled:
		return provider.StatusCanceled
	case statusExpired, statusFailed:
		return provider.StatusError
	default:
		return provider.StatusError
	}
}

// webhookAction translates a re-fetched Mollie status into the normalized
// webhook action vocabulary.
func webhookAction(gatewayStatus string) provider.WebhookAction {
	switch gatewayStatus {
	case statusAuthorized:
		return provider.ActionAuthorized
	case statusPaid:
		return provider.ActionCaptured
	case statusExpired, statusFailed:
		return provider.ActionFailed
	case statusCanceled:
		return provider.ActionCanceled
	case statusPending:
		return provider.ActionPending
	case statusOpen:
		return provider.ActionRequiresMore
	default:
		return provider.ActionNotSupported
	}
}
