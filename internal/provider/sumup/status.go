package sumup

import "github.com/commercekit/payment-gateways/internal/provider"

// SumUp checkout and transaction statuses. Total, fail-closed mapper: any
// status outside the known vocabulary maps to ERROR.
const (
	statusPending   = "PENDING"
	statusPaid      = "PAID"
	statusFailed    = "FAILED"
	statusCancelled = "CANCELLED"
	statusExpired   = "EXPIRED"

	txnSuccessful = "SUCCESSFUL"
)

// MapStatus translates a SumUp checkout status into the host vocabulary.
// PAID maps to CAPTURED everywhere, including during authorization checks;
// a paid hosted checkout is settled, not merely authorized.
func MapStatus(gatewayStatus string) provider.SessionStatus {
	switch gatewayStatus {
	case statusPending:
		return provider.StatusPending
	case statusPaid:
		return provider.StatusCaptured
	case statusCancelled:
		return provider.StatusCanceled
	case statusFailed, statusExpired:
		return provider.StatusError
	default:
		return provider.StatusError
	}
}

// webhookAction translates a re-fetched checkout status into the normalized
// webhook action vocabulary.
func webhookAction(gatewayStatus string) provider.WebhookAction {
	switch gatewayStatus {
	case statusPaid:
		return provider.ActionCaptured
	case statusFailed, statusExpired:
		return provider.ActionFailed
	case statusCancelled:
		return provider.ActionCanceled
	case statusPending:
		return provider.ActionPending
	default:
		return provider.ActionNotSupported
	}
}
