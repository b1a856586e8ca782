package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/commercekit/payment-gateways/internal/provider"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ToHTTPStatus maps provider errors to HTTP responses.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if _, ok := provider.IsValidationError(err); ok {
		return http.StatusBadRequest
	}
	if _, ok := provider.IsInvalidStateError(err); ok {
		return http.StatusConflict
	}
	if _, ok := provider.IsGatewayError(err); ok {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func ToErrorCode(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := provider.IsValidationError(err); ok {
		return "VALIDATION_ERROR"
	}
	if _, ok := provider.IsInvalidStateError(err); ok {
		return "INVALID_STATE"
	}
	if _, ok := provider.IsGatewayError(err); ok {
		return "GATEWAY_ERROR"
	}
	return "INTERNAL_ERROR"
}

// WriteError renders a provider error as a JSON error envelope. The message
// always carries the upstream detail; there is no generic "something went
// wrong" without it.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := ToHTTPStatus(err)

	response := ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    ToErrorCode(err),
			Message: err.Error(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logger.Error("failed to encode error response", "error", encodeErr)
	}
}

func WriteJSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
