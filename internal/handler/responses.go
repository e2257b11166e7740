package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sharonsgarden/garden-api/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left but to log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrSeedNotFound):
		return http.StatusNotFound, ErrMsgSeedNotFoundError
	case errors.Is(err, domain.ErrNotSeedOwner):
		return http.StatusForbidden, ErrMsgNotSeedOwnerError
	case errors.Is(err, domain.ErrInvalidKind):
		return http.StatusBadRequest, ErrMsgInvalidKindError
	case errors.Is(err, domain.ErrAlreadyWateredToday):
		return http.StatusConflict, ErrMsgAlreadyWateredError
	case errors.Is(err, domain.ErrAlreadyBloomed):
		return http.StatusConflict, ErrMsgAlreadyBloomedError
	case errors.Is(err, domain.ErrAtCapacity):
		return http.StatusConflict, ErrMsgAtCapacityError
	case errors.Is(err, domain.ErrSlotLimitReached):
		return http.StatusConflict, ErrMsgSlotLimitError
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, ErrMsgLedgerDownError
	case errors.Is(err, domain.ErrConcurrentConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
