package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sharonsgarden/garden-api/internal/logger"
)

// HeaderActorID carries the identity of the acting user. The gateway in front
// of this service authenticates the session and injects the header.
const HeaderActorID = "X-Actor-ID"

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// writes the error response on failure. When it returns a non-nil error the
// response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RequireActor extracts the acting user id from the request header.
// If missing, it writes the error response and returns ok=false.
func RequireActor(r *http.Request, w http.ResponseWriter) (string, bool) {
	actorID := r.Header.Get(HeaderActorID)
	if actorID == "" {
		logger.FromContext(r.Context()).Warn("Missing actor header", "path", r.URL.Path)
		respondError(w, http.StatusBadRequest, ErrMsgMissingActorHeader)
		return "", false
	}
	return actorID, true
}

// GetQueryParam retrieves a required query parameter. If missing, it writes
// the error response and returns ok=false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}
