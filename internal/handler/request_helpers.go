package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MudShop_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On failure the response has already been written and the handler should
// return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(fmt.Sprintf(LogMsgRequestDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetPathParam returns a required chi URL parameter. If it is empty an
// error response is written and ok is false.
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads the limit query parameter, 0 when absent
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(QueryLimit)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > MaxLedgerLimit {
		return 0, fmt.Errorf("%s: %q", ErrMsgInvalidLimit, raw)
	}
	return n, nil
}
