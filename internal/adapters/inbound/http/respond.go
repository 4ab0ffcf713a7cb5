package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
)

// Error codes returned in ErrorResp.
const (
	ErrorCode_BAD_REQUEST    = "BAD_REQUEST"
	ErrorCode_NOT_FOUND      = "NOT_FOUND"
	ErrorCode_UNPROCESSABLE  = "UNPROCESSABLE"
	ErrorCode_INTERNAL_ERROR = "INTERNAL_ERROR"
)

// Error is the body of a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResp wraps Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	statusCode, resp := toError(err)
	respondJSON(w, statusCode, resp)
}

func toError(err error) (int, ErrorResp) {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		configErr     *domain.ConfigurationErr
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrorResp{Error{Code: ErrorCode_BAD_REQUEST, Message: validationErr.Error()}}
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, ErrorResp{Error{Code: ErrorCode_NOT_FOUND, Message: notFoundErr.Error()}}
	case errors.As(err, &configErr):
		return http.StatusUnprocessableEntity, ErrorResp{Error{Code: ErrorCode_UNPROCESSABLE, Message: configErr.Error()}}
	}
	return http.StatusInternalServerError, ErrorResp{Error{Code: ErrorCode_INTERNAL_ERROR, Message: "internal server error"}}
}

// decodeBody decodes a JSON request body, reporting malformed input as a validation error.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationErr(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}
