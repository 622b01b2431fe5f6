package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/travelglobal/planner/internal/domain"
)

// ErrorDetail is the machine-readable code and human message of a failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

const (
	codeNotFound   = "not_found"
	codeValidation = "validation_error"
	codeBadRequest = "bad_request"
	codeTooLarge   = "payload_too_large"
	codeInternal   = "internal_error"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client has gone if this fails; nothing to report to.
	json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// badRequest reports input rejected before reaching the service layer,
// such as a malformed body or an unparsable query parameter.
func badRequest(w http.ResponseWriter, message string) {
	writeErrorBody(w, http.StatusBadRequest, codeBadRequest, message)
}

// writeError maps a service error onto a status code. Unexpected errors are
// logged once here and reported as 500 without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, codeNotFound, unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, codeValidation, unwrapMessage(err))
	default:
		s.log.ErrorContext(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
		writeErrorBody(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// unwrapMessage strips the "pkg.Type.Method: " call-site prefixes from a
// wrapped error, leaving the part a client can act on.
// e.g. "service.PlannerService.SetDays: validation error: days must be between 1 and 365"
// → "validation error: days must be between 1 and 365"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		head, rest, ok := strings.Cut(msg, ": ")
		if !ok || strings.ContainsAny(head, " ") || !strings.Contains(head, ".") {
			return msg
		}
		msg = rest
	}
}
