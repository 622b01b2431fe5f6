package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// sessionID parses the {sessionId} path segment. On failure it writes a 400
// and returns false.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		badRequest(w, "sessionId must be a UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

// queryParam binds an optional form-style query parameter into dest, which
// must be a pointer to a pointer. dest is left nil when the parameter is
// absent. On failure it writes a 400 and returns false.
func queryParam(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		badRequest(w, fmt.Sprintf("invalid %s parameter: %v", name, err))
		return false
	}
	return true
}

// decodeBody decodes a JSON request body into dest, rejecting unknown fields.
// On failure it writes 413 for oversize bodies, 400 otherwise, and returns
// false.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorBody(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
			return false
		}
		badRequest(w, "request body must be valid JSON: "+err.Error())
		return false
	}
	return true
}

// intOr returns *p or fallback when p is nil.
func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// stringOr returns *p or fallback when p is nil.
func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
