package middleware

import (
	"encoding/json"
	"net/http"
)

// Error codes written by this package. They share the handler package's
// {"error":{"code","message"}} envelope.
const (
	CodePayloadTooLarge = "payload_too_large"
	CodeRateLimited     = "rate_limited"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError writes the JSON error envelope with the given status.
func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client has gone if this fails; nothing to report to.
	json.NewEncoder(w).Encode(body)
}
