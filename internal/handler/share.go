package handler

import (
	"fmt"
	"net/http"
)

// QR code size bounds for GET /share/qr.png?size=.
const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// ShareResponse is the body of GET /sessions/{id}/share.
type ShareResponse struct {
	Text string `json:"text"`
}

// GetShareText handles GET /sessions/{sessionId}/share.
// Returns 204 when the itinerary is empty.
func (s *Server) GetShareText(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	text, err := s.planner.ShareText(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if text == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, ShareResponse{Text: text})
}

// GetShareQR handles GET /sessions/{sessionId}/share/qr.png.
// Supports ?size= in pixels (default 256, 64..1024).
func (s *Server) GetShareQR(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var size *int
	if !queryParam(w, r, "size", &size) {
		return
	}
	n := intOr(size, defaultQRSize)
	if n < minQRSize || n > maxQRSize {
		writeErrorBody(w, http.StatusUnprocessableEntity, codeValidation,
			fmt.Sprintf("size must be between %d and %d", minQRSize, maxQRSize))
		return
	}

	png, err := s.planner.ShareQR(r.Context(), id, n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBinary(w, "image/png", "", png)
}

// GetShareCard handles GET /sessions/{sessionId}/share/card.pdf.
// Supports ?currency= for the budget line.
func (s *Server) GetShareCard(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var currency *string
	if !queryParam(w, r, "currency", &currency) {
		return
	}

	pdf, err := s.planner.ShareCard(r.Context(), id, stringOr(currency, ""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBinary(w, "application/pdf", "my-trip.pdf", pdf)
}

func writeBinary(w http.ResponseWriter, contentType, filename string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	}
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(b)
}
