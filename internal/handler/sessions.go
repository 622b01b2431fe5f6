package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/service"
)

// SessionResponse is the body of POST /sessions and GET /sessions/{id}.
type SessionResponse struct {
	SessionID uuid.UUID       `json:"session_id"`
	Snapshot  domain.Snapshot `json:"snapshot"`
}

// MutationResponse is the body returned by every itinerary mutation.
type MutationResponse struct {
	Snapshot domain.Snapshot `json:"snapshot"`
	Notices  []domain.Notice `json:"notices"`
}

// AddItemRequest is the body of POST /sessions/{id}/items.
type AddItemRequest struct {
	LocationID string `json:"location_id"`
}

// SetDaysRequest is the body of PATCH /sessions/{id}/items/{locationId}.
type SetDaysRequest struct {
	Days *int `json:"days"`
}

// ReorderRequest is the body of PUT /sessions/{id}/items/order.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, snap, err := s.planner.CreateSession(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+id.String())
	writeJSON(w, http.StatusCreated, SessionResponse{SessionID: id, Snapshot: snap})
}

// GetSession handles GET /sessions/{sessionId}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	snap, err := s.planner.GetSession(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{SessionID: id, Snapshot: snap})
}

// DeleteSession handles DELETE /sessions/{sessionId}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.planner.DeleteSession(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /sessions/{sessionId}/items.
// Adding a location that is already present succeeds with an
// already_present notice.
func (s *Server) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body AddItemRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.LocationID == "" {
		writeErrorBody(w, http.StatusUnprocessableEntity, codeValidation, "location_id is required")
		return
	}
	s.writeResult(w, r)(s.planner.AddLocation(r.Context(), id, body.LocationID))
}

// RemoveItem handles DELETE /sessions/{sessionId}/items/{locationId}.
func (s *Server) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	s.writeResult(w, r)(s.planner.RemoveLocation(r.Context(), id, chi.URLParam(r, "locationId")))
}

// SetItemDays handles PATCH /sessions/{sessionId}/items/{locationId}.
func (s *Server) SetItemDays(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body SetDaysRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Days == nil {
		writeErrorBody(w, http.StatusUnprocessableEntity, codeValidation, "days is required")
		return
	}
	s.writeResult(w, r)(s.planner.SetDays(r.Context(), id, chi.URLParam(r, "locationId"), *body.Days))
}

// ReorderItems handles PUT /sessions/{sessionId}/items/order.
// ids must list every current item exactly once.
func (s *Server) ReorderItems(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var body ReorderRequest
	if !decodeBody(w, r, &body) {
		return
	}
	s.writeResult(w, r)(s.planner.ReorderItems(r.Context(), id, body.IDs))
}

// ClearItems handles DELETE /sessions/{sessionId}/items.
func (s *Server) ClearItems(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	s.writeResult(w, r)(s.planner.ClearAll(r.Context(), id))
}

// TogglePanel handles POST /sessions/{sessionId}/panel/toggle.
func (s *Server) TogglePanel(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	s.writeResult(w, r)(s.planner.TogglePanel(r.Context(), id))
}

// writeResult returns a func that writes a mutation outcome, so call sites
// can pass a service call's two results straight through.
func (s *Server) writeResult(w http.ResponseWriter, r *http.Request) func(service.Result, error) {
	return func(res service.Result, err error) {
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		notices := res.Notices
		if notices == nil {
			notices = []domain.Notice{}
		}
		writeJSON(w, http.StatusOK, MutationResponse{Snapshot: res.Snapshot, Notices: notices})
	}
}
