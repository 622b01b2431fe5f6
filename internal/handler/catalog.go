package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/travelglobal/planner/internal/catalog"
	"github.com/travelglobal/planner/internal/domain"
)

// LocationsResponse is the body of GET /locations.
type LocationsResponse struct {
	Data []domain.Location `json:"data"`
}

// MapsResponse is the body of GET /maps.
type MapsResponse struct {
	Query     string `json:"query"`
	EmbedURL  string `json:"embed_url,omitempty"`
	SearchURL string `json:"search_url"`
}

// ListLocations handles GET /locations.
// Supports ?category= to filter by one category.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	var raw *string
	if !queryParam(w, r, "category", &raw) {
		return
	}

	var category *domain.Category
	if raw != nil && *raw != "" {
		c, err := domain.ParseCategory(*raw)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		category = &c
	}

	locs, err := s.planner.ListLocations(r.Context(), category)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, LocationsResponse{Data: locs})
}

// GetLocation handles GET /locations/{locationId}.
func (s *Server) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := s.planner.GetLocation(r.Context(), chi.URLParam(r, "locationId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// GetLinks handles GET /links. It returns the booking partner sites grouped
// by kind.
func (s *Server) GetLinks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.BookingLinks())
}

// GetMaps handles GET /maps?q=. The embed URL is omitted when no Maps API
// key is configured.
func (s *Server) GetMaps(w http.ResponseWriter, r *http.Request) {
	var q *string
	if !queryParam(w, r, "q", &q) {
		return
	}
	query := strings.TrimSpace(stringOr(q, ""))
	if query == "" {
		writeErrorBody(w, http.StatusUnprocessableEntity, codeValidation, "q is required")
		return
	}

	resp := MapsResponse{Query: query, SearchURL: catalog.MapsSearchURL(query)}
	if s.opts.MapsAPIKey != "" {
		resp.EmbedURL = catalog.MapsEmbedURL(s.opts.MapsAPIKey, query)
	}
	writeJSON(w, http.StatusOK, resp)
}
