package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/geo"
	"github.com/travelglobal/planner/internal/timeline"
)

// Arc segment bounds for GET /arcs?segments=.
const (
	minSegments = 2
	maxSegments = 512
)

// BudgetLine is one stop of a BudgetResponse, in the display currency.
type BudgetLine struct {
	LocationID string       `json:"location_id"`
	Name       string       `json:"name"`
	Country    string       `json:"country"`
	Days       int          `json:"days"`
	Costs      budget.Costs `json:"costs"`
	Total      int          `json:"total"`
}

// BudgetResponse is the body of GET /sessions/{id}/budget. Every amount is
// already converted to Currency and rounded to whole units.
type BudgetResponse struct {
	Currency       string       `json:"currency"`
	Symbol         string       `json:"symbol"`
	Items          []BudgetLine `json:"items"`
	Subtotals      budget.Costs `json:"subtotals"`
	GrandTotal     int          `json:"grand_total"`
	GrandTotalText string       `json:"grand_total_text"`
	TotalDays      int          `json:"total_days"`
	Countries      int          `json:"countries"`
}

// TimelineDay is one day of a TimelineResponse.
type TimelineDay struct {
	Date             openapi_types.Date `json:"date"`
	DayNumber        int                `json:"day_number"`
	LocationID       string             `json:"location_id"`
	Name             string             `json:"name"`
	Country          string             `json:"country"`
	DayAtDestination int                `json:"day_at_destination"`
	Weather          timeline.Weather   `json:"weather"`
}

// TimelineResponse is the body of GET /sessions/{id}/timeline.
type TimelineResponse struct {
	Days   []TimelineDay   `json:"days"`
	Window timeline.Window `json:"window"`
}

// ArcsResponse is the body of GET /sessions/{id}/arcs.
type ArcsResponse struct {
	Data []geo.Arc `json:"data"`
}

// GetBudget handles GET /sessions/{sessionId}/budget.
// Supports ?currency= (USD, EUR, GBP, JPY; default USD). Returns 204 when the
// itinerary is empty.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var currency *string
	if !queryParam(w, r, "currency", &currency) {
		return
	}

	est, ok, err := s.planner.Budget(r.Context(), id, stringOr(currency, ""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, budgetToResponse(est))
}

// GetTimeline handles GET /sessions/{sessionId}/timeline.
// Supports ?start=YYYY-MM-DD (default today), ?day= to position the visible
// window, and ?format=csv. Returns 204 when the itinerary is empty.
func (s *Server) GetTimeline(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var (
		start  *openapi_types.Date
		day    *int
		format *string
	)
	if !queryParam(w, r, "start", &start) || !queryParam(w, r, "day", &day) || !queryParam(w, r, "format", &format) {
		return
	}
	wantCSV := false
	switch stringOr(format, "json") {
	case "json":
	case "csv":
		wantCSV = true
	default:
		badRequest(w, "format must be json or csv")
		return
	}

	var from openapi_types.Date
	if start != nil {
		from = *start
	}
	plans, err := s.planner.Timeline(r.Context(), id, from.Time)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(plans) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if wantCSV {
		writeTimelineCSV(w, plans)
		return
	}
	writeJSON(w, http.StatusOK, TimelineResponse{
		Days:   timelineToResponse(plans),
		Window: timeline.WindowAt(len(plans), intOr(day, 0)),
	})
}

// GetArcs handles GET /sessions/{sessionId}/arcs.
// Supports ?segments= (default 64, 2..512).
func (s *Server) GetArcs(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var segments *int
	if !queryParam(w, r, "segments", &segments) {
		return
	}
	n := intOr(segments, geo.DefaultSegments)
	if n < minSegments || n > maxSegments {
		writeErrorBody(w, http.StatusUnprocessableEntity, codeValidation,
			fmt.Sprintf("segments must be between %d and %d", minSegments, maxSegments))
		return
	}

	arcs, err := s.planner.Arcs(r.Context(), id, n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ArcsResponse{Data: arcs})
}

// --- mapping helpers --------------------------------------------------------

func budgetToResponse(b budget.Breakdown) BudgetResponse {
	convert := func(c budget.Costs) budget.Costs {
		return budget.Costs{
			Flights:    b.Display(c.Flights),
			Hotels:     b.Display(c.Hotels),
			Food:       b.Display(c.Food),
			Activities: b.Display(c.Activities),
		}
	}
	lines := make([]BudgetLine, len(b.Items))
	for i, l := range b.Items {
		lines[i] = BudgetLine{
			LocationID: l.Item.ID,
			Name:       l.Item.Name,
			Country:    l.Item.Country,
			Days:       l.Days,
			Costs:      convert(l.Costs),
			Total:      b.Display(l.Total),
		}
	}
	return BudgetResponse{
		Currency:       b.Currency.Code,
		Symbol:         b.Currency.Symbol,
		Items:          lines,
		Subtotals:      convert(b.Subtotals),
		GrandTotal:     b.Display(b.GrandTotal),
		GrandTotalText: b.Format(b.GrandTotal),
		TotalDays:      b.TotalDays,
		Countries:      b.Countries,
	}
}

func timelineToResponse(plans []timeline.DayPlan) []TimelineDay {
	out := make([]TimelineDay, len(plans))
	for i, p := range plans {
		out[i] = TimelineDay{
			Date:             openapi_types.Date{Time: p.Date},
			DayNumber:        p.DayNumber,
			LocationID:       p.Destination.ID,
			Name:             p.Destination.Name,
			Country:          p.Destination.Country,
			DayAtDestination: p.DayAtDestination,
			Weather:          p.Weather,
		}
	}
	return out
}

// timelineCSVHeaders defines the column names written as the first CSV row.
var timelineCSVHeaders = []string{
	"date", "day_number", "location_id", "destination", "country",
	"day_at_destination", "weather", "temp_c",
}

// writeTimelineCSV writes one row per day.
func writeTimelineCSV(w http.ResponseWriter, plans []timeline.DayPlan) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(timelineCSVHeaders)
	for _, p := range plans {
		//nolint:errcheck
		cw.Write([]string{
			p.Date.Format(openapi_types.DateFormat),
			strconv.Itoa(p.DayNumber),
			p.Destination.ID,
			p.Destination.Name,
			p.Destination.Country,
			strconv.Itoa(p.DayAtDestination),
			string(p.Weather.Kind),
			strconv.Itoa(p.Weather.TempC),
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="timeline.csv"`)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}
