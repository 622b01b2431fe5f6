// Package timeline expands an itinerary into a day-by-day calendar with a
// synthetic forecast for each day.
package timeline

import (
	"time"

	"github.com/travelglobal/planner/internal/domain"
)

// DayPlan is one calendar day of the trip.
// DayNumber is the zero-based index over the whole trip; DayAtDestination is
// the one-based day of the stay at Destination.
type DayPlan struct {
	Date             time.Time            `json:"date"`
	Destination      domain.ItineraryItem `json:"destination"`
	DayNumber        int                  `json:"day_number"`
	DayAtDestination int                  `json:"day_at_destination"`
	Weather          Weather              `json:"weather"`
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Build walks items in sequence and emits StayDays consecutive days for each,
// starting at the calendar day of start. The result length always equals
// domain.TotalStayDays(items).
func Build(items []domain.ItineraryItem, start time.Time) []DayPlan {
	plans := make([]DayPlan, 0, domain.TotalStayDays(items))
	day0 := StartOfDay(start)

	n := 0
	for _, it := range items {
		dest := it.Clone()
		for d := 0; d < it.StayDays(); d++ {
			plans = append(plans, DayPlan{
				// AddDate keeps wall-clock midnight across DST changes.
				Date:             day0.AddDate(0, 0, n),
				Destination:      dest,
				DayNumber:        n,
				DayAtDestination: d + 1,
				Weather:          WeatherFor(it.Country, d),
			})
			n++
		}
	}
	return plans
}

// WindowSize is the number of days shown at once around the selected day.
const WindowSize = 7

// Window describes the slice of plans visible around a selected day.
type Window struct {
	Selected int  `json:"selected"`
	Start    int  `json:"start"`
	End      int  `json:"end"`
	HasPrev  bool `json:"has_prev"`
	HasNext  bool `json:"has_next"`
}

// WindowAt centres a WindowSize-day window on selected, clamped to the
// bounds of a timeline with total days. selected is clamped to 0..total-1.
func WindowAt(total, selected int) Window {
	if total <= 0 {
		return Window{}
	}
	if selected < 0 {
		selected = 0
	}
	if selected > total-1 {
		selected = total - 1
	}
	start := max(0, selected-3)
	end := min(total, start+WindowSize)
	return Window{
		Selected: selected,
		Start:    start,
		End:      end,
		HasPrev:  start > 0,
		HasNext:  end < total,
	}
}
