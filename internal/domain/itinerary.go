package domain

// DefaultStayDays is the stay length used by every derived view when an
// item's Days is unset.
const DefaultStayDays = 2

// MaxStayDays is the longest stay any single stop may have. Longer values
// are rejected by the service and clamped by the store.
const MaxStayDays = 365

// ItineraryItem is a Location selected for the trip.
// Order is the zero-based position in the itinerary and is rewritten by the
// store on every mutation. Days is nil until the traveller picks a stay length.
type ItineraryItem struct {
	Location
	Order int  `json:"order"`
	Days  *int `json:"days,omitempty"`
}

// StayDays returns the number of days spent at this stop, falling back to
// DefaultStayDays when Days is unset or not positive. The result never
// exceeds MaxStayDays.
func (i ItineraryItem) StayDays() int {
	if i.Days == nil || *i.Days < 1 {
		return DefaultStayDays
	}
	return min(*i.Days, MaxStayDays)
}

// Clone returns a copy that shares no pointers with i.
func (i ItineraryItem) Clone() ItineraryItem {
	out := i
	if i.Days != nil {
		d := *i.Days
		out.Days = &d
	}
	return out
}

// TotalStayDays sums StayDays over items.
func TotalStayDays(items []ItineraryItem) int {
	total := 0
	for _, it := range items {
		total += it.StayDays()
	}
	return total
}

// CountryCount returns the number of distinct countries across items.
func CountryCount(items []ItineraryItem) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it.Country] = struct{}{}
	}
	return len(seen)
}

// Snapshot is a read-only copy of an itinerary and its panel flag.
type Snapshot struct {
	Items       []ItineraryItem `json:"items"`
	IsPanelOpen bool            `json:"is_panel_open"`
}
