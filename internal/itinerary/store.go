// Package itinerary holds the in-memory Itinerary Store: the ordered,
// de-duplicated list of locations a traveller has picked for a trip.
//
// Every mutator returns the resulting Snapshot together with the advisory
// notices it produced, so callers decide how to surface them. A Store is not
// safe for concurrent use; the session layer serialises access.
package itinerary

import (
	"fmt"

	"github.com/travelglobal/planner/internal/domain"
)

// Store is the single source of truth for one traveller's itinerary.
// The zero value is an empty itinerary with the panel closed.
type Store struct {
	items     []domain.ItineraryItem
	panelOpen bool
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() domain.Snapshot {
	items := make([]domain.ItineraryItem, len(s.items))
	for i, it := range s.items {
		items[i] = it.Clone()
	}
	return domain.Snapshot{Items: items, IsPanelOpen: s.panelOpen}
}

// AddLocation appends loc with Order = current length and Days unset.
// Adding an id that is already present changes nothing and reports
// NoticeAlreadyPresent. The first item added opens the panel.
func (s *Store) AddLocation(loc domain.Location) (domain.Snapshot, []domain.Notice) {
	if s.indexOf(loc.ID) >= 0 {
		return s.Snapshot(), []domain.Notice{{
			Kind:       domain.NoticeAlreadyPresent,
			Message:    fmt.Sprintf("%s is already in your trip!", loc.Name),
			LocationID: loc.ID,
		}}
	}

	if len(s.items) == 0 {
		s.panelOpen = true
	}
	s.items = append(s.items, domain.ItineraryItem{Location: loc, Order: len(s.items)})

	return s.Snapshot(), []domain.Notice{{
		Kind:       domain.NoticeAdded,
		Message:    fmt.Sprintf("Added %s to your trip!", loc.Name),
		LocationID: loc.ID,
	}}
}

// RemoveLocation drops the item with the given id and re-densifies Order,
// keeping the relative order of the remaining items. Unknown ids are a no-op.
func (s *Store) RemoveLocation(id string) (domain.Snapshot, []domain.Notice) {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.Snapshot(), nil
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.renumber()

	return s.Snapshot(), []domain.Notice{{
		Kind:       domain.NoticeRemoved,
		Message:    fmt.Sprintf("Removed %s from your trip", removed.Name),
		LocationID: removed.ID,
	}}
}

// ReorderItems replaces the itinerary with items in the given sequence and
// rewrites Order to match each item's position. The caller's ordering is
// trusted as-is; it is expected to be a permutation of the current items.
func (s *Store) ReorderItems(items []domain.ItineraryItem) (domain.Snapshot, []domain.Notice) {
	next := make([]domain.ItineraryItem, len(items))
	for i, it := range items {
		next[i] = it.Clone()
	}
	s.items = next
	s.renumber()
	return s.Snapshot(), nil
}

// SetDays sets the stay length for the item with the given id.
// days < 1 resets the item to the default stay and days above
// domain.MaxStayDays are clamped to it. Unknown ids are a no-op.
func (s *Store) SetDays(id string, days int) (domain.Snapshot, []domain.Notice) {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.Snapshot(), nil
	}
	if days < 1 {
		s.items[idx].Days = nil
	} else {
		d := min(days, domain.MaxStayDays)
		s.items[idx].Days = &d
	}
	return s.Snapshot(), nil
}

// ClearAll empties the itinerary and closes the panel.
func (s *Store) ClearAll() (domain.Snapshot, []domain.Notice) {
	s.items = nil
	s.panelOpen = false
	return s.Snapshot(), []domain.Notice{{Kind: domain.NoticeCleared, Message: "Trip cleared!"}}
}

// TogglePanel flips the panel visibility flag. It never touches the items.
func (s *Store) TogglePanel() (domain.Snapshot, []domain.Notice) {
	s.panelOpen = !s.panelOpen
	return s.Snapshot(), nil
}

func (s *Store) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// renumber restores the dense 0..N-1 ordering invariant.
func (s *Store) renumber() {
	for i := range s.items {
		s.items[i].Order = i
	}
}
