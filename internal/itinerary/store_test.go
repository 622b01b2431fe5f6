package itinerary_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/itinerary"
)

// ---- helpers ---------------------------------------------------------------

func loc(id, country string) domain.Location {
	return domain.Location{ID: id, Name: "Place " + id, Country: country, Category: domain.CategoryCity}
}

func ids(snap domain.Snapshot) []string {
	out := make([]string, len(snap.Items))
	for i, it := range snap.Items {
		out[i] = it.ID
	}
	return out
}

// requireDense fails unless Order values are exactly 0..N-1 in sequence.
func requireDense(t *testing.T, snap domain.Snapshot) {
	t.Helper()
	for i, it := range snap.Items {
		require.Equal(t, i, it.Order, "item %s at position %d", it.ID, i)
	}
}

// ---- AddLocation -----------------------------------------------------------

func TestStore_AddLocation_AppendsWithOrder(t *testing.T) {
	s := itinerary.New()

	s.AddLocation(loc("a", "USA"))
	snap, notices := s.AddLocation(loc("b", "France"))

	assert.Equal(t, []string{"a", "b"}, ids(snap))
	requireDense(t, snap)
	assert.Nil(t, snap.Items[1].Days)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NoticeAdded, notices[0].Kind)
	assert.Equal(t, "b", notices[0].LocationID)
}

func TestStore_AddLocation_FirstItemOpensPanel(t *testing.T) {
	s := itinerary.New()
	require.False(t, s.Snapshot().IsPanelOpen)

	snap, _ := s.AddLocation(loc("a", "USA"))
	assert.True(t, snap.IsPanelOpen)

	// Closing the panel and adding a second item leaves it closed.
	s.TogglePanel()
	snap, _ = s.AddLocation(loc("b", "USA"))
	assert.False(t, snap.IsPanelOpen)
}

func TestStore_AddLocation_DuplicateIsNoOp(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))
	s.AddLocation(loc("b", "France"))

	snap, notices := s.AddLocation(loc("a", "USA"))

	assert.Equal(t, []string{"a", "b"}, ids(snap))
	requireDense(t, snap)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NoticeAlreadyPresent, notices[0].Kind)
	assert.Contains(t, notices[0].Message, "already in your trip")
}

// ---- RemoveLocation --------------------------------------------------------

func TestStore_RemoveLocation_Redensifies(t *testing.T) {
	s := itinerary.New()
	for _, id := range []string{"a", "b", "c", "d"} {
		s.AddLocation(loc(id, "USA"))
	}

	snap, notices := s.RemoveLocation("b")

	assert.Equal(t, []string{"a", "c", "d"}, ids(snap))
	requireDense(t, snap)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NoticeRemoved, notices[0].Kind)
	assert.Equal(t, "Removed Place b from your trip", notices[0].Message)
}

func TestStore_RemoveLocation_AbsentIsNoOp(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))
	before := s.Snapshot()

	after, notices := s.RemoveLocation("zzz")

	assert.Equal(t, before, after)
	assert.Empty(t, notices)
}

// ---- ReorderItems ----------------------------------------------------------

func TestStore_ReorderItems_TrustsCallerSequence(t *testing.T) {
	s := itinerary.New()
	for _, id := range []string{"a", "b", "c"} {
		s.AddLocation(loc(id, "USA"))
	}
	cur := s.Snapshot().Items
	// Stale Order values on input are ignored; position wins.
	reordered := []domain.ItineraryItem{cur[2], cur[0], cur[1]}

	snap, _ := s.ReorderItems(reordered)

	assert.Equal(t, []string{"c", "a", "b"}, ids(snap))
	requireDense(t, snap)
}

func TestStore_ReorderItems_CopiesInput(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))
	in := s.Snapshot().Items
	s.ReorderItems(in)

	in[0].Name = "mutated"

	assert.Equal(t, "Place a", s.Snapshot().Items[0].Name)
}

// ---- SetDays ---------------------------------------------------------------

func TestStore_SetDays(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))

	snap, _ := s.SetDays("a", 4)
	require.NotNil(t, snap.Items[0].Days)
	assert.Equal(t, 4, *snap.Items[0].Days)

	snap, _ = s.SetDays("a", 0)
	assert.Nil(t, snap.Items[0].Days)
	assert.Equal(t, domain.DefaultStayDays, snap.Items[0].StayDays())

	before := s.Snapshot()
	after, _ := s.SetDays("missing", 3)
	assert.Equal(t, before, after)
}

func TestStore_SetDays_ClampsToMaximum(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))

	snap, _ := s.SetDays("a", math.MaxInt)

	require.NotNil(t, snap.Items[0].Days)
	assert.Equal(t, domain.MaxStayDays, *snap.Items[0].Days)
}

// ---- ClearAll / TogglePanel -----------------------------------------------

func TestStore_ClearAll(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))
	s.AddLocation(loc("b", "USA"))

	snap, notices := s.ClearAll()

	assert.Empty(t, snap.Items)
	assert.False(t, snap.IsPanelOpen)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NoticeCleared, notices[0].Kind)

	// Clearing an already empty, closed store yields the same state.
	s.TogglePanel()
	snap, _ = s.ClearAll()
	assert.Empty(t, snap.Items)
	assert.False(t, snap.IsPanelOpen)
}

func TestStore_TogglePanel_LeavesItemsAlone(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))

	snap, _ := s.TogglePanel()
	assert.False(t, snap.IsPanelOpen)
	assert.Equal(t, []string{"a"}, ids(snap))

	snap, _ = s.TogglePanel()
	assert.True(t, snap.IsPanelOpen)
}

// ---- Snapshot isolation ----------------------------------------------------

func TestStore_Snapshot_IsDeepCopy(t *testing.T) {
	s := itinerary.New()
	s.AddLocation(loc("a", "USA"))
	s.SetDays("a", 3)

	snap := s.Snapshot()
	*snap.Items[0].Days = 99
	snap.Items[0].Order = 7

	fresh := s.Snapshot()
	assert.Equal(t, 3, *fresh.Items[0].Days)
	assert.Equal(t, 0, fresh.Items[0].Order)
}

// ---- properties ------------------------------------------------------------

// TestStore_RandomOperations_KeepInvariants drives the store with a seeded
// random mix of operations and checks density and uniqueness after each one.
func TestStore_RandomOperations_KeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	pool := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	s := itinerary.New()

	for step := 0; step < 500; step++ {
		var snap domain.Snapshot
		switch rng.IntN(4) {
		case 0, 1:
			snap, _ = s.AddLocation(loc(pool[rng.IntN(len(pool))], "USA"))
		case 2:
			snap, _ = s.RemoveLocation(pool[rng.IntN(len(pool))])
		case 3:
			cur := s.Snapshot().Items
			rng.Shuffle(len(cur), func(i, j int) { cur[i], cur[j] = cur[j], cur[i] })
			snap, _ = s.ReorderItems(cur)
		}

		requireDense(t, snap)
		seen := map[string]bool{}
		for _, it := range snap.Items {
			require.False(t, seen[it.ID], "duplicate id %s at step %d", it.ID, step)
			seen[it.ID] = true
		}
	}
}

func TestStore_AddTwice_SameMembershipAsOnce(t *testing.T) {
	once := itinerary.New()
	once.AddLocation(loc("a", "USA"))
	once.AddLocation(loc("b", "USA"))

	twice := itinerary.New()
	twice.AddLocation(loc("a", "USA"))
	twice.AddLocation(loc("b", "USA"))
	twice.AddLocation(loc("a", "USA"))

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}
