// Package service contains the business logic for the Travel Global planner.
// Services validate inputs, look up catalog entries, and apply store
// mutations through the session layer. Derived views are computed here from
// a snapshot and never written back.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/catalog"
	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/geo"
	"github.com/travelglobal/planner/internal/itinerary"
	"github.com/travelglobal/planner/internal/session"
	"github.com/travelglobal/planner/internal/share"
	"github.com/travelglobal/planner/internal/timeline"
)

// Result is the outcome of a store mutation: the new state plus any advisory
// notices for the traveller.
type Result struct {
	Snapshot domain.Snapshot `json:"snapshot"`
	Notices  []domain.Notice `json:"notices"`
}

// Options carries the non-dependency settings of a PlannerService.
type Options struct {
	// SiteURL is appended to share text as the call to action.
	SiteURL string
	// Now overrides time.Now for the default timeline start date.
	Now    func() time.Time
	Logger *slog.Logger
}

// PlannerService implements business logic for itinerary sessions.
type PlannerService struct {
	catalog  catalog.Repo
	sessions *session.Registry
	siteURL  string
	now      func() time.Time
	log      *slog.Logger
}

// NewPlannerService constructs a PlannerService over the given catalog and
// session registry.
func NewPlannerService(c catalog.Repo, sessions *session.Registry, opts Options) *PlannerService {
	s := &PlannerService{
		catalog:  c,
		sessions: sessions,
		siteURL:  opts.SiteURL,
		now:      opts.Now,
		log:      opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// ---- catalog ----------------------------------------------------------------

// ListLocations returns the catalog, optionally filtered by category.
// Always returns a non-nil slice.
func (s *PlannerService) ListLocations(ctx context.Context, category *domain.Category) ([]domain.Location, error) {
	locs, err := s.catalog.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.ListLocations: %w", err)
	}
	if locs == nil {
		return []domain.Location{}, nil
	}
	return locs, nil
}

// GetLocation returns one catalog entry.
// Returns domain.ErrNotFound if the id is unknown.
func (s *PlannerService) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	loc, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("service.PlannerService.GetLocation: %w", err)
	}
	return loc, nil
}

// ---- sessions ---------------------------------------------------------------

// CreateSession starts a new, empty itinerary session.
func (s *PlannerService) CreateSession(ctx context.Context) (uuid.UUID, domain.Snapshot, error) {
	sess := s.sessions.Create()
	s.log.DebugContext(ctx, "session created", "session_id", sess.ID)
	return sess.ID, sess.View(), nil
}

// GetSession returns the current snapshot of a session.
// Returns domain.ErrNotFound for unknown or expired sessions.
func (s *PlannerService) GetSession(_ context.Context, id uuid.UUID) (domain.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("service.PlannerService.GetSession: %w", err)
	}
	return sess.View(), nil
}

// DeleteSession ends a session.
// Returns domain.ErrNotFound for unknown or expired sessions.
func (s *PlannerService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(id); err != nil {
		return fmt.Errorf("service.PlannerService.DeleteSession: %w", err)
	}
	s.log.DebugContext(ctx, "session deleted", "session_id", id)
	return nil
}

// Subscribe returns a feed of snapshots for a session. The caller must call
// the returned cancel func when done.
func (s *PlannerService) Subscribe(_ context.Context, id uuid.UUID) (<-chan session.Event, func(), error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, nil, fmt.Errorf("service.PlannerService.Subscribe: %w", err)
	}
	ch, cancel := sess.Subscribe()
	return ch, cancel, nil
}

// ---- mutations --------------------------------------------------------------

// AddLocation looks up locationID in the catalog and appends it to the
// itinerary. A location already in the itinerary is reported through a
// notice, not an error.
// Returns domain.ErrNotFound if the session or the location does not exist.
func (s *PlannerService) AddLocation(ctx context.Context, id uuid.UUID, locationID string) (Result, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.AddLocation: %w", err)
	}
	loc, err := s.catalog.GetByID(ctx, locationID)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.AddLocation: %w", err)
	}
	snap, notices := sess.Do(func(st *itinerary.Store) (domain.Snapshot, []domain.Notice) {
		return st.AddLocation(loc)
	})
	s.logNotices(ctx, id, notices)
	return Result{Snapshot: snap, Notices: notices}, nil
}

// RemoveLocation drops a location from the itinerary. Removing a location
// that is not in the itinerary is a no-op.
// Returns domain.ErrNotFound if the session does not exist.
func (s *PlannerService) RemoveLocation(ctx context.Context, id uuid.UUID, locationID string) (Result, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.RemoveLocation: %w", err)
	}
	snap, notices := sess.Do(func(st *itinerary.Store) (domain.Snapshot, []domain.Notice) {
		return st.RemoveLocation(locationID)
	})
	s.logNotices(ctx, id, notices)
	return Result{Snapshot: snap, Notices: notices}, nil
}

// ReorderItems rearranges the itinerary to follow ids.
// Returns domain.ErrValidation unless ids is an exact permutation of the
// current item ids, and domain.ErrNotFound if the session does not exist.
func (s *PlannerService) ReorderItems(ctx context.Context, id uuid.UUID, ids []string) (Result, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.ReorderItems: %w", err)
	}
	snap, notices, err := sess.Try(func(st *itinerary.Store) (domain.Snapshot, []domain.Notice, error) {
		ordered, err := permute(st.Snapshot().Items, ids)
		if err != nil {
			return domain.Snapshot{}, nil, err
		}
		snap, notices := st.ReorderItems(ordered)
		return snap, notices, nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.ReorderItems: %w", err)
	}
	return Result{Snapshot: snap, Notices: notices}, nil
}

// SetDays sets the stay length of an itinerary item.
// Returns domain.ErrValidation unless 1 <= days <= domain.MaxStayDays, and
// domain.ErrNotFound if the session does not exist or the location is not in
// the itinerary.
func (s *PlannerService) SetDays(ctx context.Context, id uuid.UUID, locationID string, days int) (Result, error) {
	if days < 1 || days > domain.MaxStayDays {
		return Result{}, fmt.Errorf("service.PlannerService.SetDays: %w: days must be between 1 and %d", domain.ErrValidation, domain.MaxStayDays)
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.SetDays: %w", err)
	}
	snap, notices, err := sess.Try(func(st *itinerary.Store) (domain.Snapshot, []domain.Notice, error) {
		if !contains(st.Snapshot().Items, locationID) {
			return domain.Snapshot{}, nil, fmt.Errorf("%w: location %q is not in the itinerary", domain.ErrNotFound, locationID)
		}
		snap, notices := st.SetDays(locationID, days)
		return snap, notices, nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.SetDays: %w", err)
	}
	return Result{Snapshot: snap, Notices: notices}, nil
}

// ClearAll empties the itinerary and closes the panel.
// Returns domain.ErrNotFound if the session does not exist.
func (s *PlannerService) ClearAll(ctx context.Context, id uuid.UUID) (Result, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.ClearAll: %w", err)
	}
	snap, notices := sess.Do((*itinerary.Store).ClearAll)
	s.logNotices(ctx, id, notices)
	return Result{Snapshot: snap, Notices: notices}, nil
}

// TogglePanel flips the itinerary panel visibility.
// Returns domain.ErrNotFound if the session does not exist.
func (s *PlannerService) TogglePanel(_ context.Context, id uuid.UUID) (Result, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("service.PlannerService.TogglePanel: %w", err)
	}
	snap, notices := sess.Do((*itinerary.Store).TogglePanel)
	return Result{Snapshot: snap, Notices: notices}, nil
}

// ---- derived views ------------------------------------------------------------

// Budget estimates the trip cost in the given currency code ("" means USD).
// The bool is false when the itinerary is empty and no estimate applies.
// Returns domain.ErrUnknownCurrency for unsupported codes.
func (s *PlannerService) Budget(_ context.Context, id uuid.UUID, currency string) (budget.Breakdown, bool, error) {
	cur, err := budget.LookupCurrency(currency)
	if err != nil {
		return budget.Breakdown{}, false, fmt.Errorf("service.PlannerService.Budget: %w", err)
	}
	snap, err := s.snapshot(id)
	if err != nil {
		return budget.Breakdown{}, false, fmt.Errorf("service.PlannerService.Budget: %w", err)
	}
	b, ok := budget.Estimate(snap.Items, cur)
	return b, ok, nil
}

// Calculate runs the free-form trip cost calculator. It needs no session.
func (s *PlannerService) Calculate(_ context.Context, values map[budget.ExpenseKind]int) (budget.Calculation, error) {
	calc, err := budget.Calculate(values)
	if err != nil {
		return budget.Calculation{}, fmt.Errorf("service.PlannerService.Calculate: %w", err)
	}
	return calc, nil
}

// Timeline lays the itinerary out day by day from start. A zero start means
// today. Returns an empty slice for an empty itinerary.
func (s *PlannerService) Timeline(_ context.Context, id uuid.UUID, start time.Time) ([]timeline.DayPlan, error) {
	snap, err := s.snapshot(id)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.Timeline: %w", err)
	}
	if start.IsZero() {
		start = s.now()
	}
	return timeline.Build(snap.Items, start), nil
}

// Arcs returns the flight paths between consecutive stops.
func (s *PlannerService) Arcs(_ context.Context, id uuid.UUID, segments int) ([]geo.Arc, error) {
	snap, err := s.snapshot(id)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.Arcs: %w", err)
	}
	return geo.Arcs(snap.Items, segments), nil
}

// ShareText returns the shareable summary; "" for an empty itinerary.
func (s *PlannerService) ShareText(_ context.Context, id uuid.UUID) (string, error) {
	snap, err := s.snapshot(id)
	if err != nil {
		return "", fmt.Errorf("service.PlannerService.ShareText: %w", err)
	}
	return share.Text(snap.Items, s.siteURL), nil
}

// ShareQR encodes the share text as a PNG QR code.
// Returns domain.ErrValidation for an empty itinerary.
func (s *PlannerService) ShareQR(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	text, err := s.ShareText(ctx, id)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("service.PlannerService.ShareQR: %w: itinerary is empty", domain.ErrValidation)
	}
	png, err := share.QRCode(text, size)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.ShareQR: %w", err)
	}
	return png, nil
}

// ShareCard renders the PDF trip card with the budget in currency.
// Returns domain.ErrValidation for an empty itinerary or unknown currency.
func (s *PlannerService) ShareCard(ctx context.Context, id uuid.UUID, currency string) ([]byte, error) {
	est, ok, err := s.Budget(ctx, id, currency)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.ShareCard: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("service.PlannerService.ShareCard: %w: itinerary is empty", domain.ErrValidation)
	}
	items := make([]domain.ItineraryItem, len(est.Items))
	for i, line := range est.Items {
		items[i] = line.Item
	}
	pdf, err := share.Card(items, &est)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.ShareCard: %w", err)
	}
	return pdf, nil
}

// ---- helpers ------------------------------------------------------------------

func (s *PlannerService) snapshot(id uuid.UUID) (domain.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return sess.View(), nil
}

func (s *PlannerService) logNotices(ctx context.Context, id uuid.UUID, notices []domain.Notice) {
	for _, n := range notices {
		s.log.DebugContext(ctx, "itinerary notice", "session_id", id, "kind", n.Kind, "location_id", n.LocationID)
	}
}

// permute returns items rearranged to follow ids. ids must name every item
// exactly once.
func permute(items []domain.ItineraryItem, ids []string) ([]domain.ItineraryItem, error) {
	if len(ids) != len(items) {
		return nil, fmt.Errorf("%w: expected %d ids, got %d", domain.ErrValidation, len(items), len(ids))
	}
	byID := make(map[string]domain.ItineraryItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]domain.ItineraryItem, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %q is not in the itinerary or is repeated", domain.ErrValidation, id)
		}
		delete(byID, id)
		out = append(out, it)
	}
	return out, nil
}

func contains(items []domain.ItineraryItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
