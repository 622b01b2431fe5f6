package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/geo"
	"github.com/travelglobal/planner/internal/handler"
	"github.com/travelglobal/planner/internal/service"
	"github.com/travelglobal/planner/internal/session"
	"github.com/travelglobal/planner/internal/timeline"
)

// mockPlanner is a test double for handler.PlannerServicer.
// Set only the method fields your test needs.
type mockPlanner struct {
	listLocations  func(ctx context.Context, category *domain.Category) ([]domain.Location, error)
	getLocation    func(ctx context.Context, id string) (domain.Location, error)
	createSession  func(ctx context.Context) (uuid.UUID, domain.Snapshot, error)
	getSession     func(ctx context.Context, id uuid.UUID) (domain.Snapshot, error)
	deleteSession  func(ctx context.Context, id uuid.UUID) error
	subscribe      func(ctx context.Context, id uuid.UUID) (<-chan session.Event, func(), error)
	addLocation    func(ctx context.Context, id uuid.UUID, locationID string) (service.Result, error)
	removeLocation func(ctx context.Context, id uuid.UUID, locationID string) (service.Result, error)
	reorderItems   func(ctx context.Context, id uuid.UUID, ids []string) (service.Result, error)
	setDays        func(ctx context.Context, id uuid.UUID, locationID string, days int) (service.Result, error)
	clearAll       func(ctx context.Context, id uuid.UUID) (service.Result, error)
	togglePanel    func(ctx context.Context, id uuid.UUID) (service.Result, error)
	budget         func(ctx context.Context, id uuid.UUID, currency string) (budget.Breakdown, bool, error)
	calculate      func(ctx context.Context, values map[budget.ExpenseKind]int) (budget.Calculation, error)
	timeline       func(ctx context.Context, id uuid.UUID, start time.Time) ([]timeline.DayPlan, error)
	arcs           func(ctx context.Context, id uuid.UUID, segments int) ([]geo.Arc, error)
	shareText      func(ctx context.Context, id uuid.UUID) (string, error)
	shareQR        func(ctx context.Context, id uuid.UUID, size int) ([]byte, error)
	shareCard      func(ctx context.Context, id uuid.UUID, currency string) ([]byte, error)
}

func (m *mockPlanner) ListLocations(ctx context.Context, c *domain.Category) ([]domain.Location, error) {
	return m.listLocations(ctx, c)
}
func (m *mockPlanner) GetLocation(ctx context.Context, id string) (domain.Location, error) {
	return m.getLocation(ctx, id)
}
func (m *mockPlanner) CreateSession(ctx context.Context) (uuid.UUID, domain.Snapshot, error) {
	return m.createSession(ctx)
}
func (m *mockPlanner) GetSession(ctx context.Context, id uuid.UUID) (domain.Snapshot, error) {
	return m.getSession(ctx, id)
}
func (m *mockPlanner) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return m.deleteSession(ctx, id)
}
func (m *mockPlanner) Subscribe(ctx context.Context, id uuid.UUID) (<-chan session.Event, func(), error) {
	return m.subscribe(ctx, id)
}
func (m *mockPlanner) AddLocation(ctx context.Context, id uuid.UUID, loc string) (service.Result, error) {
	return m.addLocation(ctx, id, loc)
}
func (m *mockPlanner) RemoveLocation(ctx context.Context, id uuid.UUID, loc string) (service.Result, error) {
	return m.removeLocation(ctx, id, loc)
}
func (m *mockPlanner) ReorderItems(ctx context.Context, id uuid.UUID, ids []string) (service.Result, error) {
	return m.reorderItems(ctx, id, ids)
}
func (m *mockPlanner) SetDays(ctx context.Context, id uuid.UUID, loc string, days int) (service.Result, error) {
	return m.setDays(ctx, id, loc, days)
}
func (m *mockPlanner) ClearAll(ctx context.Context, id uuid.UUID) (service.Result, error) {
	return m.clearAll(ctx, id)
}
func (m *mockPlanner) TogglePanel(ctx context.Context, id uuid.UUID) (service.Result, error) {
	return m.togglePanel(ctx, id)
}
func (m *mockPlanner) Budget(ctx context.Context, id uuid.UUID, cur string) (budget.Breakdown, bool, error) {
	return m.budget(ctx, id, cur)
}
func (m *mockPlanner) Calculate(ctx context.Context, values map[budget.ExpenseKind]int) (budget.Calculation, error) {
	return m.calculate(ctx, values)
}
func (m *mockPlanner) Timeline(ctx context.Context, id uuid.UUID, start time.Time) ([]timeline.DayPlan, error) {
	return m.timeline(ctx, id, start)
}
func (m *mockPlanner) Arcs(ctx context.Context, id uuid.UUID, segments int) ([]geo.Arc, error) {
	return m.arcs(ctx, id, segments)
}
func (m *mockPlanner) ShareText(ctx context.Context, id uuid.UUID) (string, error) {
	return m.shareText(ctx, id)
}
func (m *mockPlanner) ShareQR(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	return m.shareQR(ctx, id, size)
}
func (m *mockPlanner) ShareCard(ctx context.Context, id uuid.UUID, cur string) ([]byte, error) {
	return m.shareCard(ctx, id, cur)
}

// compile-time check: mockPlanner must satisfy handler.PlannerServicer.
var _ handler.PlannerServicer = (*mockPlanner)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into a chi router, the
// same way main.go does in production.
func newHTTPHandler(svc handler.PlannerServicer) http.Handler {
	return handler.NewServer(svc, handler.Options{
		MapsAPIKey: "test-key",
		OpenAPI:    []byte("openapi: 3.0.3\n"),
	}).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func intPtr(n int) *int { return &n }

func paris() domain.Location {
	return domain.Location{
		ID: "6", Name: "Paris", Country: "France", Category: domain.CategoryCity,
		Coordinates: domain.Coordinates{Lat: 48.856, Lng: 2.352},
	}
}

func parisItem(order int) domain.ItineraryItem {
	return domain.ItineraryItem{Location: paris(), Order: order}
}
