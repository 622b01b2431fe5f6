// Package handler implements the HTTP handlers for the planner API.
// All handlers are methods on Server. Methods are split into area-specific
// files (health.go, sessions.go, views.go, etc.) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/travelglobal/planner/internal/budget"
	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/geo"
	"github.com/travelglobal/planner/internal/service"
	"github.com/travelglobal/planner/internal/session"
	"github.com/travelglobal/planner/internal/timeline"
)

// PlannerServicer defines the business operations the handlers depend on.
// It is declared here, in the consumer package, so handler tests can inject
// a mock without a session registry or catalog.
type PlannerServicer interface {
	ListLocations(ctx context.Context, category *domain.Category) ([]domain.Location, error)
	GetLocation(ctx context.Context, id string) (domain.Location, error)

	CreateSession(ctx context.Context) (uuid.UUID, domain.Snapshot, error)
	GetSession(ctx context.Context, id uuid.UUID) (domain.Snapshot, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	Subscribe(ctx context.Context, id uuid.UUID) (<-chan session.Event, func(), error)

	AddLocation(ctx context.Context, id uuid.UUID, locationID string) (service.Result, error)
	RemoveLocation(ctx context.Context, id uuid.UUID, locationID string) (service.Result, error)
	ReorderItems(ctx context.Context, id uuid.UUID, ids []string) (service.Result, error)
	SetDays(ctx context.Context, id uuid.UUID, locationID string, days int) (service.Result, error)
	ClearAll(ctx context.Context, id uuid.UUID) (service.Result, error)
	TogglePanel(ctx context.Context, id uuid.UUID) (service.Result, error)

	Budget(ctx context.Context, id uuid.UUID, currency string) (budget.Breakdown, bool, error)
	Calculate(ctx context.Context, values map[budget.ExpenseKind]int) (budget.Calculation, error)
	Timeline(ctx context.Context, id uuid.UUID, start time.Time) ([]timeline.DayPlan, error)
	Arcs(ctx context.Context, id uuid.UUID, segments int) ([]geo.Arc, error)
	ShareText(ctx context.Context, id uuid.UUID) (string, error)
	ShareQR(ctx context.Context, id uuid.UUID, size int) ([]byte, error)
	ShareCard(ctx context.Context, id uuid.UUID, currency string) ([]byte, error)
}

// Options carries optional Server settings.
type Options struct {
	// MapsAPIKey is embedded into /maps iframe URLs.
	MapsAPIKey string
	// OpenAPI is served verbatim at /openapi.yaml when non-empty.
	OpenAPI []byte
	// AllowedOrigins restricts websocket upgrades. Empty or "*" allows any
	// origin.
	AllowedOrigins []string
	// StreamPingPeriod is how often an open stream pings the client and
	// refreshes its session. Zero uses the default of 54s.
	StreamPingPeriod time.Duration
	Logger           *slog.Logger
}

// Server holds the dependencies shared by every handler.
type Server struct {
	planner PlannerServicer
	opts    Options
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{planner: planner, opts: opts, log: log}
}

// Routes mounts every endpoint on r. Middleware is the caller's concern.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	if len(s.opts.OpenAPI) > 0 {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}

	r.Get("/locations", s.ListLocations)
	r.Get("/locations/{locationId}", s.GetLocation)
	r.Get("/links", s.GetLinks)
	r.Get("/maps", s.GetMaps)

	r.Post("/calculator", s.Calculate)

	r.Post("/sessions", s.CreateSession)
	r.Route("/sessions/{sessionId}", func(r chi.Router) {
		r.Get("/", s.GetSession)
		r.Delete("/", s.DeleteSession)

		r.Post("/items", s.AddItem)
		r.Delete("/items", s.ClearItems)
		r.Put("/items/order", s.ReorderItems)
		r.Patch("/items/{locationId}", s.SetItemDays)
		r.Delete("/items/{locationId}", s.RemoveItem)
		r.Post("/panel/toggle", s.TogglePanel)

		r.Get("/budget", s.GetBudget)
		r.Get("/timeline", s.GetTimeline)
		r.Get("/arcs", s.GetArcs)

		r.Get("/share", s.GetShareText)
		r.Get("/share/qr.png", s.GetShareQR)
		r.Get("/share/card.pdf", s.GetShareCard)

		r.Get("/stream", s.Stream)
	})
}

// Handler returns a chi router with every endpoint mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}
