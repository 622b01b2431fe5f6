// Package catalog provides read-only access to the Location Catalog.
// Each backend has its own file; all satisfy Repo. No business logic lives
// here, only lookup and type mapping.
package catalog

import (
	"context"

	"github.com/travelglobal/planner/internal/domain"
)

// Repo defines the read operations on the Location Catalog.
// The catalog is immutable for the life of the process; there is no write API.
type Repo interface {
	// List returns every location in catalog order, optionally restricted to
	// one category. A nil category means all.
	List(ctx context.Context, category *domain.Category) ([]domain.Location, error)

	// GetByID returns a single location.
	// Returns domain.ErrNotFound if no location with that id exists.
	GetByID(ctx context.Context, id string) (domain.Location, error)
}
