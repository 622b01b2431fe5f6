package catalog

import (
	"context"
	"fmt"

	"github.com/travelglobal/planner/internal/domain"
)

// memRepo serves the catalog from a slice held in memory.
type memRepo struct {
	locations []domain.Location
	byID      map[string]int
}

// NewMemoryRepo builds a Repo over locs, validating each entry and rejecting
// duplicate ids. The slice is copied.
func NewMemoryRepo(locs []domain.Location) (Repo, error) {
	r := &memRepo{
		locations: make([]domain.Location, len(locs)),
		byID:      make(map[string]int, len(locs)),
	}
	for i, l := range locs {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("catalog.NewMemoryRepo: location %d: %w", i, err)
		}
		if _, dup := r.byID[l.ID]; dup {
			return nil, fmt.Errorf("catalog.NewMemoryRepo: %w: duplicate id %q", domain.ErrValidation, l.ID)
		}
		r.locations[i] = l
		r.byID[l.ID] = i
	}
	return r, nil
}

// NewDefaultRepo returns a memory Repo over the built-in catalog.
func NewDefaultRepo() Repo {
	r, err := NewMemoryRepo(Builtin())
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return r
}

func (r *memRepo) List(_ context.Context, category *domain.Category) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(r.locations))
	for _, l := range r.locations {
		if category != nil && l.Category != *category {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (domain.Location, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Location{}, fmt.Errorf("catalog.memRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.locations[i], nil
}
