package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelglobal/planner/internal/catalog"
	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/testutil"
)

// newPGRepo returns a Postgres-backed Repo inside a rolled-back transaction.
// Skipped unless TEST_DATABASE_URL is set.
func newPGRepo(t *testing.T) catalog.Repo {
	t.Helper()
	return catalog.NewPostgresRepo(testutil.NewTx(t))
}

func TestPostgresRepo_MatchesBuiltin(t *testing.T) {
	r := newPGRepo(t)

	got, err := r.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin(), got)
}

func TestPostgresRepo_ListByCategory(t *testing.T) {
	r := newPGRepo(t)
	cat := domain.CategoryLandmark

	got, err := r.List(context.Background(), &cat)

	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, l := range got {
		assert.Equal(t, domain.CategoryLandmark, l.Category)
	}
}

func TestPostgresRepo_GetByID(t *testing.T) {
	r := newPGRepo(t)

	got, err := r.GetByID(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "Sydney", got.Name)
	assert.InDelta(t, -33.869, got.Coordinates.Lat, 1e-9)

	_, err = r.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
