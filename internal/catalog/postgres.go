package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/travelglobal/planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgRepo is the Postgres implementation of Repo, reading the locations table
// created by the embedded migrations.
type pgRepo struct {
	db db
}

// NewPostgresRepo constructs a Repo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresRepo(db db) Repo {
	return &pgRepo{db: db}
}

const selectLocation = `
	SELECT id, name, country, category, lat, lng, description, image
	FROM locations`

// List returns locations ordered by their catalog position.
func (r *pgRepo) List(ctx context.Context, category *domain.Category) ([]domain.Location, error) {
	q := selectLocation + ` WHERE (@category::text IS NULL OR category = @category) ORDER BY position`

	var cat *string
	if category != nil {
		s := string(*category)
		cat = &s
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"category": cat})
	if err != nil {
		return nil, fmt.Errorf("catalog.pgRepo.List: %w", err)
	}
	defer rows.Close()

	locs := []domain.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog.pgRepo.List: scan: %w", err)
		}
		locs = append(locs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog.pgRepo.List: rows: %w", err)
	}
	return locs, nil
}

// GetByID retrieves a location by primary key.
func (r *pgRepo) GetByID(ctx context.Context, id string) (domain.Location, error) {
	row := r.db.QueryRow(ctx, selectLocation+` WHERE id = @id`, pgx.NamedArgs{"id": id})
	l, err := scanLocation(row)
	if err != nil {
		return domain.Location{}, fmt.Errorf("catalog.pgRepo.GetByID: %w", err)
	}
	return l, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(s scanner) (domain.Location, error) {
	var (
		l   domain.Location
		cat string
	)
	err := s.Scan(&l.ID, &l.Name, &l.Country, &cat, &l.Coordinates.Lat, &l.Coordinates.Lng, &l.Description, &l.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Location{}, domain.ErrNotFound
		}
		return domain.Location{}, err
	}
	l.Category = domain.Category(cat)
	return l, nil
}
