// Package interest implements the interest catalogue repository.
// Interest names are globally unique; unknown names are created on first use.
package interest

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Repo provides interest persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interest repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type interestRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

const listSQL = `
SELECT id, name, created_at
FROM interests
ORDER BY name`

// List returns the full interest catalogue ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Interest, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []interestRow
	if err := pgxscan.Select(ctx, querier, &rows, listSQL); err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}

	return toDomain(rows), nil
}

const insertSQL = `
INSERT INTO interests (id, name)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING`

const selectByNamesSQL = `
SELECT id, name, created_at
FROM interests
WHERE name = ANY($1)
ORDER BY name`

// GetOrCreateByNames resolves names to interests, creating any that do not
// exist yet. Concurrent first-use of the same name is safe: the insert uses
// ON CONFLICT DO NOTHING and the following read picks up whichever row won.
func (r *Repo) GetOrCreateByNames(ctx context.Context, names []string) ([]domain.Interest, error) {
	if len(names) == 0 {
		return nil, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	for _, name := range names {
		if _, err := querier.Exec(ctx, insertSQL, uuid.New(), name); err != nil {
			return nil, postgres.MapError(err, "interest", name)
		}
	}

	var rows []interestRow
	if err := pgxscan.Select(ctx, querier, &rows, selectByNamesSQL, names); err != nil {
		return nil, fmt.Errorf("select interests by names: %w", err)
	}

	return toDomain(rows), nil
}

func toDomain(rows []interestRow) []domain.Interest {
	out := make([]domain.Interest, len(rows))
	for i, row := range rows {
		out[i] = domain.Interest{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return out
}
