// Package user implements the user repository.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const getByIDSQL = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE id = $1`

// GetByID returns the user with the given ID.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, querier, &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return toDomain(row), nil
}

const getByEmailSQL = `
SELECT id, email, username, password_hash, created_at, updated_at
FROM users
WHERE email = $1`

// GetByEmail returns the user with the given email.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, querier, &row, getByEmailSQL, email); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return toDomain(row), nil
}

const createSQL = `
INSERT INTO users (id, email, username, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`

// Create inserts a new user.
// Returns domain.ErrAlreadyExists when the email or username is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err := querier.QueryRow(ctx, createSQL, u.ID, u.Email, u.Username, u.PasswordHash).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "user", u.Email)
	}

	return nil
}

func toDomain(row userRow) *domain.User {
	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
