// Package testutil provides helpers for repository tests backed by pgxmock.
package testutil

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
)

// NewMockQuerier creates a pgxmock pool and a context that routes repository
// calls through it. Repositories built over a nil *pgxpool.Pool work with
// this context because the querier is resolved from the context first.
func NewMockQuerier(t *testing.T) (context.Context, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	return postgres.WithQuerier(context.Background(), mock), mock
}

// ExpectationsWereMet fails the test if any configured expectation was not
// satisfied.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet mock expectations: %v", err)
	}
}
