package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "itinerary", "id"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "itinerary", "abc")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrNotFound},
		{"23514", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			err := MapError(&pgconn.PgError{Code: tt.code}, "interest", "history")
			if !errors.Is(err, tt.want) {
				t.Fatalf("code %s: expected %v, got %v", tt.code, tt.want, err)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	err := MapError(context.DeadlineExceeded, "itinerary", "abc")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded to pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("context error must not map to ErrNotFound")
	}
}

func TestMapError_Unknown(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	err := MapError(base, "itinerary", "abc")
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped original error, got %v", err)
	}
}
