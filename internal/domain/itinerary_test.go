package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewItinerary_DayPlanCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "single day", from: date(2026, 6, 1), to: date(2026, 6, 1), want: 1},
		{name: "one week", from: date(2026, 6, 1), to: date(2026, 6, 7), want: 7},
		{name: "across month boundary", from: date(2026, 6, 28), to: date(2026, 7, 3), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it, err := NewItinerary("Rome", "", 2, 0, tt.from, tt.to, Anonymous())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(it.DayPlans) != tt.want {
				t.Fatalf("day plans: got %d, want %d", len(it.DayPlans), tt.want)
			}
			if it.NumberOfDays() != tt.want {
				t.Errorf("NumberOfDays: got %d, want %d", it.NumberOfDays(), tt.want)
			}
			for i, dp := range it.DayPlans {
				if dp.DayNumber != i+1 {
					t.Errorf("day plan %d has number %d, want contiguous 1..N", i, dp.DayNumber)
				}
			}
		})
	}
}

func TestNewItinerary_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		destination string
		adults      int
		children    int
		from        time.Time
		to          time.Time
	}{
		{name: "blank destination", destination: "   ", adults: 1, from: date(2026, 6, 1), to: date(2026, 6, 2)},
		{name: "toDate before fromDate", destination: "Rome", adults: 1, from: date(2026, 6, 5), to: date(2026, 6, 1)},
		{name: "negative adults", destination: "Rome", adults: -1, from: date(2026, 6, 1), to: date(2026, 6, 2)},
		{name: "negative children", destination: "Rome", adults: 1, children: -2, from: date(2026, 6, 1), to: date(2026, 6, 2)},
		{name: "zero dates", destination: "Rome", adults: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewItinerary(tt.destination, "", tt.adults, tt.children, tt.from, tt.to, Anonymous())
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewItinerary_OwnerFromCreator(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	anon, err := NewItinerary("Rome", "", 1, 0, date(2026, 6, 1), date(2026, 6, 3), Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if anon.Owned() {
		t.Error("anonymous creation should leave the itinerary unowned")
	}

	owned, err := NewItinerary("Rome", "", 1, 0, date(2026, 6, 1), date(2026, 6, 3), Authenticated(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !owned.OwnedBy(userID) {
		t.Error("authenticated creation should set the owner")
	}
}

func TestItinerary_AddActivity(t *testing.T) {
	t.Parallel()

	it, err := NewItinerary("Rome", "", 2, 1, date(2026, 6, 1), date(2026, 6, 3), Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := it.AddActivity(2, Activity{Name: "Colosseum", City: "Rome", ExpectedDurationHours: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := it.AddActivity(2, Activity{Name: "Forum", City: "Rome", ExpectedDurationHours: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Position != 0 || second.Position != 1 {
		t.Errorf("positions: got %d,%d, want 0,1", first.Position, second.Position)
	}

	day, err := it.Day(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := day.ActivityNames(); len(got) != 2 || got[0] != "Colosseum" || got[1] != "Forum" {
		t.Errorf("insertion order lost: %v", got)
	}
}

func TestItinerary_AddActivity_Errors(t *testing.T) {
	t.Parallel()

	newTrip := func(t *testing.T) *Itinerary {
		t.Helper()
		it, err := NewItinerary("Rome", "", 1, 0, date(2026, 6, 1), date(2026, 6, 3), Anonymous())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return it
	}

	t.Run("day number out of range", func(t *testing.T) {
		t.Parallel()
		it := newTrip(t)

		for _, day := range []int{0, -1, 4} {
			_, err := it.AddActivity(day, Activity{Name: "Walk"})
			if !errors.Is(err, ErrValidation) {
				t.Errorf("day %d: expected ErrValidation, got %v", day, err)
			}
		}
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()
		it := newTrip(t)

		_, err := it.AddActivity(1, Activity{Name: "  "})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative duration", func(t *testing.T) {
		t.Parallel()
		it := newTrip(t)

		_, err := it.AddActivity(1, Activity{Name: "Walk", ExpectedDurationHours: -1})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("finalized itinerary, even with invalid day", func(t *testing.T) {
		t.Parallel()
		it := newTrip(t)
		it.Finalized = true

		for _, day := range []int{1, 99} {
			_, err := it.AddActivity(day, Activity{Name: "Walk"})
			if !errors.Is(err, ErrFinalized) {
				t.Errorf("day %d: expected ErrFinalized, got %v", day, err)
			}
		}
	})
}

func TestItinerary_ReplaceInterests(t *testing.T) {
	t.Parallel()

	it, err := NewItinerary("Rome", "", 1, 0, date(2026, 6, 1), date(2026, 6, 2), Anonymous())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := it.ReplaceInterests([]Interest{{ID: uuid.New(), Name: "history"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := it.InterestNames(); len(got) != 1 || got[0] != "history" {
		t.Errorf("interests: got %v", got)
	}

	it.Finalized = true
	if err := it.ReplaceInterests(nil); !errors.Is(err, ErrFinalized) {
		t.Errorf("expected ErrFinalized, got %v", err)
	}
}
