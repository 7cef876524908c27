package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Interest is a named tag attached to itineraries. Names are globally unique;
// an interest is created the first time its name is referenced and never
// deleted.
type Interest struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Activity is a single scheduled action within a day plan. Activities are
// append-only: once created they are never reordered or mutated.
type Activity struct {
	ID                    uuid.UUID
	Name                  string
	City                  string
	Description           string
	Address               string
	ExpectedDurationHours float64
	EstimatedCostEUR      float64
	Position              int
	CreatedAt             time.Time
}

// DayPlan is one calendar day's ordered activity list. Day plans are created
// together with their itinerary, one per day of the date range, and are never
// created or destroyed independently.
type DayPlan struct {
	ID         uuid.UUID
	DayNumber  int
	Activities []Activity
}

// HoursScheduled is the sum of all activity durations for the day.
func (d *DayPlan) HoursScheduled() float64 {
	var total float64
	for _, a := range d.Activities {
		total += a.ExpectedDurationHours
	}
	return total
}

// ActivityNames returns the names of scheduled activities in insertion order.
func (d *DayPlan) ActivityNames() []string {
	names := make([]string, len(d.Activities))
	for i, a := range d.Activities {
		names[i] = a.Name
	}
	return names
}

// Itinerary is the root trip-planning aggregate: one destination, one date
// range, one day plan per calendar day. Children are held by value; there is
// no back-pointer object graph.
type Itinerary struct {
	ID               uuid.UUID
	Destination      string
	DepartureCity    string
	NumberOfAdults   int
	NumberOfChildren int
	FromDate         time.Time
	ToDate           time.Time
	OwnerID          *uuid.UUID
	ShareableLink    *string
	Finalized        bool
	DayPlans         []DayPlan
	Interests        []Interest
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewItinerary builds a draft itinerary with one empty day plan per calendar
// day of [from, to]. The owner is set when the creating caller is
// authenticated.
func NewItinerary(destination, departureCity string, adults, children int, from, to time.Time, creator Identity) (*Itinerary, error) {
	var errs []FieldError

	if strings.TrimSpace(destination) == "" {
		errs = append(errs, FieldError{Field: "destination", Message: "required"})
	}
	if adults < 0 {
		errs = append(errs, FieldError{Field: "numberOfAdults", Message: "must be >= 0"})
	}
	if children < 0 {
		errs = append(errs, FieldError{Field: "numberOfChildren", Message: "must be >= 0"})
	}
	if from.IsZero() || to.IsZero() {
		errs = append(errs, FieldError{Field: "fromDate", Message: "fromDate and toDate are required"})
	} else if daysBetween(from, to) < 0 {
		errs = append(errs, FieldError{Field: "toDate", Message: "must not be before fromDate"})
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	it := &Itinerary{
		ID:               uuid.New(),
		Destination:      strings.TrimSpace(destination),
		DepartureCity:    strings.TrimSpace(departureCity),
		NumberOfAdults:   adults,
		NumberOfChildren: children,
		FromDate:         from,
		ToDate:           to,
	}

	if userID, ok := creator.UserID(); ok {
		it.OwnerID = &userID
	}

	days := daysBetween(from, to) + 1
	it.DayPlans = make([]DayPlan, days)
	for i := range it.DayPlans {
		it.DayPlans[i] = DayPlan{ID: uuid.New(), DayNumber: i + 1}
	}

	return it, nil
}

// NumberOfDays is the count of day plans, equal to the calendar length of the
// date range.
func (it *Itinerary) NumberOfDays() int {
	return daysBetween(it.FromDate, it.ToDate) + 1
}

// Day returns the day plan with the given 1-based number.
// Returns ErrValidation when dayNumber is outside [1, N] and ErrNotFound when
// the plan is missing despite a valid number (defensive; should not happen).
func (it *Itinerary) Day(dayNumber int) (*DayPlan, error) {
	if dayNumber <= 0 || dayNumber > it.NumberOfDays() {
		return nil, NewValidationError("dayNumber",
			fmt.Sprintf("invalid day number %d for an itinerary with %d days", dayNumber, it.NumberOfDays()))
	}
	for i := range it.DayPlans {
		if it.DayPlans[i].DayNumber == dayNumber {
			return &it.DayPlans[i], nil
		}
	}
	return nil, fmt.Errorf("day plan %d: %w", dayNumber, ErrNotFound)
}

// AddActivity appends an activity to the given day. The activity's position
// is assigned from the day's current length; insertion order is never
// changed afterwards.
func (it *Itinerary) AddActivity(dayNumber int, a Activity) (*Activity, error) {
	if it.Finalized {
		return nil, fmt.Errorf("add activity: %w", ErrFinalized)
	}
	if strings.TrimSpace(a.Name) == "" {
		return nil, NewValidationError("name", "required")
	}
	if a.ExpectedDurationHours < 0 {
		return nil, NewValidationError("expectedDurationHours", "must be >= 0")
	}
	if a.EstimatedCostEUR < 0 {
		return nil, NewValidationError("estimatedCostEUR", "must be >= 0")
	}

	day, err := it.Day(dayNumber)
	if err != nil {
		return nil, err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Name = strings.TrimSpace(a.Name)
	a.Position = len(day.Activities)
	day.Activities = append(day.Activities, a)

	return &day.Activities[len(day.Activities)-1], nil
}

// ReplaceInterests swaps the full interest set.
func (it *Itinerary) ReplaceInterests(interests []Interest) error {
	if it.Finalized {
		return fmt.Errorf("update interests: %w", ErrFinalized)
	}
	it.Interests = interests
	return nil
}

// InterestNames returns the names of the attached interests.
func (it *Itinerary) InterestNames() []string {
	names := make([]string, len(it.Interests))
	for i, in := range it.Interests {
		names[i] = in.Name
	}
	return names
}

// Owned reports whether the itinerary has an owner.
func (it *Itinerary) Owned() bool { return it.OwnerID != nil }

// OwnedBy reports whether the itinerary is owned by the given user.
func (it *Itinerary) OwnedBy(userID uuid.UUID) bool {
	return it.OwnerID != nil && *it.OwnerID == userID
}

// daysBetween counts whole calendar days from a to b, ignoring the time of
// day and time zone of either value.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
