package itinerary

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// CreateInput holds the parameters for starting a new trip draft.
type CreateInput struct {
	Destination      string
	DepartureCity    string
	NumberOfAdults   int
	NumberOfChildren int
	FromDate         time.Time
	ToDate           time.Time
	Interests        []string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Destination) == "" {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "required"})
	}
	if i.NumberOfAdults < 0 {
		errs = append(errs, domain.FieldError{Field: "numberOfAdults", Message: "must be >= 0"})
	}
	if i.NumberOfChildren < 0 {
		errs = append(errs, domain.FieldError{Field: "numberOfChildren", Message: "must be >= 0"})
	}
	if i.FromDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "fromDate", Message: "required"})
	}
	if i.ToDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "toDate", Message: "required"})
	}
	if !i.FromDate.IsZero() && !i.ToDate.IsZero() && i.ToDate.Before(i.FromDate) {
		errs = append(errs, domain.FieldError{Field: "toDate", Message: "must not be before fromDate"})
	}
	if err := validateNames(i.Interests); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Normalized returns trimmed, deduplicated interest names with original
// order kept.
func (i *CreateInput) Normalized() []string {
	return normalizeNames(i.Interests)
}

// AddActivityInput holds the parameters for appending one activity to a day.
type AddActivityInput struct {
	Name                  string
	City                  string
	Description           string
	Address               string
	ExpectedDurationHours float64
	EstimatedCostEUR      float64
}

// Validate checks all fields and collects all errors.
func (i *AddActivityInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.ExpectedDurationHours < 0 {
		errs = append(errs, domain.FieldError{Field: "expectedDurationHours", Message: "must be >= 0"})
	}
	if i.EstimatedCostEUR < 0 {
		errs = append(errs, domain.FieldError{Field: "estimatedCostEUR", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInterestsInput holds the full replacement interest name set.
type UpdateInterestsInput struct {
	Interests []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInterestsInput) Validate() error {
	if err := validateNames(i.Interests); err != nil {
		return domain.NewValidationErrors([]domain.FieldError{*err})
	}
	return nil
}

// Normalized returns trimmed, deduplicated names with original order kept.
func (i *UpdateInterestsInput) Normalized() []string {
	return normalizeNames(i.Interests)
}

func validateNames(names []string) *domain.FieldError {
	for idx, name := range names {
		if strings.TrimSpace(name) == "" {
			return &domain.FieldError{Field: "interests", Message: "blank name at index " + strconv.Itoa(idx)}
		}
	}
	return nil
}

func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
