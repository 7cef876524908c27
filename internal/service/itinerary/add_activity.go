package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// AddActivity appends one activity to the given day of a draft itinerary and
// returns the updated aggregate. The row lock taken by GetByIDForUpdate makes
// concurrent appends to the same itinerary serialize, so positions stay
// contiguous.
func (s *Service) AddActivity(ctx context.Context, itineraryID uuid.UUID, dayNumber int, input AddActivityInput) (*domain.Itinerary, error) {
	if itineraryID == uuid.Nil {
		return nil, domain.NewValidationError("itineraryId", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Itinerary
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.itineraries.GetByIDForUpdate(txCtx, itineraryID)
		if err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}

		activity, err := it.AddActivity(dayNumber, domain.Activity{
			Name:                  input.Name,
			City:                  input.City,
			Description:           input.Description,
			Address:               input.Address,
			ExpectedDurationHours: input.ExpectedDurationHours,
			EstimatedCostEUR:      input.EstimatedCostEUR,
		})
		if err != nil {
			return err
		}

		day, err := it.Day(dayNumber)
		if err != nil {
			return err
		}

		if err := s.itineraries.AddActivity(txCtx, day.ID, activity); err != nil {
			return fmt.Errorf("persist activity: %w", err)
		}

		updated = it
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "activity added",
		slog.String("itinerary_id", itineraryID.String()),
		slog.Int("day", dayNumber),
		slog.String("name", input.Name),
	)

	return updated, nil
}
