package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// ListInterests returns the full interest catalogue.
func (s *Service) ListInterests(ctx context.Context) ([]domain.Interest, error) {
	interests, err := s.interests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	return interests, nil
}

// UpdateInterests replaces the itinerary's interest set with the given names.
// Unknown names are added to the catalogue on first use; replacing with an
// empty list clears the set.
func (s *Service) UpdateInterests(ctx context.Context, itineraryID uuid.UUID, input UpdateInterestsInput) (*domain.Itinerary, error) {
	if itineraryID == uuid.Nil {
		return nil, domain.NewValidationError("itineraryId", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	names := input.Normalized()

	var updated *domain.Itinerary
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.itineraries.GetByIDForUpdate(txCtx, itineraryID)
		if err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}

		resolved, err := s.interests.GetOrCreateByNames(txCtx, names)
		if err != nil {
			return fmt.Errorf("resolve interests: %w", err)
		}

		if err := it.ReplaceInterests(resolved); err != nil {
			return err
		}

		ids := make([]uuid.UUID, len(resolved))
		for i, in := range resolved {
			ids[i] = in.ID
		}
		if err := s.itineraries.ReplaceInterests(txCtx, it.ID, ids); err != nil {
			return fmt.Errorf("replace interest links: %w", err)
		}

		updated = it
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "interests updated",
		slog.String("itinerary_id", itineraryID.String()),
		slog.Int("count", len(names)),
	)

	return updated, nil
}
