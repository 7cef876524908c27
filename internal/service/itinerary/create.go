package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

// Create starts a new trip draft. Anonymous callers get an unclaimed draft;
// authenticated callers own the draft from the start. Supplied interest names
// are resolved against the catalogue, adding unknown names on first use.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Itinerary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	creator := ctxutil.IdentityFromCtx(ctx)

	it, err := domain.NewItinerary(
		input.Destination, input.DepartureCity,
		input.NumberOfAdults, input.NumberOfChildren,
		input.FromDate, input.ToDate,
		creator,
	)
	if err != nil {
		return nil, err
	}

	names := input.Normalized()

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if len(names) > 0 {
			resolved, resolveErr := s.interests.GetOrCreateByNames(txCtx, names)
			if resolveErr != nil {
				return fmt.Errorf("resolve interests: %w", resolveErr)
			}
			if replaceErr := it.ReplaceInterests(resolved); replaceErr != nil {
				return replaceErr
			}
		}
		if createErr := s.itineraries.Create(txCtx, it); createErr != nil {
			return fmt.Errorf("create itinerary: %w", createErr)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "itinerary created",
		slog.String("itinerary_id", it.ID.String()),
		slog.String("destination", it.Destination),
		slog.Int("days", it.NumberOfDays()),
		slog.Int("interests", len(it.Interests)),
		slog.Bool("owned", it.Owned()),
	)

	return it, nil
}
