package itinerary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

// Finalize locks an itinerary for sharing. The caller must be authenticated:
// an unowned draft is claimed by the caller at this moment, a draft owned by
// someone else is rejected. Finalizing is idempotent; repeat calls by the
// owner return the same shareable token and write nothing new.
//
// The whole step runs under the itinerary's FOR UPDATE row lock, so two
// concurrent finalize calls cannot both claim the draft or mint two tokens.
func (s *Service) Finalize(ctx context.Context, itineraryID uuid.UUID) (*domain.Itinerary, error) {
	if itineraryID == uuid.Nil {
		return nil, domain.NewValidationError("itineraryId", "required")
	}

	callerID, ok := ctxutil.IdentityFromCtx(ctx).UserID()
	if !ok {
		return nil, fmt.Errorf("finalize requires authentication: %w", domain.ErrUnauthorized)
	}

	var result *domain.Itinerary
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		it, err := s.itineraries.GetByIDForUpdate(txCtx, itineraryID)
		if err != nil {
			return fmt.Errorf("get itinerary: %w", err)
		}

		if it.Owned() && !it.OwnedBy(callerID) {
			return fmt.Errorf("itinerary belongs to another user: %w", domain.ErrForbidden)
		}

		if !it.Owned() {
			// The JWT may outlive its user row.
			user, userErr := s.users.GetByID(txCtx, callerID)
			if userErr != nil {
				return fmt.Errorf("resolve claiming user: %w", userErr)
			}
			if err := s.itineraries.SetOwner(txCtx, it.ID, user.ID); err != nil {
				return fmt.Errorf("claim itinerary: %w", err)
			}
			ownerID := user.ID
			it.OwnerID = &ownerID
		}

		if it.Finalized {
			result = it
			return nil
		}

		stored, err := s.itineraries.Finalize(txCtx, it.ID, uuid.NewString())
		if err != nil {
			return fmt.Errorf("finalize itinerary: %w", err)
		}

		it.Finalized = true
		it.ShareableLink = &stored
		result = it
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "itinerary finalized",
		slog.String("itinerary_id", itineraryID.String()),
		slog.String("owner_id", callerID.String()),
	)

	return result, nil
}
