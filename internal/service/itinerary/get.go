package itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// GetByID returns the full aggregate by primary key.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}

	return it, nil
}

// GetShared resolves a shareable token to its finalized itinerary. A token
// pointing at a draft is treated as forbidden rather than missing, so a
// prematurely leaked link does not expose work in progress.
func (s *Service) GetShared(ctx context.Context, link string) (*domain.Itinerary, error) {
	if strings.TrimSpace(link) == "" {
		return nil, domain.NewValidationError("shareableLink", "required")
	}

	it, err := s.itineraries.GetByShareableLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("get shared itinerary: %w", err)
	}

	if !it.Finalized {
		return nil, fmt.Errorf("shared itinerary is not finalized: %w", domain.ErrForbidden)
	}

	return it, nil
}
