package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// SuggestDestinations asks the model for three destination ideas matching the
// given preferences and enriches each with a representative image.
func (s *Service) SuggestDestinations(ctx context.Context, preferences []string) ([]DestinationSuggestion, error) {
	cleaned := make([]string, 0, len(preferences))
	for _, p := range preferences {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, domain.NewValidationError("preferences", "at least one preference is required")
	}

	raw, err := s.ai.GenerateContent(ctx, buildDestinationsPrompt(cleaned))
	if err != nil {
		return nil, fmt.Errorf("suggest destinations: %w", err)
	}

	var dtos []destinationDTO
	if err := decodeArray(raw, &dtos); err != nil {
		s.log.WarnContext(ctx, "undecodable destinations reply", slog.Int("raw_len", len(raw)))
		return nil, fmt.Errorf("suggest destinations: %w", err)
	}

	if len(dtos) > s.cfg.MaxSuggestions {
		dtos = dtos[:s.cfg.MaxSuggestions]
	}

	suggestions := make([]DestinationSuggestion, len(dtos))
	for i, dto := range dtos {
		suggestions[i] = DestinationSuggestion{
			Country:  dto.Country,
			City:     dto.City,
			Overview: dto.Overview,
			ImageURL: dto.ImageURL,
		}
	}

	s.enrichDestinationImages(ctx, suggestions)

	s.log.InfoContext(ctx, "destinations suggested",
		slog.Int("count", len(suggestions)),
		slog.Int("preferences", len(cleaned)),
	)

	return suggestions, nil
}
