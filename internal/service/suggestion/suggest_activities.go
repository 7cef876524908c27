package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// SuggestActivities asks the model for activities for one day of a draft
// itinerary. Each suggestion individually fits the day's remaining hours
// under the scheduling ceiling. An exhausted day still queries the model;
// the prompt names zero available hours and permits an empty array reply.
func (s *Service) SuggestActivities(ctx context.Context, itineraryID uuid.UUID, dayNumber int) ([]ActivitySuggestion, error) {
	if itineraryID == uuid.Nil {
		return nil, domain.NewValidationError("itineraryId", "required")
	}

	it, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}

	if it.Finalized {
		return nil, fmt.Errorf("suggest activities: %w", domain.ErrFinalized)
	}

	day, err := it.Day(dayNumber)
	if err != nil {
		return nil, err
	}

	available := domain.AvailableHours(day, s.cfg.MaxSchedulableHoursPerDay)

	params := activityPromptParams{
		Destination:      it.Destination,
		Interests:        it.InterestNames(),
		NumberOfAdults:   it.NumberOfAdults,
		NumberOfChildren: it.NumberOfChildren,
		FromDate:         it.FromDate,
		ToDate:           it.ToDate,
		DayNumber:        dayNumber,
		TotalDays:        it.NumberOfDays(),
		TodaysActivities: day.ActivityNames(),
		AvailableHours:   available,
		DepartureCity:    it.DepartureCity,
		MaxSuggestions:   s.cfg.MaxSuggestions,
	}
	if last, ok := domain.LastActivity(day); ok {
		params.LastActivityName = last.Name
		params.LastActivityCity = last.City
	}

	raw, err := s.ai.GenerateContent(ctx, buildActivitiesPrompt(params))
	if err != nil {
		return nil, fmt.Errorf("suggest activities: %w", err)
	}

	var dtos []activityDTO
	if err := decodeArray(raw, &dtos); err != nil {
		s.log.WarnContext(ctx, "undecodable activities reply", slog.Int("raw_len", len(raw)))
		return nil, fmt.Errorf("suggest activities: %w", err)
	}

	// Drop anything the model returned that would not fit the day anyway.
	fitting := dtos[:0]
	for _, dto := range dtos {
		if dto.ExpectedDurationHours <= available {
			fitting = append(fitting, dto)
		}
	}
	dtos = fitting

	if len(dtos) > s.cfg.MaxSuggestions {
		dtos = dtos[:s.cfg.MaxSuggestions]
	}

	suggestions := make([]ActivitySuggestion, len(dtos))
	for i, dto := range dtos {
		suggestions[i] = ActivitySuggestion{
			Name:                  dto.Name,
			City:                  dto.City,
			Description:           dto.Description,
			ExpectedDurationHours: dto.ExpectedDurationHours,
			EstimatedCostEUR:      dto.EstimatedCostEUR,
			Address:               dto.Address,
		}
	}

	s.enrichActivityImages(ctx, suggestions)

	s.log.InfoContext(ctx, "activities suggested",
		slog.String("itinerary_id", itineraryID.String()),
		slog.Int("day", dayNumber),
		slog.Int("count", len(suggestions)),
		slog.Float64("available_hours", available),
	)

	return suggestions, nil
}
