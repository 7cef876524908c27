// Package suggestion implements the AI-assisted planning flows: destination
// ideas from traveler preferences and day-activity ideas that respect the
// day's remaining schedulable time.
package suggestion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/config"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type aiProvider interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type imageSearcher interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

type itineraryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

// DestinationSuggestion is one proposed trip destination.
type DestinationSuggestion struct {
	Country  string
	City     string
	Overview string
	ImageURL string
}

// ActivitySuggestion is one proposed activity for a specific day. The shape
// matches what AddActivity accepts, so a suggestion can be scheduled as-is.
type ActivitySuggestion struct {
	Name                  string
	City                  string
	Description           string
	ExpectedDurationHours float64
	EstimatedCostEUR      float64
	Address               string
	ImageURL              string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the suggestion business logic.
type Service struct {
	log         *slog.Logger
	itineraries itineraryRepo
	ai          aiProvider
	images      imageSearcher
	cfg         config.PlanningConfig
}

// NewService creates a new Suggestion service.
func NewService(
	logger *slog.Logger,
	itineraries itineraryRepo,
	ai aiProvider,
	images imageSearcher,
	cfg config.PlanningConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "suggestion"),
		itineraries: itineraries,
		ai:          ai,
		images:      images,
		cfg:         cfg,
	}
}
