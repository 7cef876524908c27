// Package itinerary implements the trip lifecycle business logic: creating
// drafts, attaching interests, appending activities, and the claim-and-share
// finalize step.
package itinerary

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

type itineraryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
	GetByShareableLink(ctx context.Context, link string) (*domain.Itinerary, error)
	Create(ctx context.Context, it *domain.Itinerary) error
	ReplaceInterests(ctx context.Context, itineraryID uuid.UUID, interestIDs []uuid.UUID) error
	AddActivity(ctx context.Context, dayPlanID uuid.UUID, a *domain.Activity) error
	SetOwner(ctx context.Context, itineraryID, ownerID uuid.UUID) error
	Finalize(ctx context.Context, itineraryID uuid.UUID, shareableLink string) (string, error)
}

type interestRepo interface {
	List(ctx context.Context) ([]domain.Interest, error)
	GetOrCreateByNames(ctx context.Context, names []string) ([]domain.Interest, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the itinerary business logic.
type Service struct {
	log         *slog.Logger
	itineraries itineraryRepo
	interests   interestRepo
	users       userRepo
	tx          txManager
	cfg         config.PlanningConfig
}

// NewService creates a new Itinerary service.
func NewService(
	logger *slog.Logger,
	itineraries itineraryRepo,
	interests interestRepo,
	users userRepo,
	tx txManager,
	cfg config.PlanningConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "itinerary"),
		itineraries: itineraries,
		interests:   interests,
		users:       users,
		tx:          tx,
		cfg:         cfg,
	}
}
