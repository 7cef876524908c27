// Package auth implements account registration and password login. Trips can
// be planned anonymously; an account is only required to finalize and share.
package auth

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

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the auth business logic.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new Auth service.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken resolves an access token to the user it was issued for.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	return s.jwt.ValidateAccessToken(token)
}
