package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tripplanner-backend/internal/config"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockUserRepo struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, u *domain.User) error
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

type mockJWTManager struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)
}

func (m *mockJWTManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID)
	}
	return "token-" + userID.String(), nil
}

func (m *mockJWTManager) ValidateAccessToken(token string) (uuid.UUID, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return uuid.Nil, domain.ErrUnauthorized
}

func newTestService(users *mockUserRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, users, &mockJWTManager{}, config.AuthConfig{PasswordHashCost: bcrypt.MinCost})
}

// ===========================================================================
// Register
// ===========================================================================

func TestService_Register(t *testing.T) {
	t.Parallel()

	var created *domain.User
	users := &mockUserRepo{
		CreateFunc: func(ctx context.Context, u *domain.User) error {
			created = u
			return nil
		},
	}
	svc := newTestService(users)

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Ada@Example.com",
		Username: "ada",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "ada@example.com", created.Email, "email is normalized to lower case")
	assert.NotEqual(t, "correct horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse")))
	assert.NotEmpty(t, result.AccessToken)
}

func TestService_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email}, nil
		},
	}
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ada@example.com",
		Username: "ada",
		Password: "correct horse",
	})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestService_Register_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "bad email", input: RegisterInput{Email: "not-an-email", Username: "a", Password: "longenough"}},
		{name: "short password", input: RegisterInput{Email: "a@b.io", Username: "a", Password: "short"}},
		{name: "blank username", input: RegisterInput{Email: "a@b.io", Username: "  ", Password: "longenough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(&mockUserRepo{})
			_, err := svc.Register(context.Background(), tt.input)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ===========================================================================
// Login
// ===========================================================================

func TestService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	users := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: userID, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestService(users)

	result, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, userID, result.User.ID)
	assert.NotEmpty(t, result.AccessToken)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestService(users)

	_, err = svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService(&mockUserRepo{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, domain.ErrUnauthorized, "unknown email must look like a wrong password")
}
