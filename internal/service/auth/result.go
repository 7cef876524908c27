package auth

import "github.com/heartmarshall/tripplanner-backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}
