package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account that can own itineraries.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
