package domain

import "github.com/google/uuid"

// Identity describes who is making a request. Planning endpoints accept
// anonymous callers, so an absent user is a valid state rather than an error.
type Identity struct {
	userID uuid.UUID
	known  bool
}

// Anonymous returns an identity with no associated user.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns an identity for the given user.
func Authenticated(userID uuid.UUID) Identity {
	return Identity{userID: userID, known: true}
}

// IsAnonymous reports whether the identity carries no user.
func (id Identity) IsAnonymous() bool {
	return !id.known
}

// UserID returns the user ID and whether one is present.
func (id Identity) UserID() (uuid.UUID, bool) {
	return id.userID, id.known
}
