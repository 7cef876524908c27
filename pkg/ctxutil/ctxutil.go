package ctxutil

import (
	"context"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the caller's identity in the context.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the caller's identity from the context.
// A missing value means the caller is anonymous.
func IdentityFromCtx(ctx context.Context) domain.Identity {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok {
		return domain.Anonymous()
	}
	return id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
