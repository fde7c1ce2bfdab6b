package identity

import (
	"context"
	"time"
)

type contextKey string

const contextKeyIdentity contextKey = "identity"

// Identity is the caller decoded from a verified access token.
type Identity struct {
	ID       int64
	Username string
	TokenID  string
	// ExpiresAt is when the access token stops being accepted.
	ExpiresAt time.Time
}

func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKeyIdentity, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKeyIdentity).(Identity)

	return id, ok && id.ID > 0
}

// OwnerID returns the caller id as an owner scope, nil when the caller is anonymous.
func OwnerID(ctx context.Context) *int64 {
	id, ok := FromContext(ctx)
	if !ok {
		return nil
	}

	return &id.ID
}

// Username returns the caller name, or fallback for anonymous requests.
func Username(ctx context.Context, fallback string) string {
	if id, ok := FromContext(ctx); ok && id.Username != "" {
		return id.Username
	}

	return fallback
}
