package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session token resolves to nothing,
// either because it was never issued or because it has been cleared.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore maps opaque session tokens to user identities on the server
// side. The token itself carries no claims; whoever presents it is whoever
// the store says it is. Expiry is left to the backing transport (e.g. redis
// TTL plus the cookie max-age).
type SessionStore interface {
	// Issue generates a fresh opaque token, associates it with the user id
	// and returns it.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Set associates a session token with a user id.
	Set(ctx context.Context, token string, userID uuid.UUID) error

	// Get resolves a session token to the user id it was issued for,
	// returning ErrSessionNotFound on a miss.
	Get(ctx context.Context, token string) (uuid.UUID, error)

	// Clear removes a session token. Clearing an unknown token is not an error.
	Clear(ctx context.Context, token string) error
}
