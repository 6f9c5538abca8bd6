// Package session provides server-side stores mapping opaque session tokens
// to user identities, plus token generation.
package session

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

const tokenBytes = 32

// NewToken returns a fresh opaque session token: 32 random bytes, hex encoded.
// The token is the only thing the client ever holds; all session state stays
// on the server.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(buf), nil
}
