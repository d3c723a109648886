package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

const authTokenBytes = 32

// NewSessionID mints the opaque value stored in the cart session cookie.
func NewSessionID() string {
	return uuid.NewString()
}

// NewAuthToken mints an opaque url-safe token for the auth cookie.
func NewAuthToken() (string, error) {
	buf := make([]byte, authTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate auth token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
