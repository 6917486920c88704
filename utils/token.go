package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionToken returns a URL-safe opaque token with 256 bits of
// entropy. It is stored server-side and carries no claims.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
