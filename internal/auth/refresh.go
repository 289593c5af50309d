package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MakeRefreshToken returns a 256-bit random opaque token, hex encoded.
func MakeRefreshToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
