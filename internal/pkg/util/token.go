package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateInviteToken returns a 32-character hex token from 16 random bytes.
// Collisions are practically impossible; the unique index on invite URLs is
// the final guard.
func GenerateInviteToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
