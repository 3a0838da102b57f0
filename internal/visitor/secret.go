package visitor

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCSRFSecret creates a random 32-byte secret for CSRF token signing.
func GenerateCSRFSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
