package random_utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateToken returns a random hex string of the given byte length.
// 16 bytes produce a 32-character token.
func GenerateToken(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
