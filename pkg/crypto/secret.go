package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

var randomRead = rand.Read

// SHA256Hex returns the lowercase hex SHA-256 digest of the input.
// Consumer secrets are stored only as this digest; validation recomputes
// it from the presented secret and compares against the stored value.
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// DigestEqual compares two hex digests in constant time.
func DigestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// GenerateRandomHex generates n hex characters from crypto/rand.
// n must be even.
func GenerateRandomHex(n int) (string, error) {
	bytes := make([]byte, n/2)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
