package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash returns a bcrypt digest of the plaintext at the default cost.
// The salt is generated per call, so hashing the same plaintext twice
// yields different digests.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. The comparison
// is constant time; a malformed digest verifies false.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
