package common

import (
	"crypto/rand"
	"log"

	"github.com/google/uuid"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// Failures of the system entropy source are fatal.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("error generating random bytes: %v", err)
	}
	return b
}

// WipeByteArray zeroes the buffer in place. Safe to call on nil.
// Used to scrub passwords after they have been consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NewID returns a new time-ordered string identifier (UUIDv7). Records keep
// their creation order when sorted lexicographically by id.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
