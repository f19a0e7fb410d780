// Package cryptox implements the credential-protection scheme: an argon2id
// key derived from (password, salt) and a SHA-256 verifier stored in place of
// the password. The password itself is never persisted.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// DeriveKey stretches a password with the given salt using argon2id.
// The returned key is 32 bytes.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the value stored at rest for a derived key.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifyPassword recomputes the verifier for a password candidate and
// compares it against the stored one in constant time.
func VerifyPassword(password []byte, salt []byte, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
