// Package credentials persists the per-email credential map, kept in a
// separate medium namespace from the user collection. Passwords are never
// stored; each record holds the salt and one-way verifier produced by the
// cryptox scheme.
package credentials

import "context"

// Record is what is stored at rest for one email.
type Record struct {
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// Repository describes operations over the credential map.
// Invariant: a record exists for every registered user's email, and only
// for registered users; registration writes the credential before the user.
type Repository interface {
	// Save stores the record for email, overwriting any prior entry.
	Save(ctx context.Context, email string, rec Record) error

	// Get returns the record for email, or common.ErrNotFound.
	Get(ctx context.Context, email string) (*Record, error)
}
