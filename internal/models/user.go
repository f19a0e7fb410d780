// Package models defines the data types persisted by TodoVault.
package models

// User is an account record. Users are immutable after registration; there
// is no profile-edit operation. The id is a time-ordered string assigned at
// registration. Email uniqueness is enforced at registration time, not by
// the storage layer.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
