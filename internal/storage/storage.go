// Package storage provides the persistence medium backing all TodoVault
// state: a synchronous, process-local key-value store of string keys and
// string (JSON) values. Consumers receive an injected Storage and never ask
// whether a real medium is available; when none is, the Disabled
// implementation turns every operation into a no-op.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Storage is the persistence medium. All calls are immediate in-process
// operations; none block or retry. Writes replace the whole value for a key,
// so concurrent writers to the same backing medium are last-writer-wins at
// key granularity.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the value under key. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string) error
}

// Disabled is the medium used when no persistent context exists (for
// example, running in an environment with no writable state). Every read
// reports an absent key and every write is silently dropped, which makes all
// higher-level operations behave as over an empty store.
type Disabled struct{}

func (Disabled) Get(ctx context.Context, key string) (string, error) { return "", ErrNotFound }

func (Disabled) Set(ctx context.Context, key string, value string) error { return nil }

func (Disabled) Remove(ctx context.Context, key string) error { return nil }
