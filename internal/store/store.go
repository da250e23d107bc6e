// Package store provides the key-value persistence used for save games
// and the leaderboard.
package store

import "errors"

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KV is a narrow key-value contract. The managers that persist save
// snapshots and leaderboard entries depend on this interface rather
// than a concrete backend, so tests run against the in-memory
// implementation.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
