package storage

import "errors"

var (
	// ErrNotFound is returned by Get when the key has no entry.
	ErrNotFound = errors.New("entry not found")
	// ErrUnavailable wraps backend failures: storage that cannot be
	// opened, written, or read at all.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the synchronous, string-keyed map the profile store writes into.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	// Keys lists stored keys that start with prefix.
	Keys(prefix string) ([]string, error)
}
