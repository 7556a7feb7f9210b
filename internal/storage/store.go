package storage

import "errors"

// ErrNotFound reports that a key has no stored value. Callers use it to tell
// "absent" apart from a real read failure.
var ErrNotFound = errors.New("storage: key not found")

// Store persists JSON-serializable values under string keys.
type Store interface {
	// Get decodes the value stored under key into out. Returns ErrNotFound
	// when the key is absent.
	Get(key string, out any) error
	// Set stores value under key, replacing any previous value.
	Set(key string, value any) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
	// Clear deletes every key.
	Clear() error
}
