package domain

import (
	"context"
)

// StoreError represents an error originating from the key-value store.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrKeyNotFound is returned when a key holds no value.
const ErrKeyNotFound = StoreError("store: key not found")

// Logical keys of the persisted progress state. Each value is a whole
// document that is read and written in one piece.
const (
	KeyQuizHistory  = "quizHistory"
	KeyRoadmap      = "roadmap"
	KeyLastActivity = "lastActivity"
)

// KeyValueStore defines the interface (port) for the single mutable persistence
// slot behind the quiz, roadmap and activity services.
// Implementations live in the adapter package (memory, Redis, SQL).
type KeyValueStore interface {
	// Get retrieves the value stored at key.
	// It returns ErrKeyNotFound if the key is not set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. It does not return an error if the key is not set.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the backing service.
	Ping(ctx context.Context) error
}
