package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested entity does not exist.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails local constraints (a draft at
// submit time, a malformed request body). Nothing is dispatched or persisted.
var ErrValidation = errors.New("validation error")

// ErrFetchFailed marks a collection load that failed during Init. Stores
// degrade to an empty collection and still announce UpdateInit.
var ErrFetchFailed = errors.New("fetch failed")

// ErrMutationFailed is the parent of every remote write rejection.
// Local state is untouched when it is returned.
var ErrMutationFailed = errors.New("mutation failed")

var (
	ErrFailedToAdd    = fmt.Errorf("failed to add: %w", ErrMutationFailed)
	ErrFailedToUpdate = fmt.Errorf("failed to update: %w", ErrMutationFailed)
	ErrFailedToDelete = fmt.Errorf("failed to delete: %w", ErrMutationFailed)
)

// ErrConcurrentEdit is returned synchronously when a mutation targets an
// entity that already has one in flight. No remote call is issued.
var ErrConcurrentEdit = errors.New("concurrent edit rejected")
