// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/nearby/internal/domain/entities"
)

// ErrInvalidInput is returned when a location is empty or whitespace-only.
// Callers treat it as a no-op rather than a failure.
var ErrInvalidInput = errors.New("location is empty")

// ProfileSearcher finds user profiles by location.
type ProfileSearcher interface {
	// SearchByLocation returns the first page of profiles whose location matches.
	SearchByLocation(ctx context.Context, location string) ([]entities.Entity, error)
}

// Classifier guesses an enrichment attribute for a single handle.
type Classifier interface {
	// Classify returns the attribute for handle. An unclassifiable handle is a
	// successful response with an empty label, not an error.
	Classify(ctx context.Context, handle string) (entities.Attribute, error)
}

// FetchError describes a failed upstream request. Status is zero when no
// HTTP response was received.
type FetchError struct {
	Status  int
	Message string
	Err     error
}

// Error implements error.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError builds the FetchError for a non-success HTTP status.
func StatusError(status int) *FetchError {
	return &FetchError{
		Status:  status,
		Message: fmt.Sprintf("HTTP error! status: %d", status),
	}
}
