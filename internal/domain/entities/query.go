package entities

import (
	"time"

	"github.com/google/uuid"
)

// Query is one user-initiated location search. Its ID identifies the query
// for the lifetime of its responses so that late arrivals can be discarded.
type Query struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewQuery creates a query with a fresh identity. The location is stored trimmed.
func NewQuery(location string) Query {
	return Query{
		ID:          uuid.New().String(),
		Location:    NormalizeLocation(location),
		SubmittedAt: time.Now(),
	}
}

// IsZero reports whether no query has been submitted.
func (q Query) IsZero() bool {
	return q.ID == ""
}
