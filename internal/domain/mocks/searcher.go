// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/nearby/internal/domain/entities"
)

// ProfileSearcher is a mock implementation of ports.ProfileSearcher.
type ProfileSearcher struct {
	// Results maps a location to the entities returned for it.
	// Locations without an entry return Default.
	Results map[string][]entities.Entity
	Default []entities.Entity
	// Errors maps a location to the error returned for it; Err applies to all.
	Errors map[string]error
	Err    error

	// Gates holds a channel per location; SearchByLocation blocks until it is
	// closed or the context ends. Used to control response ordering in tests.
	Gates map[string]chan struct{}

	mu        sync.Mutex
	locations []string
}

// SearchByLocation returns the configured entities or error.
func (m *ProfileSearcher) SearchByLocation(ctx context.Context, location string) ([]entities.Entity, error) {
	m.mu.Lock()
	m.locations = append(m.locations, location)
	gate := m.Gates[location]
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	if err := m.Errors[location]; err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if result, ok := m.Results[location]; ok {
		return result, nil
	}
	return m.Default, nil
}

// Calls returns the locations searched so far, in call order.
func (m *ProfileSearcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.locations))
	copy(out, m.locations)
	return out
}

// CallCount returns the number of searches performed.
func (m *ProfileSearcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locations)
}
