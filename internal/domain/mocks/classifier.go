package mocks

import (
	"context"
	"sync"

	"github.com/ersonp/nearby/internal/domain/entities"
)

// Classifier is a mock implementation of ports.Classifier.
type Classifier struct {
	// Attributes maps a handle to its attribute. Handles without an entry get
	// an empty (unknown) attribute.
	Attributes map[string]entities.Attribute
	// Errors maps a handle to the error returned for it.
	Errors map[string]error
	// Gates blocks Classify for a handle until the channel is closed.
	// A gated call returns ctx.Err() if the context ends first.
	Gates map[string]chan struct{}

	mu      sync.Mutex
	handles []string
}

// Classify returns the configured attribute or error for handle.
func (m *Classifier) Classify(ctx context.Context, handle string) (entities.Attribute, error) {
	m.mu.Lock()
	m.handles = append(m.handles, handle)
	gate := m.Gates[handle]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return entities.Attribute{}, ctx.Err()
		}
	}

	if err := m.Errors[handle]; err != nil {
		return entities.Attribute{}, err
	}
	return m.Attributes[handle], nil
}

// Calls returns the handles classified so far, in call order.
func (m *Classifier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.handles))
	copy(out, m.handles)
	return out
}

// CallCount returns the number of lookups performed.
func (m *Classifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}
