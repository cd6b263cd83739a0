package entities

import "maps"

// Phase is the lifecycle stage of the current query.
type Phase string

// Query phases. Idle only occurs before the first submission.
const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// AggregateState is a read-only view of the current query: the primary
// entities plus whatever enrichment has arrived so far.
type AggregateState struct {
	Query      Query                `json:"query"`
	Phase      Phase                `json:"phase"`
	Entities   []Entity             `json:"entities"`          // nil until the primary search succeeds
	Enrichment map[string]Attribute `json:"enrichment"`        // keyed by Entity.Login, grows monotonically
	Err        string               `json:"error,omitempty"`   // set only in PhaseFailed
	Pending    int                  `json:"pending,omitempty"` // enrichment lookups still in flight
}

// Clone returns a deep copy so callers cannot alias orchestrator state.
func (s AggregateState) Clone() AggregateState {
	out := s
	if s.Entities != nil {
		out.Entities = make([]Entity, len(s.Entities))
		copy(out.Entities, s.Entities)
	}
	out.Enrichment = maps.Clone(s.Enrichment)
	if out.Enrichment == nil {
		out.Enrichment = make(map[string]Attribute)
	}
	return out
}

// Attribute returns the enrichment for handle, if it has arrived.
func (s AggregateState) Attribute(handle string) (Attribute, bool) {
	attr, ok := s.Enrichment[handle]
	return attr, ok
}

// Settled reports whether no more updates are expected for this query.
func (s AggregateState) Settled() bool {
	switch s.Phase {
	case PhaseFailed:
		return true
	case PhaseReady:
		return s.Pending == 0
	default:
		return false
	}
}
