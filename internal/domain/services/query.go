package services

import (
	"context"
	"errors"
	"sync"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/domain/ports"
)

// ErrSuperseded is returned by Wait when a newer query replaced the awaited one.
var ErrSuperseded = errors.New("query superseded by a newer submission")

// QueryService owns the aggregate state for the current location search:
// it runs the primary search, fans out enrichment and merges results that
// still belong to the current query.
type QueryService struct {
	searcher ports.ProfileSearcher
	enricher *EnrichmentService
	logger   ports.Logger

	mu      sync.Mutex
	state   entities.AggregateState
	cancel  context.CancelFunc
	settled chan struct{}

	changes chan struct{}
}

// NewQueryService creates a new query service in the idle phase.
func NewQueryService(searcher ports.ProfileSearcher, enricher *EnrichmentService, logger ports.Logger) *QueryService {
	if logger == nil {
		logger = ports.NopLogger{}
	}
	settled := make(chan struct{})
	close(settled)

	return &QueryService{
		searcher: searcher,
		enricher: enricher,
		logger:   logger,
		state: entities.AggregateState{
			Phase:      entities.PhaseIdle,
			Enrichment: make(map[string]entities.Attribute),
		},
		settled: settled,
		changes: make(chan struct{}, 1),
	}
}

// Submit starts a search for location and returns immediately. A blank
// location returns ports.ErrInvalidInput and leaves the state untouched.
// Any in-flight query is cancelled and its late results are discarded.
// ctx bounds the network calls of the new query.
func (s *QueryService) Submit(ctx context.Context, location string) (entities.Query, error) {
	if entities.NormalizeLocation(location) == "" {
		return entities.Query{}, ports.ErrInvalidInput
	}

	query := entities.NewQuery(location)
	queryCtx, cancel := context.WithCancel(ctx)
	settled := make(chan struct{})

	// State is cleared before the search goroutine exists.
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.settled = settled
	s.state = entities.AggregateState{
		Query:      query,
		Phase:      entities.PhaseLoading,
		Enrichment: make(map[string]entities.Attribute),
	}
	s.mu.Unlock()
	s.notify()

	go s.run(queryCtx, query, settled)

	return query, nil
}

// Snapshot returns a copy of the current aggregate state.
func (s *QueryService) Snapshot() entities.AggregateState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Changes signals after every state mutation. Signals coalesce: a receiver
// that falls behind sees one pending signal, then reads a fresh Snapshot.
func (s *QueryService) Changes() <-chan struct{} {
	return s.changes
}

// Wait blocks until the query identified by queryID has settled (failed, or
// ready with every enrichment lookup finished) or ctx ends.
func (s *QueryService) Wait(ctx context.Context, queryID string) error {
	s.mu.Lock()
	if s.state.Query.ID != queryID {
		s.mu.Unlock()
		return ErrSuperseded
	}
	settled := s.settled
	s.mu.Unlock()

	select {
	case <-settled:
	case <-ctx.Done():
		return ctx.Err()
	}

	if !s.isCurrent(queryID) {
		return ErrSuperseded
	}
	return nil
}

// Close cancels the in-flight query, if any.
func (s *QueryService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *QueryService) run(ctx context.Context, query entities.Query, settled chan struct{}) {
	defer close(settled)

	list, err := s.searcher.SearchByLocation(ctx, query.Location)

	s.mu.Lock()
	if s.state.Query.ID != query.ID {
		s.mu.Unlock()
		s.logger.Printf("discarding stale search result for %q (query %s)", query.Location, query.ID)
		return
	}
	if err != nil {
		s.state.Phase = entities.PhaseFailed
		s.state.Err = err.Error()
		s.state.Entities = nil
		s.mu.Unlock()
		s.notify()
		return
	}
	received := make([]entities.Entity, len(list))
	copy(received, list)
	s.state.Entities = received
	s.state.Phase = entities.PhaseReady
	s.state.Pending = len(received)
	s.mu.Unlock()
	s.notify()

	batch := s.enricher.Enrich(ctx, received, func(handle string, attr entities.Attribute) {
		s.mergeAttribute(query.ID, handle, attr)
	})
	for range batch.Completed() {
		s.taskFinished(query.ID)
	}
}

// mergeAttribute upserts a single key, only while queryID is still current.
func (s *QueryService) mergeAttribute(queryID, handle string, attr entities.Attribute) {
	s.mu.Lock()
	if s.state.Query.ID != queryID {
		s.mu.Unlock()
		s.logger.Printf("discarding stale enrichment for %q (query %s)", handle, queryID)
		return
	}
	s.state.Enrichment[handle] = attr
	s.mu.Unlock()
	s.notify()
}

func (s *QueryService) taskFinished(queryID string) {
	s.mu.Lock()
	if s.state.Query.ID != queryID {
		s.mu.Unlock()
		return
	}
	if s.state.Pending > 0 {
		s.state.Pending--
	}
	s.mu.Unlock()
	s.notify()
}

func (s *QueryService) isCurrent(queryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Query.ID == queryID
}

func (s *QueryService) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
