// Package handlers exposes use cases to the command line.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/domain/ports"
	"github.com/ersonp/nearby/internal/domain/services"
)

// SearchHandler runs one location search to completion for one-shot callers.
type SearchHandler struct {
	queryService *services.QueryService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(queryService *services.QueryService) *SearchHandler {
	return &SearchHandler{
		queryService: queryService,
	}
}

// SearchResult contains the state of a search once it settled or timed out.
type SearchResult struct {
	State entities.AggregateState
	// Skipped is set when the location was blank and nothing was searched.
	Skipped bool
	// Partial is set when the wait ended before every enrichment lookup finished.
	Partial bool
}

// Handle submits location and waits up to timeout (zero waits indefinitely)
// for the primary search and its enrichment. A failed primary search is
// returned as an error; missing enrichment is not.
func (h *SearchHandler) Handle(ctx context.Context, location string, timeout time.Duration) (*SearchResult, error) {
	query, err := h.queryService.Submit(ctx, location)
	if errors.Is(err, ports.ErrInvalidInput) {
		return &SearchResult{State: h.queryService.Snapshot(), Skipped: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("submitting search: %w", err)
	}

	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	waitErr := h.queryService.Wait(waitCtx, query.ID)
	state := h.queryService.Snapshot()

	switch {
	case waitErr == nil:
	case errors.Is(waitErr, context.DeadlineExceeded) && state.Phase == entities.PhaseReady:
		return &SearchResult{State: state, Partial: true}, nil
	default:
		return nil, fmt.Errorf("waiting for %q: %w", query.Location, waitErr)
	}

	if state.Phase == entities.PhaseFailed {
		return nil, fmt.Errorf("searching %q: %s", query.Location, state.Err)
	}

	return &SearchResult{State: state}, nil
}
