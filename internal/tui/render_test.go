package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/nearby/internal/domain/entities"
)

func TestAttributeLabel(t *testing.T) {
	tests := []struct {
		name     string
		state    entities.AggregateState
		expected string
	}{
		{
			name: "arrived",
			state: entities.AggregateState{
				Enrichment: map[string]entities.Attribute{"alice": {Label: "female"}},
			},
			expected: "female",
		},
		{
			name: "arrived unclassified",
			state: entities.AggregateState{
				Enrichment: map[string]entities.Attribute{"alice": {}},
			},
			expected: "unknown",
		},
		{
			name:     "still pending",
			state:    entities.AggregateState{Pending: 1},
			expected: "…",
		},
		{
			name:     "lookup failed",
			state:    entities.AggregateState{},
			expected: "?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AttributeLabel(tt.state, "alice"))
		})
	}
}

func TestRenderResults(t *testing.T) {
	query := entities.Query{ID: "q1", Location: "Paris"}

	tests := []struct {
		name     string
		state    entities.AggregateState
		contains []string
	}{
		{
			name:     "idle",
			state:    entities.AggregateState{Phase: entities.PhaseIdle},
			contains: []string{"Type a location"},
		},
		{
			name:     "loading",
			state:    entities.AggregateState{Phase: entities.PhaseLoading, Query: query},
			contains: []string{"Loading coders in Paris"},
		},
		{
			name:     "failed",
			state:    entities.AggregateState{Phase: entities.PhaseFailed, Query: query, Err: "HTTP error! status: 503"},
			contains: []string{"Error: HTTP error! status: 503"},
		},
		{
			name:     "ready and empty",
			state:    entities.AggregateState{Phase: entities.PhaseReady, Query: query, Entities: []entities.Entity{}},
			contains: []string{"Coders in Paris (0)", "No coders found."},
		},
		{
			name: "ready with pending enrichment",
			state: entities.AggregateState{
				Phase: entities.PhaseReady,
				Query: query,
				Entities: []entities.Entity{
					{ID: 1, Login: "amelie", HTMLURL: "https://github.com/amelie"},
					{ID: 2, Login: "jean", HTMLURL: "https://github.com/jean"},
				},
				Enrichment: map[string]entities.Attribute{"amelie": {Label: "female"}},
				Pending:    1,
			},
			contains: []string{"Coders in Paris (2)", "enriching, 1 pending", "amelie", "female", "jean", "…"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderResults(tt.state)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}
