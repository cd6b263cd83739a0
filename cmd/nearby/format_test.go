package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/nearby/internal/domain/entities"
)

func sampleState() entities.AggregateState {
	return entities.AggregateState{
		Query: entities.Query{ID: "q1", Location: "Paris"},
		Phase: entities.PhaseReady,
		Entities: []entities.Entity{
			{ID: 1, Login: "amelie", AvatarURL: "https://a/1", HTMLURL: "https://github.com/amelie"},
			{ID: 2, Login: "jean", AvatarURL: "https://a/2", HTMLURL: "https://github.com/jean"},
		},
		Enrichment: map[string]entities.Attribute{"amelie": {Label: "female", Probability: 0.97}},
	}
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, sampleState()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,login,gender,probability,html_url,avatar_url", lines[0])
	assert.Equal(t, "1,amelie,female,0.97,https://github.com/amelie,https://a/1", lines[1])
	assert.Equal(t, "2,jean,,,https://github.com/jean,https://a/2", lines[2])
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatMarkdown(&buf, sampleState()))

	out := buf.String()
	assert.Contains(t, out, "# Coders in Paris")
	assert.Contains(t, out, "Total: 2 users")
	assert.Contains(t, out, "| amelie | female | https://github.com/amelie |")
	assert.Contains(t, out, "| jean | ? | https://github.com/jean |")
}

func TestFormatJSON_EmptyResult(t *testing.T) {
	state := entities.AggregateState{
		Query:    entities.Query{Location: "Atlantis"},
		Phase:    entities.PhaseReady,
		Entities: []entities.Entity{},
	}

	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, state))
	assert.Equal(t, "{\n  \"location\": \"Atlantis\",\n  \"users\": []\n}\n", buf.String())
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `a\|b c`, escapeMarkdown("a|b\nc"))
}
