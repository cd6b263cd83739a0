package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/tui"
)

func formatResult(w io.Writer, format string, state entities.AggregateState) error {
	switch format {
	case "json":
		return formatJSON(w, state)
	case "csv":
		return formatCSV(w, state)
	case "markdown":
		return formatMarkdown(w, state)
	default:
		_, err := fmt.Fprint(w, tui.RenderResults(state))
		return err
	}
}

// resultRow flattens one entity with its enrichment.
type resultRow struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	Gender      string  `json:"gender,omitempty"`
	Probability float64 `json:"probability,omitempty"`
	Enriched    bool    `json:"enriched"`
}

func resultRows(state entities.AggregateState) []resultRow {
	rows := make([]resultRow, 0, len(state.Entities))
	for _, e := range state.Entities {
		row := resultRow{
			ID:        e.ID,
			Login:     e.Login,
			AvatarURL: e.AvatarURL,
			HTMLURL:   e.HTMLURL,
		}
		if attr, ok := state.Attribute(e.Login); ok {
			row.Gender = attr.Label
			row.Probability = attr.Probability
			row.Enriched = true
		}
		rows = append(rows, row)
	}
	return rows
}

func formatJSON(w io.Writer, state entities.AggregateState) error {
	out := struct {
		Location string      `json:"location"`
		Users    []resultRow `json:"users"`
		Pending  int         `json:"pending,omitempty"`
	}{
		Location: state.Query.Location,
		Users:    resultRows(state),
		Pending:  state.Pending,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func formatCSV(w io.Writer, state entities.AggregateState) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "login", "gender", "probability", "html_url", "avatar_url"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range resultRows(state) {
		probability := ""
		if r.Enriched {
			probability = strconv.FormatFloat(r.Probability, 'f', 2, 64)
		}
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Login,
			r.Gender,
			probability,
			r.HTMLURL,
			r.AvatarURL,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, state entities.AggregateState) error {
	if _, err := fmt.Fprintf(w, "# Coders in %s\n\nTotal: %d users\n\n", escapeMarkdown(state.Query.Location), len(state.Entities)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Login | Gender | Profile |\n|-------|--------|---------|\n"); err != nil {
		return err
	}

	for _, e := range state.Entities {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s |\n",
			escapeMarkdown(e.Login),
			escapeMarkdown(tui.AttributeLabel(state, e.Login)),
			e.HTMLURL,
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
