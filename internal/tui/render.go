package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/nearby/internal/domain/entities"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	loginStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

const (
	labelPending = "…"
	labelMissing = "?"
	labelUnknown = "unknown"
)

// AttributeLabel returns the display text for handle's enrichment: the label
// when it arrived, a pending marker while lookups are in flight, and a
// missing marker once the lookup is known to have failed.
func AttributeLabel(state entities.AggregateState, handle string) string {
	attr, ok := state.Attribute(handle)
	switch {
	case ok:
		return attr.LabelOr(labelUnknown)
	case state.Pending > 0:
		return labelPending
	default:
		return labelMissing
	}
}

// RenderResults renders everything below the input line for state.
func RenderResults(state entities.AggregateState) string {
	var b strings.Builder

	switch state.Phase {
	case entities.PhaseIdle:
		b.WriteString(dimStyle.Render("Type a location and press Enter."))
		b.WriteString("\n")
	case entities.PhaseLoading:
		fmt.Fprintf(&b, "Loading coders in %s...\n", state.Query.Location)
	case entities.PhaseFailed:
		b.WriteString(errorStyle.Render("Error: " + state.Err))
		b.WriteString("\n")
	case entities.PhaseReady:
		renderEntities(&b, state)
	}

	return b.String()
}

func renderEntities(b *strings.Builder, state entities.AggregateState) {
	heading := fmt.Sprintf("Coders in %s (%d)", state.Query.Location, len(state.Entities))
	b.WriteString(headingStyle.Render(heading))
	if state.Pending > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  enriching, %d pending", state.Pending)))
	}
	b.WriteString("\n")

	if len(state.Entities) == 0 {
		b.WriteString(dimStyle.Render("No coders found."))
		b.WriteString("\n")
		return
	}

	loginWidth, labelWidth := 0, len(labelUnknown)
	for _, e := range state.Entities {
		loginWidth = max(loginWidth, lipgloss.Width(e.Login))
		labelWidth = max(labelWidth, lipgloss.Width(AttributeLabel(state, e.Login)))
	}

	for _, e := range state.Entities {
		login := e.Login + strings.Repeat(" ", loginWidth-lipgloss.Width(e.Login))
		label := AttributeLabel(state, e.Login)
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		fmt.Fprintf(b, "  %s  %s  %s\n", loginStyle.Render(login), label, dimStyle.Render(e.HTMLURL))
	}
}
