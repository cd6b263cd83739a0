package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ersonp/nearby/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive search",
		Long:  "Opens an interactive screen: type a location, press Enter, and watch results fill in as lookups finish.",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		model := tui.NewModel(cmd.Context(), d.QueryService)
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("running tui: %w", err)
		}
		return nil
	})
}
