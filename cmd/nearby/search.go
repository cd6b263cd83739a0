package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/nearby/internal/application/handlers"
)

type searchFlags struct {
	wait   time.Duration
	format string
}

func newSearchCmd() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search <location>",
		Short: "Find coders by location",
		Long: `Searches GitHub users whose profile location matches and guesses each
user's gender. Users whose lookup failed are shown with "?".`,
		Example: "  nearby search Berlin\n  nearby search San Francisco --format json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), flags)
		},
	}

	cmd.Flags().DurationVarP(&flags.wait, "wait", "W", DefaultWait, "Maximum time to wait for results (0 waits indefinitely)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json, csv, markdown)")

	return cmd
}

func runSearch(cmd *cobra.Command, location string, flags searchFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		result, err := d.SearchHandler.Handle(cmd.Context(), location, flags.wait)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Skipped {
			fmt.Fprintln(out, "Nothing to search: location is empty.")
			return nil
		}

		if err := formatResult(out, flags.format, result.State); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}

		if result.Partial {
			fmt.Fprintln(cmd.ErrOrStderr(), partialNotice(result, flags.wait))
		}
		return nil
	})
}

func partialNotice(result *handlers.SearchResult, wait time.Duration) string {
	return fmt.Sprintf("%d enrichment lookups still pending after %s", result.State.Pending, wait)
}
