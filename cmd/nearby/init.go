package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/nearby/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Creates a .nearby directory with the default endpoint and logging configuration.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("nearby already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.ConfigFilePath(cwd))
	return nil
}
