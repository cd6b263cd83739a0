package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ersonp/nearby/internal/application/handlers"
	"github.com/ersonp/nearby/internal/domain/services"
	"github.com/ersonp/nearby/internal/infrastructure/config"
	"github.com/ersonp/nearby/internal/infrastructure/genderize"
	"github.com/ersonp/nearby/internal/infrastructure/github"
	"github.com/ersonp/nearby/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config        *config.Config
	QueryService  *services.QueryService
	SearchHandler *handlers.SearchHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !strings.Contains(cfg.HTTP.UserAgent, "/") {
		cfg.HTTP.UserAgent += "/" + version
	}

	logger, err := logging.New(cfg.LogPath(cwd))
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logger.Close()

	searcher, err := github.NewClient(cfg.GitHub, cfg.HTTP)
	if err != nil {
		return fmt.Errorf("creating github client: %w", err)
	}

	classifier, err := genderize.NewClient(cfg.Genderize, cfg.HTTP)
	if err != nil {
		return fmt.Errorf("creating genderize client: %w", err)
	}

	enrichmentService := services.NewEnrichmentService(classifier, logger)
	queryService := services.NewQueryService(searcher, enrichmentService, logger)
	defer queryService.Close()

	deps := &Deps{
		Config:        cfg,
		QueryService:  queryService,
		SearchHandler: handlers.NewSearchHandler(queryService),
	}

	return fn(deps)
}
