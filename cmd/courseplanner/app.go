package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jacobmichels/Course-Planner-Go/catalog"
	"github.com/jacobmichels/Course-Planner-Go/config"
	"github.com/jacobmichels/Course-Planner-Go/planner"
	"github.com/jacobmichels/Course-Planner-Go/terms"
)

// populated by setup before any subcommand runs
var cfg config.Config

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.ReadConfig()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	return nil
}

type services struct {
	upstream planner.PlannerAPI
	terms    terms.Resolver
	catalog  catalog.Catalog
}

func newServices(cfg config.Config) (services, error) {
	limiter := rate.NewLimiter(rate.Limit(cfg.Upstream.RequestsPerSecond), cfg.Upstream.Burst)

	upstream, err := planner.NewPlannerAPI(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, limiter)
	if err != nil {
		return services{}, fmt.Errorf("failed to create planner client: %w", err)
	}

	resolver := terms.NewResolver(upstream)
	courses := catalog.NewCatalog(upstream, resolver, cfg.Upstream.MaxResults, time.Now)

	return services{upstream, resolver, courses}, nil
}
