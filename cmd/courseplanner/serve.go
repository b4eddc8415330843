package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jacobmichels/Course-Planner-Go/repository"
	"github.com/jacobmichels/Course-Planner-Go/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := newServices(cfg)
		if err != nil {
			return err
		}

		lookups, err := repository.New(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to create lookup repository: %w", err)
		}
		defer func() {
			if err := lookups.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close lookup repository")
			}
		}()

		loc, err := time.LoadLocation(cfg.Calendar.Timezone)
		if err != nil {
			return fmt.Errorf("failed to load calendar timezone %q: %w", cfg.Calendar.Timezone, err)
		}

		srv := server.NewServer(cfg.Server.Addr, svc.catalog, lookups, cfg.Server.CORSOrigins, loc)
		return srv.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
