package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/config"
)

//go:embed migrations
var migrations embed.FS

func New(ctx context.Context, cfg config.Database) (courseplanner.LookupRepository, error) {
	if cfg.Type == "" || cfg.Type == "none" {
		log.Info().Msg("lookup history disabled")
		return NewNoop(), nil
	} else if cfg.Type == "sqlite" {
		log.Info().Msg("creating sqlite repository")
		return newSQLiteRepository(ctx, cfg.SQLite)
	} else if cfg.Type == "postgres" {
		log.Info().Msg("creating postgres repository")
		return newPostgresRepository(ctx, cfg.Postgres)
	} else if cfg.Type == "firestore" {
		log.Info().Msg("creating firestore repository")
		return newFirestoreRepository(ctx, cfg.Firestore)
	} else {
		return nil, errors.New("invalid database type")
	}
}

func migrationSource(dialect string) (source.Driver, error) {
	src, err := iofs.New(migrations, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s migrations: %w", dialect, err)
	}
	return src, nil
}
