package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/config"
)

var _ courseplanner.LookupRepository = PostgresRepository{}

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func newPostgresRepository(ctx context.Context, cfg config.Postgres) (PostgresRepository, error) {
	if err := migratePostgres(cfg.ConnectionString); err != nil {
		return PostgresRepository{}, err
	}

	pool, err := pgxpool.New(ctx, cfg.ConnectionString)
	if err != nil {
		return PostgresRepository{}, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return PostgresRepository{}, fmt.Errorf("failed to ping db: %w", err)
	}

	return PostgresRepository{pool}, nil
}

// migrations run over database/sql, queries over the pool
func migratePostgres(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("failed to open connection to postgres: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := migrationSource("postgres")
	if err != nil {
		db.Close()
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create migration: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to execute migrations: %w", err)
	}

	return nil
}

func (r PostgresRepository) Record(ctx context.Context, lookup courseplanner.Lookup) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO lookups (id, kind, course_id, year, term, ok, error, duration_ms, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		lookup.ID, lookup.Kind, lookup.CourseID, lookup.Year, lookup.Term, lookup.OK, lookup.Error, lookup.DurationMs, lookup.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert statement failed: %w", err)
	}

	return nil
}

func (r PostgresRepository) Recent(ctx context.Context, limit int) ([]courseplanner.Lookup, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, kind, course_id, year, term, ok, error, duration_ms, created_at FROM lookups ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lookups from the db: %w", err)
	}

	lookups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (courseplanner.Lookup, error) {
		var lookup courseplanner.Lookup
		err := row.Scan(&lookup.ID, &lookup.Kind, &lookup.CourseID, &lookup.Year, &lookup.Term, &lookup.OK, &lookup.Error, &lookup.DurationMs, &lookup.CreatedAt)
		return lookup, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rows: %w", err)
	}

	return lookups, nil
}

func (r PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
