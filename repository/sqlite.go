package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "modernc.org/sqlite"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/config"
)

var _ courseplanner.LookupRepository = SQLiteRepository{}

type SQLiteRepository struct {
	db  *sql.DB
	cfg config.SQLite
}

// swapped in tests to observe the connection
var openSQLite = sql.Open

// creates a new repository backed by sqlite
// returns an error if the connection cannot be established or if a ping fails
func newSQLiteRepository(ctx context.Context, cfg config.SQLite) (SQLiteRepository, error) {
	// open connection
	db, err := openSQLite("sqlite", cfg.ConnectionString)
	if err != nil {
		return SQLiteRepository{}, fmt.Errorf("failed to open connection to sqlite: %w", err)
	}

	if err := migrateSQLite(ctx, db); err != nil {
		db.Close()
		return SQLiteRepository{}, err
	}

	return SQLiteRepository{db, cfg}, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	// check connection
	err := db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping db: %w", err)
	}

	// perform migrations
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := migrationSource("sqlite")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to execute migrations: %w", err)
	}

	return nil
}

func (r SQLiteRepository) Record(ctx context.Context, lookup courseplanner.Lookup) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO lookups (id, kind, course_id, year, term, ok, error, duration_ms, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		lookup.ID, lookup.Kind, lookup.CourseID, lookup.Year, lookup.Term, lookup.OK, lookup.Error, lookup.DurationMs, lookup.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert statement failed: %w", err)
	}

	return nil
}

func (r SQLiteRepository) Recent(ctx context.Context, limit int) ([]courseplanner.Lookup, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, kind, course_id, year, term, ok, error, duration_ms, created_at FROM lookups ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lookups from the db: %w", err)
	}

	lookups := []courseplanner.Lookup{}

	defer rows.Close()
	for rows.Next() {
		var lookup courseplanner.Lookup
		var createdAt int64

		if err := rows.Scan(&lookup.ID, &lookup.Kind, &lookup.CourseID, &lookup.Year, &lookup.Term, &lookup.OK, &lookup.Error, &lookup.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		lookup.CreatedAt = time.Unix(0, createdAt).UTC()

		lookups = append(lookups, lookup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return lookups, nil
}

func (r SQLiteRepository) Close() error {
	return r.db.Close()
}
