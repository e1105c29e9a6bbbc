// Package store is the durable local half of the system: a versioned SQLite
// database with one table per entity kind. The backend-mirrored tables (jobs,
// candidates, assessments) are write-behind caches of authoritative server
// responses; assessment responses and timeline events exist only here.
//
// The store is opened explicitly with Open and passed around as a handle;
// there is no package-level singleton.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/talentflow-app/talentflow/internal/store/assessments"
	"github.com/talentflow-app/talentflow/internal/store/candidates"
	"github.com/talentflow-app/talentflow/internal/store/jobs"
	"github.com/talentflow-app/talentflow/internal/store/migrations"
	"github.com/talentflow-app/talentflow/internal/store/responses"
	"github.com/talentflow-app/talentflow/internal/store/timeline"
)

// Store bundles the per-table repositories over one SQLite database.
type Store struct {
	db *sql.DB

	Jobs        jobs.Repository
	Candidates  candidates.Repository
	Assessments assessments.Repository
	Responses   responses.Repository
	Timeline    timeline.Repository
}

// Open opens (creating if necessary) the database at dsn and applies any
// pending migrations. An open failure is fatal to every feature that depends
// on persistence, so callers should treat an error here as unrecoverable.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}

	return &Store{
		db:          db,
		Jobs:        jobs.NewSQLiteRepository(db),
		Candidates:  candidates.NewSQLiteRepository(db),
		Assessments: assessments.NewSQLiteRepository(db),
		Responses:   responses.NewSQLiteRepository(db),
		Timeline:    timeline.NewSQLiteRepository(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations applies the embedded migration steps in order against the
// stored schema-version marker. Steps only add tables and indexes; reopening
// an up-to-date database is a no-op.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
