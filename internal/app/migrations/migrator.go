package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// DB is the subset of *pgxpool.Pool the migrator needs
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migration is one SQL file; Version is the filename prefix before the first underscore
type Migration struct {
	Version string
	Path    string
}

// Migrator applies SQL migrations once each, tracked in schema_migrations
type Migrator struct {
	db     DB
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db DB, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	_, err := m.db.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Apply runs one migration and records it in the same transaction
func (m *Migrator) Apply(ctx context.Context, mig Migration) error {
	applied, err := m.isMigrationApplied(ctx, mig.Version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("version", mig.Version).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := os.ReadFile(mig.Path)
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("migration %s failed: %w", mig.Version, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, mig.Version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("version", mig.Version).Str("file", filepath.Base(mig.Path)).Msg("Migration applied")
	return nil
}

// MigrateFromDirectory applies every pending *.sql file in dirPath in filename order
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dirPath string) error {
	migrations, err := Collect(dirPath)
	if err != nil {
		return err
	}

	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, mig := range migrations {
		if err := m.Apply(ctx, mig); err != nil {
			return err
		}
	}
	return nil
}

// Collect lists the *.sql files of dirPath sorted by name.
// Two files sharing a version prefix are rejected.
func Collect(dirPath string) ([]Migration, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	seen := make(map[string]string, len(names))
	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		version := strings.SplitN(strings.TrimSuffix(name, ".sql"), "_", 2)[0]
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s: %s and %s", version, prev, name)
		}
		seen[version] = name
		migrations = append(migrations, Migration{Version: version, Path: filepath.Join(dirPath, name)})
	}
	return migrations, nil
}
