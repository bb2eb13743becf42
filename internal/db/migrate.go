// Package db owns the events schema and applies it with golang-migrate.
package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"event-heatmap-service/internal/monitoring"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// MigrateUp runs all pending migrations up to the latest version.
// Returns nil if the schema is already current.
func MigrateUp(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}
	// m is not closed: that would close db as well.

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

// MigrateVersion returns the current migration version and dirty state.
// Returns 0, false, nil if no migrations have been applied yet.
func MigrateVersion(db *sql.DB) (version uint, dirty bool, err error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

func newSource() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return src, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	src, err := newSource()
	if err != nil {
		return nil, err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m.Log = &migrateLogger{}

	return m, nil
}

// migrateLogger implements migrate.Logger
type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	monitoring.Logf("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}
