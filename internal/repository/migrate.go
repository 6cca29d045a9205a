package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shenikar/road_risk_advisor/migrations"
)

// MigratePostgres применяет встроенные миграции postgres к базе по DSN
func MigratePostgres(databaseURL string) error {
	src, err := iofs.New(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("could not open postgres migrations: %w", err)
	}

	migrationURL := databaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// MigrateSQLite применяет встроенные миграции sqlite к открытой базе.
// m.Close не вызывается: он закрыл бы и переданный *sql.DB.
func MigrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("could not open sqlite migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
