package iocache

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationReport describes the effect of a migration.
type MigrationReport struct {
	From    uint
	To      uint
	Changed bool
}

// Migrate runs the schema migrations of the record store.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations.
// - If targetVersion > 0, it migrates to the specified version.
func Migrate(backend schema.DatabaseBackend, connStr string, targetVersion int) (MigrationReport, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return MigrationReport{}, err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return MigrationReport{}, fmt.Errorf("failed to ping database: %w", err)
	}
	return migrateDB(db, backend, targetVersion)
}

// migrateDB applies the embedded migrations of the backend on an open handle.
// The migrate instance is not closed, because that would close db as well.
func migrateDB(db *sql.DB, backend schema.DatabaseBackend, targetVersion int) (MigrationReport, error) {
	var driver database.Driver
	var err error
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		driver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return MigrationReport{}, fmt.Errorf("unsupported backend: %s", backend)
	}
	if err != nil {
		return MigrationReport{}, fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations/"+string(backend))
	if err != nil {
		return MigrationReport{}, fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return MigrationReport{}, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "protokoll", driver)
	if err != nil {
		return MigrationReport{}, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationReport{}, fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return MigrationReport{}, fmt.Errorf("database is in a dirty state at version %d. Please fix manually or force version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	report := MigrationReport{From: currentVersion, To: currentVersion}
	if errors.Is(err, migrate.ErrNoChange) {
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
	}

	newVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return report, fmt.Errorf("failed to read migrated version: %w", err)
	}
	report.To = newVersion
	report.Changed = true
	return report, nil
}
