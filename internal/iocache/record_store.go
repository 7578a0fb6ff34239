// Package iocache is the persistence layer of protokoll: the record store and the dataset cache.
package iocache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"github.com/go-sql-driver/mysql"   // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names of the record store.
const (
	disturbancesTable    = "disturbances"
	remedialActionsTable = "remedial_actions"
)

// RecordStoreImpl persists disturbance records and remedial actions in a SQL database.
type RecordStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.RecordStore = &RecordStoreImpl{} // Compile-time check

// NewRecordStore opens the store for the given backend and migrates its schema to the latest version.
// An empty connStr for SQLite means the default database file in the home directory.
func NewRecordStore(backend schema.DatabaseBackend, connStr string) (contract.RecordStore, error) {
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Check that the directory of the database file is writable."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if _, err := migrateDB(db, backend, -1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate record store: %w", err)
	}

	return &RecordStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// openDB opens a database handle for the backend without connecting.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w", dbPath, err)
		}
		// A single connection avoids "database is locked" and keeps :memory: databases alive
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// placeholder returns the n-th (1-based) bind parameter for the backend.
func placeholder(backend schema.DatabaseBackend, n int) string {
	if backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// placeholders returns n comma separated bind parameters.
func placeholders(backend schema.DatabaseBackend, n int) string {
	s := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			s += ", "
		}
		s += placeholder(backend, i)
	}
	return s
}

// FetchAll returns every disturbance record in insertion order.
func (rs *RecordStoreImpl) FetchAll(ctx context.Context) ([]schema.RawRecord, error) {
	query := fmt.Sprintf(
		"SELECT id, event_date, begin_time, end_time, cause, responsible, impact FROM %s ORDER BY id",
		disturbancesTable)
	rows, err := rs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query disturbances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RawRecord
	for rows.Next() {
		var r schema.RawRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Begin, &r.End, &r.Cause, &r.Responsible, &r.Impact); err != nil {
			return nil, fmt.Errorf("failed to scan disturbance: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read disturbances: %w", err)
	}
	return records, nil
}

// FetchActions returns every remedial action in insertion order.
func (rs *RecordStoreImpl) FetchActions(ctx context.Context) ([]schema.RemedialAction, error) {
	query := fmt.Sprintf("SELECT id, period, description, outcome FROM %s ORDER BY id", remedialActionsTable)
	rows, err := rs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query remedial actions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var actions []schema.RemedialAction
	for rows.Next() {
		var a schema.RemedialAction
		if err := rows.Scan(&a.ID, &a.Period, &a.Description, &a.Outcome); err != nil {
			return nil, fmt.Errorf("failed to scan remedial action: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read remedial actions: %w", err)
	}
	return actions, nil
}

// InsertRecord stores a new disturbance record and returns its id.
// The store rejects a second record with the same date, begin and responsible party.
func (rs *RecordStoreImpl) InsertRecord(ctx context.Context, r schema.RawRecord) (int64, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (event_date, begin_time, end_time, cause, responsible, impact) VALUES (%s)",
		disturbancesTable, placeholders(rs.backend, 6))
	id, err := rs.insert(ctx, query, r.Date, r.Begin, r.End, r.Cause, r.Responsible, r.Impact)
	if err != nil {
		return 0, fmt.Errorf("failed to insert disturbance %s %s: %w", r.Date, r.Begin, err)
	}
	return id, nil
}

// InsertAction stores a new remedial action and returns its id.
func (rs *RecordStoreImpl) InsertAction(ctx context.Context, a schema.RemedialAction) (int64, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (period, description, outcome) VALUES (%s)",
		remedialActionsTable, placeholders(rs.backend, 3))
	id, err := rs.insert(ctx, query, a.Period, a.Description, a.Outcome)
	if err != nil {
		return 0, fmt.Errorf("failed to insert remedial action: %w", err)
	}
	return id, nil
}

// insert runs an INSERT and returns the generated id.
func (rs *RecordStoreImpl) insert(ctx context.Context, query string, args ...any) (int64, error) {
	// PostgreSQL drivers do not support LastInsertId
	if rs.backend == schema.PostgreSQLBackend {
		var id int64
		if err := rs.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := rs.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetStatus returns status information about the record store.
func (rs *RecordStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}
	if rs.db == nil {
		return status, nil
	}

	if err := rs.db.QueryRow("SELECT COUNT(*) FROM " + disturbancesTable).Scan(&status.TotalRecords); err != nil {
		return status, fmt.Errorf("failed to count disturbances: %w", err)
	}
	if err := rs.db.QueryRow("SELECT COUNT(*) FROM " + remedialActionsTable).Scan(&status.TotalActions); err != nil {
		return status, fmt.Errorf("failed to count remedial actions: %w", err)
	}

	// Missing version table means the schema was rolled back; report version 0
	var version int64
	if err := rs.db.QueryRow("SELECT version FROM schema_migrations LIMIT 1").Scan(&version); err == nil {
		status.SchemaVersion = uint(version)
	}

	status.TableSizeBytes = rs.tableSize(status.TotalRecords + status.TotalActions)
	return status, nil
}

// tableSize estimates the on-disk size of the store. rows is used for a rough fallback.
func (rs *RecordStoreImpl) tableSize(rows int) int64 {
	fallback := int64(rows) * 200
	var size int64

	switch rs.backend {
	case schema.SQLiteBackend:
		if err := rs.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").Scan(&size); err != nil {
			return 0
		}
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(rs.connStr)
		if err != nil || cfg.DBName == "" {
			return fallback
		}
		query := "SELECT COALESCE(SUM(data_length + index_length), 0) FROM information_schema.tables WHERE table_schema = ? AND table_name IN (?, ?)"
		if err := rs.db.QueryRow(query, cfg.DBName, disturbancesTable, remedialActionsTable).Scan(&size); err != nil {
			return fallback
		}
	case schema.PostgreSQLBackend:
		query := "SELECT pg_total_relation_size($1) + pg_total_relation_size($2)"
		if err := rs.db.QueryRow(query, disturbancesTable, remedialActionsTable).Scan(&size); err != nil {
			return fallback
		}
	default:
		return fallback
	}
	return size
}

// Close closes the database connection.
func (rs *RecordStoreImpl) Close() error {
	if rs.db == nil {
		return nil
	}
	return rs.db.Close()
}
