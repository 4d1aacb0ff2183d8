package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vijay-prabhu/research-connect/internal/config"
)

//go:embed migrations/sqlite/001_initial.sql
var sqliteMigration string

//go:embed migrations/mysql/001_initial.sql
var mysqlMigration string

// ErrNotFound is returned when an update or delete touches no row
var ErrNotFound = errors.New("not found")

// Dialect identifies the SQL backend
type Dialect string

const (
	DialectSQLite Dialect = "sqlite3"
	DialectMySQL  Dialect = "mysql"
)

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
	dialect Dialect
}

// New wraps an existing connection without running migrations
func New(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{DB: sqlDB, dialect: dialect}
}

// Connect opens the database described by the config
func Connect(cfg config.DatabaseConfig) (*DB, error) {
	switch Dialect(cfg.Driver) {
	case DialectSQLite:
		return Open(cfg.Path)
	case DialectMySQL:
		return OpenMySQL(cfg.DSN, cfg.MaxOpenConns)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// Open opens or creates the SQLite database at the given path
func Open(path string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with common settings
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes
	sqlDB.SetMaxIdleConns(1)

	db := New(sqlDB, DialectSQLite)

	// Run migrations
	if err := db.migrate(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenMySQL connects to a MySQL server. parseTime is forced on so DATETIME
// columns scan into time.Time.
func OpenMySQL(dsn string, maxOpenConns int) (*DB, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	mcfg.ParseTime = true
	mcfg.Loc = time.UTC

	sqlDB, err := sql.Open("mysql", mcfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxOpenConns < 1 {
		maxOpenConns = 1
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	db := New(sqlDB, DialectMySQL)
	if err := db.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Dialect returns the backend this connection talks to
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// migrate runs database migrations
func (db *DB) migrate(ctx context.Context) error {
	// Check if we need to run migrations
	var checkQuery, migration string
	switch db.dialect {
	case DialectMySQL:
		checkQuery = `
			SELECT COUNT(*) FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_name = 'users'
		`
		migration = mysqlMigration
	default:
		checkQuery = `
			SELECT COUNT(*) FROM sqlite_master
			WHERE type='table' AND name='users'
		`
		migration = sqliteMigration
	}

	var tableCount int
	if err := db.QueryRowContext(ctx, checkQuery).Scan(&tableCount); err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	if tableCount > 0 {
		return nil
	}

	// The MySQL driver rejects multi-statement strings unless configured to
	// accept them, so statements run one at a time.
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range splitStatements(migration) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to run initial migration: %w", err)
			}
		}
		return nil
	})
}

// splitStatements breaks a migration file into individual statements
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "--") {
				lines = append(lines, line)
			}
		}
		if stmt := strings.TrimSpace(strings.Join(lines, "\n")); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Transaction runs a function in a transaction
func (db *DB) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Health checks database connectivity
func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// now returns the timestamp stored in created_at/updated_at columns
func now() time.Time {
	return time.Now().UTC()
}

// checkAffected maps a zero-row update or delete to ErrNotFound
func checkAffected(result sql.Result, what, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}
