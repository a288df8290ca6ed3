package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "pages.db"

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serialises writers anyway, and ":memory:" databases are per connection
	sqlDB.SetMaxOpenConns(1)

	return sqlDB, nil
}

// Open opens or creates the SQLite database at dbPath and initializes the
// schema if needed. Only writers (seeding, status reset) use it.
// The connection is verified with a ping bounded by timeout, the only step
// of a run with unbounded external latency. A zero timeout means no bound.
func Open(ctx context.Context, dbPath string, timeout time.Duration) (*DB, error) {
	if dbPath == "" {
		dbPath = DefaultDBName
	}

	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close() // Close error less important than ping error
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbPath, err)
	}

	db := &DB{
		DB:   sqlDB,
		path: dbPath,
	}

	// Auto-initialize schema if it doesn't exist
	if err := db.ensureSchemaExists(ctx); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// OpenReadOnly opens an existing SQLite database without creating the file,
// running DDL or changing pragmas. A missing file is an error; a file without
// the expected tables opens fine and fails on first query.
func OpenReadOnly(ctx context.Context, dbPath string, timeout time.Duration) (*DB, error) {
	if dbPath == "" {
		dbPath = DefaultDBName
	}

	info, err := os.Stat(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open database %s: is a directory", dbPath)
	}

	sqlDB, err := openDB("file:" + dbPath + "?mode=ro")
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbPath, err)
	}

	return &DB{DB: sqlDB, path: dbPath}, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (db *DB) ensureSchemaExists(ctx context.Context) error {
	var tableName string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='page_metadata'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema(ctx)
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema
func (db *DB) InitSchema(ctx context.Context) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
