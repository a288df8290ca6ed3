package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(context.Background()); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestOpen_WriterCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pages.db")

	database, err := Open(context.Background(), dbPath, time.Second)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if database.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", database.Path(), dbPath)
	}

	pages, err := database.ListPageMetadata(context.Background())
	if err != nil {
		database.Close()
		t.Fatalf("ListPageMetadata() error = %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("fresh database has %d pages, want 0", len(pages))
	}

	// Reopening an initialized database must not fail or wipe data
	if err := database.InsertPageMetadata(context.Background(), pageMeta(1, "a.html")); err != nil {
		database.Close()
		t.Fatalf("InsertPageMetadata() error = %v", err)
	}
	database.Close()

	reopened, err := Open(context.Background(), dbPath, time.Second)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer reopened.Close()

	pages, err = reopened.ListPageMetadata(context.Background())
	if err != nil {
		t.Fatalf("ListPageMetadata() error = %v", err)
	}
	if len(pages) != 1 {
		t.Errorf("reopened database has %d pages, want 1", len(pages))
	}
}

func TestOpen_UnreachablePath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "pages.db")

	database, err := Open(context.Background(), dbPath, time.Second)
	if err == nil {
		database.Close()
		t.Fatal("Open() on a path under a missing directory should fail")
	}
}

// countTables returns how many tables the database file holds.
func countTables(t *testing.T, dbPath string) int {
	t.Helper()
	sqlDB, err := openDB(dbPath)
	if err != nil {
		t.Fatalf("openDB() error = %v", err)
	}
	defer sqlDB.Close()

	var n int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&n); err != nil {
		t.Fatalf("failed to count tables: %v", err)
	}
	return n
}

func TestOpenReadOnly_MissingFileNotCreated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "typo.db")

	database, err := OpenReadOnly(context.Background(), dbPath, time.Second)
	if err == nil {
		database.Close()
		t.Fatal("OpenReadOnly() on a missing file should fail")
	}
	if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
		t.Errorf("OpenReadOnly() created %s", dbPath)
	}
}

func TestOpenReadOnly_ForeignSchemaUntouched(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pages.db")
	sqlDB, err := openDB(dbPath)
	if err != nil {
		t.Fatalf("openDB() error = %v", err)
	}
	if _, err := sqlDB.Exec(`
		CREATE TABLE PageMetadata (pageIndex INTEGER, filename TEXT);
		INSERT INTO PageMetadata VALUES (1, 'a.html'), (2, 'b.html');
	`); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	sqlDB.Close()

	database, err := OpenReadOnly(context.Background(), dbPath, time.Second)
	if err != nil {
		t.Fatalf("OpenReadOnly() error = %v", err)
	}

	if _, err := database.ListPageMetadata(context.Background()); err == nil {
		t.Error("ListPageMetadata() on a store without page_metadata should fail")
	}

	var journal string
	if err := database.QueryRow("PRAGMA journal_mode").Scan(&journal); err != nil {
		t.Fatalf("failed to read journal mode: %v", err)
	}
	if journal == "wal" {
		t.Error("journal mode switched to wal by a read-only open")
	}
	database.Close()

	if n := countTables(t, dbPath); n != 1 {
		t.Errorf("store has %d tables after read-only use, want 1", n)
	}
}

func TestOpenReadOnly_ReadsSeededStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pages.db")
	ctx := context.Background()

	writer, err := Open(ctx, dbPath, time.Second)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := writer.InsertPageMetadata(ctx, pageMeta(1, "a.html")); err != nil {
		writer.Close()
		t.Fatalf("InsertPageMetadata() error = %v", err)
	}
	writer.Close()

	reader, err := OpenReadOnly(ctx, dbPath, time.Second)
	if err != nil {
		t.Fatalf("OpenReadOnly() error = %v", err)
	}
	defer reader.Close()

	pages, err := reader.ListPageMetadata(ctx)
	if err != nil {
		t.Fatalf("ListPageMetadata() error = %v", err)
	}
	if len(pages) != 1 || pages[0].Filename != "a.html" {
		t.Errorf("ListPageMetadata() = %+v, want one page a.html", pages)
	}

	if err := reader.InsertPageMetadata(ctx, pageMeta(2, "b.html")); err == nil {
		t.Error("InsertPageMetadata() through a read-only handle should fail")
	}
}
