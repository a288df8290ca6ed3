package publisher

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/pageqr/models"
	"github.com/dtnitsch/pageqr/pkg/db"
)

func TestPipeline_StoreFailureSkipsOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "qr_codes")
	enc := &stubEncoder{}
	pipeline := &Pipeline{
		Reader:    NewReader(&fakeSource{err: errors.New("connection refused")}),
		Publisher: NewPublisher(enc, nil),
	}

	res, err := pipeline.Run(context.Background(), "https://example.test/", dir)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Run() error = %v, want ErrStoreUnavailable", err)
	}
	if res.Written != 0 {
		t.Errorf("Run() wrote %d, want 0", res.Written)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("output directory created despite store failure")
	}
	if len(enc.calls) != 0 {
		t.Errorf("encoder called %d times, want 0", len(enc.calls))
	}
}

func TestPipeline_SQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	dbPath := filepath.Join(root, "pages.db")
	writer, err := db.Open(ctx, dbPath, time.Second)
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}

	// Inserted out of order on purpose
	for _, p := range []models.PageMetadata{
		{PageIndex: 2, Filename: "c3d4.html"},
		{PageIndex: 1, Filename: "a1b2.html"},
	} {
		if err := writer.InsertPageMetadata(ctx, p); err != nil {
			t.Fatalf("InsertPageMetadata() error = %v", err)
		}
	}
	writer.Close()

	database, err := db.OpenReadOnly(ctx, dbPath, time.Second)
	if err != nil {
		t.Fatalf("db.OpenReadOnly() error = %v", err)
	}
	defer database.Close()

	enc := &stubEncoder{}
	pipeline := &Pipeline{
		Reader:    NewReader(database),
		Publisher: NewPublisher(enc, nil),
	}

	out := filepath.Join(root, "qr_codes")
	res, err := pipeline.Run(ctx, "https://example.test/", out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Pages != 2 || res.Written != 2 {
		t.Errorf("Run() = %+v, want 2 pages, 2 written", res)
	}

	want := []string{"https://example.test/a1b2.html", "https://example.test/c3d4.html"}
	if len(enc.calls) != 2 || enc.calls[0] != want[0] || enc.calls[1] != want[1] {
		t.Errorf("encoder calls = %v, want %v", enc.calls, want)
	}
	if files := listFiles(t, out); len(files) != 2 || files[0] != "qr_code_1.png" || files[1] != "qr_code_2.png" {
		t.Errorf("output = %v, want [qr_code_1.png qr_code_2.png]", files)
	}
}

func TestPipeline_ForeignSchemaIsStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	dbPath := filepath.Join(root, "pages.db")

	// A store laid out differently: same data, no page_metadata table
	raw, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	if _, err := raw.Exec(`
		CREATE TABLE PageMetadata (pageIndex INTEGER, filename TEXT);
		INSERT INTO PageMetadata VALUES (1, 'a1b2.html'), (2, 'c3d4.html');
	`); err != nil {
		raw.Close()
		t.Fatalf("failed to create fixture: %v", err)
	}
	raw.Close()

	database, err := db.OpenReadOnly(ctx, dbPath, time.Second)
	if err != nil {
		t.Fatalf("db.OpenReadOnly() error = %v", err)
	}
	defer database.Close()

	enc := &stubEncoder{}
	pipeline := &Pipeline{
		Reader:    NewReader(database),
		Publisher: NewPublisher(enc, nil),
	}

	out := filepath.Join(root, "qr_codes")
	res, err := pipeline.Run(ctx, "https://example.test/", out)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Run() error = %v, want ErrStoreUnavailable", err)
	}
	if res.Written != 0 {
		t.Errorf("Run() wrote %d, want 0", res.Written)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output directory created despite unreadable store")
	}
	if len(enc.calls) != 0 {
		t.Errorf("encoder called %d times, want 0", len(enc.calls))
	}

	var tables int
	if err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&tables); err != nil {
		t.Fatalf("failed to count tables: %v", err)
	}
	if tables != 1 {
		t.Errorf("store has %d tables after the run, want 1", tables)
	}
}
