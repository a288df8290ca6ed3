package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtnitsch/pageqr/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertPageMetadata inserts one page metadata record.
// A page index that already exists is rejected by the primary key.
func (db *DB) InsertPageMetadata(ctx context.Context, page models.PageMetadata) error {
	return insertPageMetadata(ctx, db, page)
}

// InsertPageStatus inserts one page status record.
func (db *DB) InsertPageStatus(ctx context.Context, status models.PageStatus) error {
	return insertPageStatus(ctx, db, status)
}

// SeedPage inserts a metadata record and its status record in one transaction.
func (db *DB) SeedPage(ctx context.Context, page models.PageMetadata, status models.PageStatus) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if err := insertPageMetadata(ctx, tx, page); err != nil {
		return err
	}
	if err := insertPageStatus(ctx, tx, status); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit page %d: %w", page.PageIndex, err)
	}
	return nil
}

func insertPageMetadata(ctx context.Context, ex execer, page models.PageMetadata) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO page_metadata (page_index, filename)
		VALUES (?, ?)
	`, page.PageIndex, page.Filename)
	if err != nil {
		return fmt.Errorf("failed to insert page metadata %d: %w", page.PageIndex, err)
	}
	return nil
}

func insertPageStatus(ctx context.Context, ex execer, status models.PageStatus) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO page_status (page_index, sender, receiver, content, status)
		VALUES (?, ?, ?, ?, ?)
	`, status.PageIndex, status.Sender, status.Receiver, status.Content, status.Status)
	if err != nil {
		return fmt.Errorf("failed to insert page status %d: %w", status.PageIndex, err)
	}
	return nil
}

// ListPageMetadata returns every (page_index, filename) pair in ascending
// page_index order. An empty table yields an empty, non-nil slice.
func (db *DB) ListPageMetadata(ctx context.Context) ([]models.PageMetadata, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT page_index, filename
		FROM page_metadata
		ORDER BY page_index ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query page metadata: %w", err)
	}
	defer rows.Close()

	pages := []models.PageMetadata{}
	for rows.Next() {
		var p models.PageMetadata
		if err := rows.Scan(&p.PageIndex, &p.Filename); err != nil {
			return nil, fmt.Errorf("failed to scan page metadata: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page metadata: %w", err)
	}

	return pages, nil
}

// ListPageStatuses returns all status records ordered by page_index, then insertion order.
func (db *DB) ListPageStatuses(ctx context.Context) ([]models.PageStatus, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT page_index, sender, receiver, content, status
		FROM page_status
		ORDER BY page_index ASC, status_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query page status: %w", err)
	}
	defer rows.Close()

	statuses := []models.PageStatus{}
	for rows.Next() {
		var s models.PageStatus
		if err := rows.Scan(&s.PageIndex, &s.Sender, &s.Receiver, &s.Content, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan page status: %w", err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read page status: %w", err)
	}

	return statuses, nil
}

// ResetStatuses sets status = false on every status record and returns
// the number of rows changed. Metadata is never touched.
func (db *DB) ResetStatuses(ctx context.Context) (int64, error) {
	result, err := db.ExecContext(ctx, "UPDATE page_status SET status = 0")
	if err != nil {
		return 0, fmt.Errorf("failed to reset statuses: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reset rows: %w", err)
	}
	return n, nil
}

// MaxPageIndex returns the largest page_index in page_metadata, or 0 when empty.
func (db *DB) MaxPageIndex(ctx context.Context) (int64, error) {
	var maxIndex sql.NullInt64
	if err := db.QueryRowContext(ctx, "SELECT MAX(page_index) FROM page_metadata").Scan(&maxIndex); err != nil {
		return 0, fmt.Errorf("failed to get max page index: %w", err)
	}
	return maxIndex.Int64, nil
}
