package db

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dtnitsch/item-labeler/internal/common"
)

// Run represents one stored preprocess run.
type Run struct {
	RunID       int64
	CreatedAt   time.Time
	RootDir     string
	SourceCount int
	ItemCount   int
	ErrorCount  int
}

// ItemLabel is the stored label and page title of one item.
type ItemLabel struct {
	RunID     int64
	Source    string
	ItemName  string
	PageTitle sql.NullString
	Label     string
}

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// InsertRun records a run and returns its run_id.
func (db *DB) InsertRun(rootDir string, sourceCount, itemCount, errorCount int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (root_dir, source_count, item_count, error_count)
		VALUES (?, ?, ?, ?)
	`, rootDir, sourceCount, itemCount, errorCount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertLabels stores every label of a run in a single transaction.
// Page titles are matched by item name; items without one store NULL.
func (db *DB) InsertLabels(runID int64, labels, pageTitles map[string]string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO item_labels (run_id, source, item_name, page_title, label)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		source, _, _ := common.SplitItemName(name)
		title, hasTitle := pageTitles[name]
		if _, err := stmt.Exec(runID, source, name, NewNullString(title, hasTitle), labels[name]); err != nil {
			return fmt.Errorf("failed to insert label for %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit labels: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, root_dir, source_count, item_count, error_count
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.RootDir, &r.SourceCount, &r.ItemCount, &r.ErrorCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetItemLabel returns the label of itemName from the latest run that stored it.
func (db *DB) GetItemLabel(itemName string) (*ItemLabel, error) {
	var l ItemLabel
	err := db.QueryRow(`
		SELECT run_id, source, item_name, page_title, label
		FROM item_labels
		WHERE item_name = ?
		ORDER BY run_id DESC
		LIMIT 1
	`, itemName).Scan(&l.RunID, &l.Source, &l.ItemName, &l.PageTitle, &l.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", itemName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item label: %w", err)
	}
	return &l, nil
}

// GetRunLabels returns the item name to label mapping stored for runID.
func (db *DB) GetRunLabels(runID int64) (map[string]string, error) {
	rows, err := db.Query(`SELECT item_name, label FROM item_labels WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run labels: %w", err)
	}
	defer rows.Close()

	labels := make(map[string]string)
	for rows.Next() {
		var name, label string
		if err := rows.Scan(&name, &label); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels[name] = label
	}
	return labels, rows.Err()
}

// NewNullString wraps s as a sql.NullString that is valid only when ok.
func NewNullString(s string, ok bool) sql.NullString {
	return sql.NullString{String: s, Valid: ok}
}
