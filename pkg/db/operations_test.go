package db

import (
	"errors"
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	database.SetMaxOpenConns(1)

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRunAndLabels(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun("data", 2, 3, 1)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned 0 ID")
	}

	labels := map[string]string{
		"www.ebay.com//1": "u2412m",
		"www.ebay.com//2": "",
		"buy.net//7":      "s24f350",
	}
	titles := map[string]string{
		"www.ebay.com//1": "Dell U2412M 24\" Monitor",
		"buy.net//7":      "Samsung S24F350",
	}
	if err := db.InsertLabels(runID, labels, titles); err != nil {
		t.Fatalf("InsertLabels() error = %v", err)
	}

	got, err := db.GetRunLabels(runID)
	if err != nil {
		t.Fatalf("GetRunLabels() error = %v", err)
	}
	if len(got) != 3 || got["buy.net//7"] != "s24f350" {
		t.Errorf("GetRunLabels() = %v", got)
	}

	l, err := db.GetItemLabel("www.ebay.com//2")
	if err != nil {
		t.Fatalf("GetItemLabel() error = %v", err)
	}
	if l.Source != "www.ebay.com" {
		t.Errorf("Source = %q, want www.ebay.com", l.Source)
	}
	if l.PageTitle.Valid {
		t.Errorf("PageTitle = %q, want NULL", l.PageTitle.String)
	}
}

func TestGetItemLabel_LatestRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tests := []struct {
		name  string
		label string
	}{
		{name: "first run", label: "u2412m dell"},
		{name: "second run", label: "u2412m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runID, err := db.InsertRun("data", 1, 1, 0)
			if err != nil {
				t.Fatalf("InsertRun() error = %v", err)
			}
			if err := db.InsertLabels(runID, map[string]string{"x//1": tt.label}, nil); err != nil {
				t.Fatalf("InsertLabels() error = %v", err)
			}

			l, err := db.GetItemLabel("x//1")
			if err != nil {
				t.Fatalf("GetItemLabel() error = %v", err)
			}
			if l.Label != tt.label || l.RunID != runID {
				t.Errorf("GetItemLabel() = %+v, want label %q from run %d", l, tt.label, runID)
			}
		})
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 || runs[0].RunID < runs[1].RunID {
		t.Errorf("ListRuns() = %+v, want 2 runs newest first", runs)
	}
}

func TestGetItemLabel_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.GetItemLabel("nope//1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItemLabel() error = %v, want ErrNotFound", err)
	}
}
