package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per preprocess invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    root_dir TEXT NOT NULL,
    source_count INTEGER NOT NULL DEFAULT 0,
    item_count INTEGER NOT NULL DEFAULT 0,
    error_count INTEGER NOT NULL DEFAULT 0
);

-- Labels produced by a run, keyed by "<source>//<item>"
CREATE TABLE IF NOT EXISTS item_labels (
    label_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    source TEXT NOT NULL,
    item_name TEXT NOT NULL,
    page_title TEXT,
    label TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, item_name)
);

CREATE INDEX IF NOT EXISTS idx_item_labels_item ON item_labels(item_name);
CREATE INDEX IF NOT EXISTS idx_item_labels_source ON item_labels(source);
`
