package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- Page metadata: page index -> published resource name
CREATE TABLE IF NOT EXISTS page_metadata (
    page_index INTEGER PRIMARY KEY,
    filename TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Page status: sender/receiver/content per page, joined on page_index.
-- No foreign key: a status row may exist without metadata and vice versa.
CREATE TABLE IF NOT EXISTS page_status (
    status_id INTEGER PRIMARY KEY AUTOINCREMENT,
    page_index INTEGER NOT NULL,
    sender TEXT NOT NULL,
    receiver TEXT NOT NULL,
    content TEXT NOT NULL,
    status BOOLEAN NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_page_status_page ON page_status(page_index);
`
