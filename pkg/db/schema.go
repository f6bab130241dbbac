package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- One row per analysed document
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    mode TEXT NOT NULL,            -- url, markup, file
    title TEXT,
    excerpt TEXT,
    site_name TEXT,
    byline TEXT,
    distinct_words INTEGER NOT NULL DEFAULT 0,
    total_words INTEGER NOT NULL DEFAULT 0,
    has_keywords BOOLEAN NOT NULL DEFAULT 0,
    external_links INTEGER NOT NULL DEFAULT 0,
    analyzed_at TEXT NOT NULL      -- RFC 3339, UTC, fixed-width fraction
);

CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);
CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);

-- Ranked words kept for each analysis (top N only)
CREATE TABLE IF NOT EXISTS analysis_words (
    analysis_id INTEGER NOT NULL,
    rank INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (analysis_id, rank),
    FOREIGN KEY (analysis_id) REFERENCES analyses(analysis_id) ON DELETE CASCADE
);

-- Declared meta keywords and their counts
CREATE TABLE IF NOT EXISTS analysis_keywords (
    analysis_id INTEGER NOT NULL,
    keyword TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (analysis_id, keyword),
    FOREIGN KEY (analysis_id) REFERENCES analyses(analysis_id) ON DELETE CASCADE
);
`
