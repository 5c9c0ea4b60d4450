// ABOUTME: SQLite database schema for snippet storage
// ABOUTME: One row per snippet document with its embedding stored as a BLOB
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Snippet documents with their document-level embedding vectors.
-- The type column lets other record kinds share the table without
-- appearing in snippet listings or similarity search.
CREATE TABLE IF NOT EXISTS snippets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    project_id TEXT NOT NULL,
    code TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT 'code-snippet',
    language TEXT,
    description TEXT,
    embedding BLOB,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_snippets_project ON snippets(project_id);
CREATE INDEX IF NOT EXISTS idx_snippets_type ON snippets(type);
`
