package docstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite with an FTS5 index.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given DSN and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	company    TEXT NOT NULL DEFAULT '',
	url        TEXT NOT NULL DEFAULT '',
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
	title, content, content='documents', content_rowid='rowid'
);

CREATE TRIGGER IF NOT EXISTS documents_ai AFTER INSERT ON documents BEGIN
	INSERT INTO documents_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
END;

CREATE TRIGGER IF NOT EXISTS documents_ad AFTER DELETE ON documents BEGIN
	INSERT INTO documents_fts(documents_fts, rowid, title, content)
	VALUES ('delete', old.rowid, old.title, old.content);
END;

CREATE INDEX IF NOT EXISTS idx_documents_company ON documents(company);
`

// Migrate creates the documents table and its FTS5 index.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Index(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, company, url, title, content) VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Company, doc.URL, doc.Title, doc.Content,
	)
	return eris.Wrap(err, "sqlite: index document")
}

// Search runs an FTS5 match over the indexed documents. The free-text
// question is reduced to OR-joined terms; no results is not an error.
func (s *SQLiteStore) Search(ctx context.Context, query string, maxResults int) ([]Document, error) {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	match := strings.Join(quoted, " OR ")

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.company, d.url, d.title, d.content,
		       snippet(documents_fts, 1, '', '', '...', 24),
		       bm25(documents_fts)
		FROM documents_fts
		JOIN documents d ON d.rowid = documents_fts.rowid
		WHERE documents_fts MATCH ?
		ORDER BY bm25(documents_fts)
		LIMIT ?`,
		match, maxResults,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: search")
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var snippet string
		var rank float64
		if err := rows.Scan(&doc.ID, &doc.Company, &doc.URL, &doc.Title, &doc.Content, &snippet, &rank); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan search row")
		}
		if snippet != "" {
			doc.Snippets = []string{snippet}
		}
		// bm25 returns lower-is-better; negate so higher score = better.
		doc.Score = -rank
		docs = append(docs, doc)
	}
	return docs, eris.Wrap(rows.Err(), "sqlite: search rows")
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n)
	return n, eris.Wrap(err, "sqlite: count documents")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
