package docstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies it
// in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using Postgres full-text search.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool (used by tests).
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS documents (
	id         TEXT PRIMARY KEY,
	company    TEXT NOT NULL DEFAULT '',
	url        TEXT NOT NULL DEFAULT '',
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	tsv        TSVECTOR GENERATED ALWAYS AS (
		to_tsvector('portuguese', title || ' ' || content)
	) STORED,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_documents_tsv ON documents USING GIN (tsv);
CREATE INDEX IF NOT EXISTS idx_documents_company ON documents(company);
`

// Migrate creates the documents table and its full-text index.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Index(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (id, company, url, title, content) VALUES ($1, $2, $3, $4, $5)`,
		doc.ID, doc.Company, doc.URL, doc.Title, doc.Content,
	)
	return eris.Wrap(err, "postgres: index document")
}

// Search runs a ranked full-text query over the indexed documents, with a
// ts_headline snippet per match. No results is not an error.
func (s *PostgresStore) Search(ctx context.Context, query string, maxResults int) ([]Document, error) {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, nil
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	tsquery := strings.Join(terms, " | ")

	rows, err := s.pool.Query(ctx, `
		SELECT id, company, url, title, content,
		       ts_headline('portuguese', content, to_tsquery('portuguese', $1),
		                   'MaxWords=24, MinWords=8, StartSel=, StopSel='),
		       ts_rank(tsv, to_tsquery('portuguese', $1))
		FROM documents
		WHERE tsv @@ to_tsquery('portuguese', $1)
		ORDER BY ts_rank(tsv, to_tsquery('portuguese', $1)) DESC
		LIMIT $2`,
		tsquery, maxResults,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: search")
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var snippet string
		if err := rows.Scan(&doc.ID, &doc.Company, &doc.URL, &doc.Title, &doc.Content, &snippet, &doc.Score); err != nil {
			return nil, eris.Wrap(err, "postgres: scan search row")
		}
		if snippet != "" {
			doc.Snippets = []string{snippet}
		}
		docs = append(docs, doc)
	}
	return docs, eris.Wrap(rows.Err(), "postgres: search rows")
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM documents`).Scan(&n)
	return n, eris.Wrap(err, "postgres: count documents")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
