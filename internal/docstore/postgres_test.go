package docstore

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_SearchBuildsOrQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "company", "url", "title", "content", "snippet", "rank"}).
		AddRow("d1", "sonangol", "", "Relatório", "Investimento de $850 milhões", "Investimento de $850 milhões", 0.61)

	mock.ExpectQuery("SELECT id, company, url, title, content").
		WithArgs("investimento | sonangol", 5).
		WillReturnRows(rows)

	store := NewPostgresWithPool(mock)
	docs, err := store.Search(context.Background(), "qual o investimento da Sonangol", 5)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "sonangol", docs[0].Company)
	assert.Equal(t, []string{"Investimento de $850 milhões"}, docs[0].Snippets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SearchEmptyQuestionSkipsQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewPostgresWithPool(mock)
	docs, err := store.Search(context.Background(), "de a em", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Index(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(pgxmock.AnyArg(), "bp", "https://example.com", "BP Angola", "conteúdo").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresWithPool(mock)
	err = store.Index(context.Background(), Document{
		Company: "bp", URL: "https://example.com", Title: "BP Angola", Content: "conteúdo",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
