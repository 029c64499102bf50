package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestSQLiteStore_IndexAndSearch(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, store.Index(ctx, Document{
		Company: "sonangol",
		Title:   "Relatório anual Sonangol",
		Content: "A Sonangol anunciou investimento de $850 milhões em exploração offshore.",
	}))
	require.NoError(t, store.Index(ctx, Document{
		Company: "chevron",
		Title:   "Chevron produção",
		Content: "Produção de 45000 bpd no Bloco 0 durante 2024.",
	}))

	docs, err := store.Search(ctx, "Qual o investimento da Sonangol?", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "sonangol", docs[0].Company)
	assert.NotEmpty(t, docs[0].Snippets)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSQLiteStore_SearchNoResults(t *testing.T) {
	store := newTestSQLite(t)

	docs, err := store.Search(context.Background(), "refinaria inexistente", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSQLiteStore_SearchEmptyQuestion(t *testing.T) {
	store := newTestSQLite(t)

	docs, err := store.Search(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
