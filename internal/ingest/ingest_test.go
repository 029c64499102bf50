package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/kwanza-labs/insights-cli/internal/docstore"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

// memStore collects indexed documents for inspection.
type memStore struct {
	mu   sync.Mutex
	docs []docstore.Document
	fail bool
}

func (m *memStore) Index(_ context.Context, doc docstore.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return eris.New("index unavailable")
	}
	m.docs = append(m.docs, doc)
	return nil
}

func (m *memStore) Search(context.Context, string, int) ([]docstore.Document, error) {
	return nil, nil
}

func (m *memStore) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs), nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) byTitle(title string) (docstore.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc.Title == title {
			return doc, true
		}
	}
	return docstore.Document{}, false
}

func TestIngestDirTextFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sonangol_relatorio.txt"),
		[]byte("Investimento de $850 milhões no bloco 18"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.md"),
		[]byte("ignorado"), 0o644))

	store := &memStore{}
	svc := NewService(store, registry.DefaultCompanyAliases(), 2)

	result, err := svc.IngestDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, Result{Indexed: 1, Skipped: 1}, result)

	doc, ok := store.byTitle("sonangol_relatorio")
	require.True(t, ok)
	assert.Equal(t, "sonangol", doc.Company)
	assert.NotEmpty(t, doc.ID)
	assert.Contains(t, doc.Content, "$850 milhões")
}

func TestIngestDirFlattensXLSX(t *testing.T) {
	dir := t.TempDir()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Dados")
	require.NoError(t, err)
	row := sheet.AddRow()
	row.AddCell().Value = "Produção"
	row.AddCell().Value = "45000 bpd"
	require.NoError(t, f.Save(filepath.Join(dir, "producao.xlsx")))

	store := &memStore{}
	svc := NewService(store, registry.DefaultCompanyAliases(), 2)

	result, err := svc.IngestDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Indexed)

	doc, ok := store.byTitle("producao")
	require.True(t, ok)
	assert.Equal(t, "Produção 45000 bpd\n", doc.Content)
}

func TestIngestDirCountsFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vazio.txt"), []byte("  \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.txt"), []byte("conteúdo válido aqui"), 0o644))

	result, err := NewService(&memStore{}, registry.DefaultCompanyAliases(), 1).
		IngestDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, Result{Indexed: 1, Failed: 1}, result)
}

func TestIngestDirMissingSourceDir(t *testing.T) {
	_, err := NewService(&memStore{}, registry.DefaultCompanyAliases(), 1).
		IngestDir(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}
