package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStore_ListFilesByPrefix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"sonangol_relatorio.txt",
		"sonangol_noticias.txt",
		"chevron_bloco0.txt",
		"sonangol_planilha.xlsx",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	store := NewDir(dir)
	paths, err := store.ListFiles("sonangol_")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "sonangol_noticias.txt"),
		filepath.Join(dir, "sonangol_relatorio.txt"),
	}, paths)
}

func TestDirStore_ListFilesMissingDir(t *testing.T) {
	store := NewDir(filepath.Join(t.TempDir(), "nope"))
	paths, err := store.ListFiles("any_")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDirStore_ReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "total_doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Produção de 45000 bpd"), 0o644))

	store := NewDir(dir)
	content, err := store.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "Produção de 45000 bpd", content)

	_, err = store.ReadText(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
