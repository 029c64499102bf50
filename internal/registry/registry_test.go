package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanza-labs/insights-cli/internal/model"
)

func TestDefaultBenchmarks_KnownMetrics(t *testing.T) {
	table := DefaultBenchmarks()
	assert.Equal(t, model.Benchmark{Target: 85, WorldClass: 95, Average: 78}, table["production_efficiency"])
	assert.Contains(t, table, "roe")
	assert.Contains(t, table, "debt_to_equity")
}

func TestLoadBenchmarksFromFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	content := "roe:\n  target: 18\n  world_class: 25\n  average: 14\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadBenchmarksFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.Benchmark{Target: 18, WorldClass: 25, Average: 14}, table["roe"])
	// Untouched defaults survive.
	assert.Equal(t, model.Benchmark{Target: 8, WorldClass: 12, Average: 6}, table["roa"])
}

func TestLoadBenchmarksFromFile_Missing(t *testing.T) {
	_, err := LoadBenchmarksFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestAliasTable_Identify(t *testing.T) {
	aliases := DefaultCompanyAliases()

	found := aliases.Identify("Qual o investimento da Sonangol e da Azule Energy?")
	assert.Equal(t, []string{"azule", "sonangol"}, found)

	assert.Empty(t, aliases.Identify("pergunta sem empresas"))
}

func TestAliasTable_Matches(t *testing.T) {
	aliases := DefaultCompanyAliases()
	assert.True(t, aliases.Matches("total", "TotalEnergies anunciou novo projeto"))
	assert.False(t, aliases.Matches("total", "Chevron anunciou novo projeto"))
}

func TestAliasTable_MatchesOnWordBoundary(t *testing.T) {
	aliases := DefaultCompanyAliases()
	// "bp" inside "bpd" is a unit, not the company.
	assert.False(t, aliases.Matches("bp", "Produção de 45000 bpd prevista"))
	assert.True(t, aliases.Matches("bp", "A BP investiu no bloco 18"))
}

func TestLoadAliasesFromFile_EmptyFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	aliases, err := LoadAliasesFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompanyAliases(), aliases)
}
