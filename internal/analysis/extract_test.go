package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanza-labs/insights-cli/internal/registry"
)

func testExtractor() *Extractor {
	return NewExtractor(registry.DefaultCompanyAliases())
}

func TestExtractMonetaryAndProduction(t *testing.T) {
	text := "Investimento de $850 milhões no projeto offshore\n" +
		"Produção de 45000 bpd esperada para 2026"

	facts := testExtractor().Extract(text)

	require.Len(t, facts, 2)
	assert.Equal(t, 850.0, facts["Investimento - Investimento (USD milhões)"])
	// 45000 normalizes to 45 in thousands.
	assert.Equal(t, 45.0, facts["Produção - Produção (bpd) (em milhares)"])
}

func TestExtractSkipsShortLines(t *testing.T) {
	facts := testExtractor().Extract("$5 m\n---\n90%")

	assert.Empty(t, facts)
}

func TestExtractNoNumbersYieldsEmptySet(t *testing.T) {
	facts := testExtractor().Extract("O setor petrolífero angolano continua a crescer.")

	assert.Empty(t, facts)
}

func TestExtractCompanyContextWindow(t *testing.T) {
	text := "Relatório anual da Sonangol\n" +
		"Linha intermédia sem números relevantes\n" +
		"Capacidade: 2500 registrada no terminal"

	facts := testExtractor().Extract(text)

	// Sonangol appears two lines above the match, inside the window.
	require.Contains(t, facts, "Sonangol - Capacidade (em milhares)")
	assert.Equal(t, 2.5, facts["Sonangol - Capacidade (em milhares)"])
}

func TestExtractCapsAtTenFacts(t *testing.T) {
	// 12 distinct labels; padding lines keep each company out of its
	// neighbors' context windows.
	lines := []string{
		"Sonangol alcançou 5000 bpd",
		"Chevron alcançou 6000 bpd",
		"Azule alcançou 7000 bpd",
		"Total alcançou 8000 bpd",
		"BP alcançou 9000 bpd",
		"ANPG reporta 10000 bpd",
		"Sonangol investiu $850 milhões",
		"Chevron investiu $900 milhões",
		"Azule investiu $950 milhões",
		"Total investiu $700 milhões",
		"BP investiu $600 milhões",
		"ANPG estima reservas de 9000 mboe",
	}
	text := strings.Join(lines, "\n.\n.\n")

	facts := testExtractor().Extract(text)

	assert.Len(t, facts, maxFactsPerText)
	// The largest values survive the cap; the two smallest are dropped.
	assert.Contains(t, facts, "Azule - Investimento (USD milhões)")
	assert.NotContains(t, facts, "Sonangol - Produção (bpd) (em milhares)")
	assert.NotContains(t, facts, "Chevron - Produção (bpd) (em milhares)")
}

func TestExtractPercentage(t *testing.T) {
	facts := testExtractor().Extract("Eficiência ambiental de 85% registrada")

	require.Len(t, facts, 1)
	assert.Equal(t, 85.0, facts["Ambiente - Percentagem"])
}
