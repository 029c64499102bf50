package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanza-labs/insights-cli/internal/docstore"
	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

func testAnalyzer(docs docstore.Store, opts ...Option) *Analyzer {
	aliases := registry.DefaultCompanyAliases()
	retriever := NewRetriever(docs, &fakeFiles{}, aliases, NewExtractor(aliases), 10, minFactsForAnalysis)
	return NewAnalyzer(retriever, NewKPIEngine(registry.DefaultBenchmarks()), NewInsightBuilder(aliases), aliases, opts...)
}

func TestAnalyzeRefusesWithoutData(t *testing.T) {
	analyzer := testAnalyzer(&fakeDocs{})

	result, err := analyzer.Analyze(context.Background(), "Qual o investimento no setor?")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	assert.Nil(t, result)
}

func TestAnalyzeRefusesWithSingleFact(t *testing.T) {
	docs := &fakeDocs{results: []docstore.Document{{
		Content: "Investimento de $850 milhões aprovado",
	}}}

	_, err := testAnalyzer(docs).Analyze(context.Background(), "investimentos")

	assert.True(t, errors.Is(err, ErrInsufficientData))
}

func TestAnalyzeFullPipeline(t *testing.T) {
	docs := &fakeDocs{results: []docstore.Document{{
		Title: "Relatório do setor",
		Content: "Investimento de $850 milhões no projeto\n" +
			"Produção de 45000 bpd esperada\n" +
			"Eficiência de 85% registrada",
	}}}

	result, err := testAnalyzer(docs).Analyze(context.Background(), "Qual o investimento no setor petrolífero?")

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, model.CategoryFinancialPerformance, result.Category)
	assert.Len(t, result.Facts, 3)
	assert.NotEmpty(t, result.FinancialFacts)
	assert.NotEmpty(t, result.ProductionFacts)

	assert.Contains(t, result.KPIs, "total_investment")
	assert.NotEmpty(t, result.Trends.LongTerm)
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.Visualization.ChartTypes)
	assert.NotEmpty(t, result.Narrative.Title)
	assert.NotEmpty(t, result.Narrative.ExecutiveSummary)

	for _, stage := range result.Stages {
		assert.Equal(t, model.StageComplete, stage.Status, stage.Name)
	}

	meta := result.Metadata
	assert.Equal(t, model.DataSourceScraped, meta.DataSource)
	assert.Equal(t, confidenceScore, meta.ConfidenceScore)
	assert.Equal(t, 3, meta.DataPoints)
	assert.False(t, meta.Timestamp.IsZero())
}

func TestAnalyzeFinancialQuestionGetsFinancialRecommendation(t *testing.T) {
	// A document with no financial figures must not redirect the
	// category recommendation away from the question's financial focus.
	docs := &fakeDocs{results: []docstore.Document{{
		Content: "Produção de 45000 bpd no bloco\nReservas de 9000 mboe estimadas",
	}}}

	result, err := testAnalyzer(docs).Analyze(context.Background(), "Qual o investimento no setor?")

	require.NoError(t, err)
	assert.Equal(t, model.CategoryFinancialPerformance, result.Category)

	categories := make([]string, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		categories = append(categories, rec.Category)
	}
	assert.Contains(t, categories, "Financeiro")
	assert.NotContains(t, categories, "Operacional")
}

// panickyRecommender fails the recommendations stage unconditionally.
type panickyRecommender struct{}

func (panickyRecommender) Recommend(model.Category, model.FactSet, model.KPISet, model.TrendSet) []model.Recommendation {
	panic("recommendation rules misconfigured")
}

func TestAnalyzeRecommendationStageFailureYieldsGenericFallback(t *testing.T) {
	docs := &fakeDocs{results: []docstore.Document{{
		Content: "Investimento de $850 milhões\nProdução de 45000 bpd",
	}}}
	analyzer := testAnalyzer(docs)
	analyzer.recs = panickyRecommender{}

	result, err := analyzer.Analyze(context.Background(), "investimentos")

	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Geral", result.Recommendations[0].Category)
	assert.Equal(t, "Continuar monitoramento baseado em dados reais do setor", result.Recommendations[0].Text)

	var status model.StageStatus
	for _, stage := range result.Stages {
		if stage.Name == "recommendations" {
			status = stage.Status
		}
	}
	assert.Equal(t, model.StageDefaulted, status)
}

// stubNarrator rewrites the executive summary and fails on demand.
type stubNarrator struct {
	fail bool
}

func (s *stubNarrator) Embellish(_ context.Context, n model.Narrative, _ model.FactSet) (model.Narrative, error) {
	if s.fail {
		return model.Narrative{}, errors.New("llm unavailable")
	}
	n.ExecutiveSummary = "Resumo reescrito"
	return n, nil
}

func TestAnalyzeNarratorRewrites(t *testing.T) {
	docs := &fakeDocs{results: []docstore.Document{{
		Content: "Investimento de $850 milhões\nProdução de 45000 bpd",
	}}}

	result, err := testAnalyzer(docs, WithNarrator(&stubNarrator{})).Analyze(context.Background(), "investimentos")

	require.NoError(t, err)
	assert.Equal(t, "Resumo reescrito", result.Narrative.ExecutiveSummary)
}

func TestAnalyzeNarratorFailureKeepsRuleText(t *testing.T) {
	docs := &fakeDocs{results: []docstore.Document{{
		Content: "Investimento de $850 milhões\nProdução de 45000 bpd",
	}}}

	result, err := testAnalyzer(docs, WithNarrator(&stubNarrator{fail: true})).Analyze(context.Background(), "investimentos")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Narrative.ExecutiveSummary)
	// Embellishment failure is tolerated, not surfaced as a stage default.
	for _, stage := range result.Stages {
		assert.Equal(t, model.StageComplete, stage.Status, stage.Name)
	}
}
