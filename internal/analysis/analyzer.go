package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

// ErrInsufficientData is returned when fewer than two real facts back a
// question. The pipeline refuses to synthesize a result from nothing.
var ErrInsufficientData = eris.New("analysis: insufficient real data for this question")

// confidenceScore is fixed for rule-based analysis over verified data.
const confidenceScore = 0.75

// minFactsForAnalysis is the floor below which no result is produced.
const minFactsForAnalysis = 2

// Narrator optionally rewrites the rule-generated narrative for fluency.
// Implementations must not introduce numbers absent from the input.
type Narrator interface {
	Embellish(ctx context.Context, narrative model.Narrative, facts model.FactSet) (model.Narrative, error)
}

// recommender is satisfied by Recommender.
type recommender interface {
	Recommend(category model.Category, facts model.FactSet, kpis model.KPISet, trends model.TrendSet) []model.Recommendation
}

// Analyzer is the pipeline orchestrator. Stages after retrieval are
// individually recovered: a stage failure substitutes that stage's
// documented default and the run continues.
type Analyzer struct {
	retriever *Retriever
	kpis      *KPIEngine
	insights  *InsightBuilder
	trends    *TrendAnalyzer
	recs      recommender
	viz       *Visualizer
	aliases   registry.AliasTable
	narrator  Narrator
}

// Option configures optional Analyzer collaborators.
type Option func(*Analyzer)

// WithNarrator enables LLM embellishment of the narrative block.
func WithNarrator(n Narrator) Option {
	return func(a *Analyzer) { a.narrator = n }
}

func NewAnalyzer(retriever *Retriever, kpis *KPIEngine, insights *InsightBuilder, aliases registry.AliasTable, opts ...Option) *Analyzer {
	a := &Analyzer{
		retriever: retriever,
		kpis:      kpis,
		insights:  insights,
		trends:    NewTrendAnalyzer(),
		recs:      NewRecommender(),
		viz:       NewVisualizer(),
		aliases:   aliases,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze answers a free-text question with a result built exclusively
// from extracted real data. It returns ErrInsufficientData when fewer
// than two facts support the question.
func (a *Analyzer) Analyze(ctx context.Context, question string) (*model.AnalysisResult, error) {
	started := time.Now()
	category := Classify(question, a.aliases)
	zap.L().Info("analyze: question classified",
		zap.String("category", string(category)),
	)

	facts := a.retriever.Retrieve(ctx, question)
	if len(facts) < minFactsForAnalysis {
		zap.L().Warn("analyze: refusing to answer without real data",
			zap.Int("facts", len(facts)),
			zap.Int("required", minFactsForAnalysis),
		)
		return nil, eris.Wrapf(ErrInsufficientData, "analyze: %d facts found, %d required", len(facts), minFactsForAnalysis)
	}

	result := &model.AnalysisResult{
		Category: category,
		Facts:    facts,
	}
	result.FinancialFacts, result.ProductionFacts = splitFacts(facts)

	run := a.stageRunner(result)

	run("kpis", func() error {
		result.KPIs = a.kpis.Derive(category, facts)
		return nil
	}, func() {
		result.KPIs = model.KPISet{}
	})

	var keyInsights []string
	run("insights", func() error {
		keyInsights = a.insights.Insights(facts)
		return nil
	}, func() {
		keyInsights = nil
	})

	run("trends", func() error {
		result.Trends = a.trends.Analyze(category, facts)
		return nil
	}, func() {
		result.Trends = model.TrendSet{}
	})

	run("recommendations", func() error {
		result.Recommendations = a.recs.Recommend(category, facts, result.KPIs, result.Trends)
		return nil
	}, func() {
		result.Recommendations = []model.Recommendation{fallbackRecommendation()}
	})

	run("visualization", func() error {
		result.Visualization = a.viz.Configure(facts)
		return nil
	}, func() {
		result.Visualization = DefaultConfig()
	})

	run("narrative", func() error {
		result.Narrative = a.insights.Narrative(category, facts, keyInsights)
		if a.narrator == nil {
			return nil
		}
		embellished, err := a.narrator.Embellish(ctx, result.Narrative, facts)
		if err != nil {
			// Rule-based text stands on its own; log and keep it.
			zap.L().Warn("analyze: narrative embellishment failed, keeping rule-based text", zap.Error(err))
			return nil
		}
		result.Narrative = embellished
		return nil
	}, func() {
		result.Narrative = model.Narrative{
			Title:       narrativeTitles[model.CategoryComprehensive],
			Subtitle:    narrativeSubtitles[model.CategoryComprehensive],
			KeyInsights: keyInsights,
		}
	})

	result.Metadata = model.Metadata{
		Question:        question,
		Timestamp:       time.Now().UTC(),
		ConfidenceScore: confidenceScore,
		DataPoints:      len(facts),
		DataSource:      model.DataSourceScraped,
	}

	zap.L().Info("analyze: complete",
		zap.Int("data_points", len(facts)),
		zap.Duration("duration", time.Since(started)),
	)
	return result, nil
}

// stageRunner returns a closure that runs one stage, records its outcome
// on the result, and substitutes the stage default on error or panic.
func (a *Analyzer) stageRunner(result *model.AnalysisResult) func(name string, fn func() error, fallback func()) {
	return func(name string, fn func() error, fallback func()) {
		stage := model.StageResult{Name: name, Status: model.StageComplete}
		started := time.Now()

		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = eris.New(fmt.Sprintf("analyze: stage %s panicked: %v", name, r))
				}
			}()
			return fn()
		}()

		stage.Duration = time.Since(started).Milliseconds()
		if err != nil {
			stage.Status = model.StageDefaulted
			stage.Error = err.Error()
			zap.L().Warn("analyze: stage failed, using default",
				zap.String("stage", name),
				zap.Error(err),
			)
			fallback()
		}
		result.Stages = append(result.Stages, stage)
	}
}
