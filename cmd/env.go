package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kwanza-labs/insights-cli/internal/analysis"
	"github.com/kwanza-labs/insights-cli/internal/docstore"
	"github.com/kwanza-labs/insights-cli/internal/filestore"
	"github.com/kwanza-labs/insights-cli/internal/ingest"
	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/narrate"
	"github.com/kwanza-labs/insights-cli/internal/registry"
	"github.com/kwanza-labs/insights-cli/pkg/narrator"
	"github.com/kwanza-labs/insights-cli/pkg/notion"
)

// analysisEnv holds the initialized store, registries and analyzer shared
// by the analyze/ingest/serve commands.
type analysisEnv struct {
	Store    docstore.Store
	Analyzer *analysis.Analyzer
	Ingest   *ingest.Service
}

// Close releases resources held by the environment.
func (e *analysisEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv sets up the document store, loads the benchmark and alias
// registries, and builds the analyzer. Callers should defer env.Close().
func initEnv(ctx context.Context) (*analysisEnv, error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	aliases, err := loadAliases()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	benchmarks, err := loadBenchmarks(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	extractor := analysis.NewExtractor(aliases)
	retriever := analysis.NewRetriever(
		store,
		filestore.NewDir(cfg.Data.Dir),
		aliases,
		extractor,
		cfg.Analysis.MaxResults,
		cfg.Analysis.MinFacts,
	)

	var opts []analysis.Option
	if cfg.Anthropic.Key != "" {
		client := narrator.NewClient(cfg.Anthropic.Key)
		svc := narrate.NewService(client, cfg.Anthropic.Model, int64(cfg.Anthropic.MaxTokens))
		opts = append(opts, analysis.WithNarrator(svc))
		zap.L().Info("narrative embellishment enabled", zap.String("model", cfg.Anthropic.Model))
	} else {
		zap.L().Debug("INSIGHTS_ANTHROPIC_KEY not set, narrative stays rule-based")
	}

	analyzer := analysis.NewAnalyzer(
		retriever,
		analysis.NewKPIEngine(benchmarks),
		analysis.NewInsightBuilder(aliases),
		aliases,
		opts...,
	)

	return &analysisEnv{
		Store:    store,
		Analyzer: analyzer,
		Ingest:   ingest.NewService(store, aliases, cfg.Ingest.Workers),
	}, nil
}

// initStore opens the configured document store backend and runs its
// migration.
func initStore(ctx context.Context) (docstore.Store, error) {
	var (
		store interface {
			docstore.Store
			Migrate(ctx context.Context) error
		}
		err error
	)

	switch cfg.Store.Driver {
	case "sqlite", "":
		store, err = docstore.NewSQLite(cfg.Store.Path)
	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, eris.New("store: postgres driver requires store.database_url")
		}
		store, err = docstore.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return store, nil
}

// loadAliases returns the company alias table, preferring the configured
// file over the compiled-in defaults.
func loadAliases() (registry.AliasTable, error) {
	if cfg.Analysis.AliasesFile == "" {
		return registry.DefaultCompanyAliases(), nil
	}
	aliases, err := registry.LoadAliasesFromFile(cfg.Analysis.AliasesFile)
	if err != nil {
		return nil, eris.Wrap(err, "load aliases file")
	}
	return aliases, nil
}

// loadBenchmarks returns the sector benchmark table: Notion when
// configured, then the configured file, then the compiled-in defaults.
func loadBenchmarks(ctx context.Context) (model.BenchmarkTable, error) {
	if cfg.Notion.Token != "" && cfg.Notion.BenchmarkDB != "" {
		client := notion.NewClient(cfg.Notion.Token)
		table, err := registry.LoadBenchmarksFromNotion(ctx, client, cfg.Notion.BenchmarkDB)
		if err != nil {
			return nil, eris.Wrap(err, "load benchmarks from notion")
		}
		return table, nil
	}
	if cfg.Analysis.BenchmarksFile != "" {
		table, err := registry.LoadBenchmarksFromFile(cfg.Analysis.BenchmarksFile)
		if err != nil {
			return nil, eris.Wrap(err, "load benchmarks file")
		}
		return table, nil
	}
	zap.L().Debug("notion not configured, using compiled-in benchmarks")
	return registry.DefaultBenchmarks(), nil
}
