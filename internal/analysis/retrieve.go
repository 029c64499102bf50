package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/kwanza-labs/insights-cli/internal/docstore"
	"github.com/kwanza-labs/insights-cli/internal/filestore"
	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

// maxFilesPerCompany bounds the fallback file scan per company.
const maxFilesPerCompany = 3

// Retriever obtains real facts for a question: first from the indexed
// content store, then by scanning per-company text files. Retrieval never
// returns an error; unreachable sources simply contribute zero facts.
type Retriever struct {
	docs       docstore.Store
	files      filestore.Store
	aliases    registry.AliasTable
	extractor  *Extractor
	maxResults int
	minFacts   int
}

// NewRetriever wires a Retriever from its collaborators. maxResults bounds
// the content-store query; minFacts is the threshold below which the
// fallback stage runs (and below which the orchestrator reports
// insufficient data).
func NewRetriever(docs docstore.Store, files filestore.Store, aliases registry.AliasTable, extractor *Extractor, maxResults, minFacts int) *Retriever {
	if maxResults <= 0 {
		maxResults = 10
	}
	if minFacts <= 0 {
		minFacts = 2
	}
	return &Retriever{
		docs:       docs,
		files:      files,
		aliases:    aliases,
		extractor:  extractor,
		maxResults: maxResults,
		minFacts:   minFacts,
	}
}

// Retrieve runs both stages. The indexed search stage wins outright when
// it alone yields at least minFacts facts; otherwise the file-scan facts
// are merged in. The result may still hold fewer than minFacts entries;
// deciding what that means is the orchestrator's job.
func (r *Retriever) Retrieve(ctx context.Context, question string) model.FactSet {
	facts := r.searchStage(ctx, question)
	if len(facts) >= r.minFacts {
		return facts
	}

	zap.L().Info("retrieve: indexed search insufficient, scanning company files",
		zap.Int("facts_so_far", len(facts)),
	)
	facts.Merge(r.fileScanStage(question))
	return facts
}

// searchStage queries the content store with the raw question and extracts
// facts from each hit's content and highlighted snippets.
func (r *Retriever) searchStage(ctx context.Context, question string) model.FactSet {
	facts := model.FactSet{}
	if r.docs == nil {
		return facts
	}

	results, err := r.docs.Search(ctx, question, r.maxResults)
	if err != nil {
		zap.L().Warn("retrieve: content store search failed, treating as empty",
			zap.Error(err),
		)
		return facts
	}

	for _, doc := range results {
		facts.Merge(r.extractor.Extract(doc.Content))
		for _, snippet := range doc.Snippets {
			facts.Merge(r.extractor.Extract(snippet))
		}
	}

	zap.L().Debug("retrieve: search stage complete",
		zap.Int("documents", len(results)),
		zap.Int("facts", len(facts)),
	)
	return facts
}

// fileScanStage extracts facts from the pre-fetched text files of the
// companies referenced in the question, or of all known companies when
// the question names none. Labels are prefixed with the company name to
// avoid collisions across companies.
func (r *Retriever) fileScanStage(question string) model.FactSet {
	facts := model.FactSet{}
	if r.files == nil {
		return facts
	}

	companies := r.aliases.Identify(question)
	if len(companies) == 0 {
		companies = r.aliases.Keys()
	}

	for _, company := range companies {
		paths, err := r.files.ListFiles(company + "_")
		if err != nil {
			zap.L().Warn("retrieve: listing company files failed",
				zap.String("company", company),
				zap.Error(err),
			)
			continue
		}
		if len(paths) > maxFilesPerCompany {
			paths = paths[:maxFilesPerCompany]
		}

		for _, path := range paths {
			content, err := r.files.ReadText(path)
			if err != nil {
				zap.L().Warn("retrieve: reading company file failed",
					zap.String("path", path),
					zap.Error(err),
				)
				continue
			}
			for label, value := range r.extractor.Extract(content) {
				if !r.aliases.Matches(company, label) {
					label = r.extractor.titler.String(company) + " - " + label
				}
				facts[label] = value
			}
		}
	}

	zap.L().Debug("retrieve: file scan stage complete",
		zap.Int("companies", len(companies)),
		zap.Int("facts", len(facts)),
	)
	return facts
}
