package registry

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/pkg/notion"
)

// LoadBenchmarksFromNotion queries the Benchmark Registry database for all
// active rows and merges them over the default table. Rows the parser
// cannot read are skipped with a warning rather than failing the load.
func LoadBenchmarksFromNotion(ctx context.Context, client notion.Client, dbID string) (model.BenchmarkTable, error) {
	filter := &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Status",
			Status: &notionapi.StatusFilterCondition{
				Equals: "Active",
			},
		},
	}

	pages, err := notion.QueryAll(ctx, client, dbID, filter)
	if err != nil {
		return nil, eris.Wrap(err, "registry: load benchmark registry")
	}

	table := DefaultBenchmarks()
	for _, p := range pages {
		metric, bench, err := parseBenchmarkPage(p)
		if err != nil {
			zap.L().Warn("registry: skipping malformed benchmark page",
				zap.String("page_id", string(p.ID)),
				zap.Error(err),
			)
			continue
		}
		table[metric] = bench
	}

	return table, nil
}

func parseBenchmarkPage(p notionapi.Page) (string, model.Benchmark, error) {
	var metric string
	var bench model.Benchmark

	if prop, ok := p.Properties["Metric"]; ok {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			metric = plainText(tp.Title)
		}
	}
	if metric == "" {
		return "", bench, eris.New("registry: benchmark page has no metric name")
	}

	bench.Target = numberProp(p, "Target")
	bench.WorldClass = numberProp(p, "WorldClass")
	bench.Average = numberProp(p, "Average")

	return metric, bench, nil
}

func numberProp(p notionapi.Page, name string) float64 {
	if prop, ok := p.Properties[name]; ok {
		if np, ok := prop.(*notionapi.NumberProperty); ok {
			return np.Number
		}
	}
	return 0
}

func plainText(rich []notionapi.RichText) string {
	var out string
	for _, rt := range rich {
		out += rt.PlainText
	}
	return out
}
