// Package registry loads the static reference tables the analysis pipeline
// depends on: sector benchmarks and company alias tables. Defaults are
// compiled in; a YAML file or a Notion database can override them.
package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/kwanza-labs/insights-cli/internal/model"
)

// DefaultBenchmarks returns the compiled-in sector benchmark table.
// Values reflect published upstream oil & gas reference ranges.
func DefaultBenchmarks() model.BenchmarkTable {
	return model.BenchmarkTable{
		"production_efficiency":      {Target: 85, WorldClass: 95, Average: 78},
		"operational_cost_ratio":     {Target: 30, WorldClass: 25, Average: 35},
		"safety_incident_rate":       {Target: 0.5, WorldClass: 0.1, Average: 1.2},
		"environmental_compliance":   {Target: 95, WorldClass: 99, Average: 92},
		"equipment_availability":     {Target: 90, WorldClass: 98, Average: 85},
		"reserves_replacement_ratio": {Target: 100, WorldClass: 150, Average: 80},
		"roe":                        {Target: 15, WorldClass: 20, Average: 12},
		"roa":                        {Target: 8, WorldClass: 12, Average: 6},
		"debt_to_equity":             {Target: 40, WorldClass: 30, Average: 55},
	}
}

// LoadBenchmarksFromFile reads a YAML benchmark table and merges it over
// the defaults. Metrics present in the file replace the default entry;
// metrics absent from the file keep their default.
func LoadBenchmarksFromFile(path string) (model.BenchmarkTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read benchmarks file")
	}

	var loaded map[string]model.Benchmark
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, eris.Wrap(err, "registry: unmarshal benchmarks file")
	}

	table := DefaultBenchmarks()
	for metric, b := range loaded {
		table[metric] = b
	}
	return table, nil
}
