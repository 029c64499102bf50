package model

// Benchmark holds static reference thresholds for one sector metric.
type Benchmark struct {
	Target     float64 `json:"target" yaml:"target"`
	WorldClass float64 `json:"world_class" yaml:"world_class"`
	Average    float64 `json:"average" yaml:"average"`
}

// BenchmarkTable maps metric names to their sector benchmarks. Loaded once
// at process start and read-only during requests.
type BenchmarkTable map[string]Benchmark

// Rate classifies a current value against the benchmark. Some metrics are
// better when lower (cost ratios, incident rates); for those the benchmark
// carries WorldClass < Target and the comparison is inverted.
func (b Benchmark) Rate(current float64) KPIStatus {
	if b.WorldClass < b.Target {
		// Lower is better.
		switch {
		case current <= b.WorldClass:
			return StatusExcellent
		case current <= b.Target:
			return StatusGood
		case current <= b.Average:
			return StatusModerate
		default:
			return StatusNeedsImprovement
		}
	}
	switch {
	case current >= b.WorldClass:
		return StatusExcellent
	case current >= b.Target:
		return StatusGood
	case current >= b.Average:
		return StatusModerate
	default:
		return StatusNeedsImprovement
	}
}

// Rate classifies current against the named metric's benchmark, returning
// StatusUnknown when the table has no entry for the metric.
func (t BenchmarkTable) Rate(metric string, current float64) KPIStatus {
	b, ok := t[metric]
	if !ok {
		return StatusUnknown
	}
	return b.Rate(current)
}
