package model

// KPIStatus classifies a KPI value relative to its threshold or benchmark.
type KPIStatus string

const (
	StatusExcellent        KPIStatus = "excellent"
	StatusGood             KPIStatus = "good"
	StatusModerate         KPIStatus = "moderate"
	StatusWarning          KPIStatus = "warning"
	StatusHigh             KPIStatus = "high"
	StatusNeedsImprovement KPIStatus = "needs_improvement"
	StatusUnknown          KPIStatus = "unknown"
)

// KPI is a derived metric with a threshold- or benchmark-relative status.
// KPIs are recomputed on every analysis run and never persisted.
type KPI struct {
	Name         string    `json:"name"`
	CurrentValue float64   `json:"current_value"`
	TargetValue  float64   `json:"target_value,omitempty"`
	Unit         string    `json:"unit"`
	Status       KPIStatus `json:"status"`
	Benchmark    string    `json:"benchmark,omitempty"`
}

// KPISet maps KPI names to computed KPIs.
type KPISet map[string]KPI
