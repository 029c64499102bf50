package model

import "time"

// ChartType is a suggested chart rendering for the visualization layer.
type ChartType string

const (
	ChartBar   ChartType = "bar"
	ChartPie   ChartType = "pie"
	ChartDonut ChartType = "donut"
)

// Annotation is a callout the visualization layer may render alongside
// a chart.
type Annotation struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Position string `json:"position"`
}

// VisualizationConfig is a typed chart recommendation. No rendering happens
// in this repository; a calling layer turns this into actual charts.
type VisualizationConfig struct {
	ChartTypes  []ChartType  `json:"chart_types"`
	Colors      []string     `json:"colors"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Narrative holds the rule-generated prose blocks of an analysis. An LLM
// may optionally rewrite these for fluency, but the rule-based text is
// always complete on its own.
type Narrative struct {
	Title               string   `json:"title"`
	Subtitle            string   `json:"subtitle"`
	ExecutiveSummary    string   `json:"executive_summary"`
	KeyInsights         []string `json:"key_insights"`
	CompetitiveAnalysis string   `json:"competitive_analysis,omitempty"`
	RiskAssessment      []string `json:"risk_assessment,omitempty"`
}

// StageStatus tracks the outcome of one pipeline stage.
type StageStatus string

const (
	StageComplete  StageStatus = "complete"
	StageDefaulted StageStatus = "defaulted"
)

// StageResult records how a single analysis stage finished. Stages that
// fail are substituted with their documented default and marked defaulted.
type StageResult struct {
	Name     string      `json:"name"`
	Status   StageStatus `json:"status"`
	Duration int64       `json:"duration_ms"`
	Error    string      `json:"error,omitempty"`
}

// Metadata describes the provenance of an analysis run.
type Metadata struct {
	Question        string    `json:"question"`
	Timestamp       time.Time `json:"timestamp"`
	ConfidenceScore float64   `json:"confidence_score"`
	DataPoints      int       `json:"data_points"`
	DataSource      string    `json:"data_source"`
}

// DataSourceScraped tags results built exclusively from extracted real
// data. It is the only data-source value this pipeline ever emits.
const DataSourceScraped = "real_scraped_data"

// AnalysisResult is the root aggregate returned by the orchestrator.
// It is created fresh per request and never mutated after return.
type AnalysisResult struct {
	Category        Category            `json:"analysis_category"`
	Facts           FactSet             `json:"data"`
	FinancialFacts  FactSet             `json:"financial_data"`
	ProductionFacts FactSet             `json:"production_data"`
	KPIs            KPISet              `json:"kpis"`
	Trends          TrendSet            `json:"trends"`
	Recommendations []Recommendation    `json:"recommendations"`
	Visualization   VisualizationConfig `json:"visualization_config"`
	Narrative       Narrative           `json:"narrative"`
	Stages          []StageResult       `json:"stages,omitempty"`
	Metadata        Metadata            `json:"metadata"`
}
