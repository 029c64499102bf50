package model

// Priority ranks a recommendation. Values follow the Portuguese-language
// reporting convention used across the sector documents.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// Recommendation is a prioritized, actionable suggestion derived from
// structural conditions on the KPI and trend results.
type Recommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Text     string   `json:"recommendation"`
	Impact   string   `json:"impact"`
}
