package model

import "strings"

// Category is the fixed-taxonomy topic assigned to a question. It selects
// which rule tables apply in the downstream analysis stages.
type Category string

const (
	CategoryMarketAnalysis        Category = "market_analysis"
	CategoryFinancialPerformance  Category = "financial_performance"
	CategoryOperationalEfficiency Category = "operational_efficiency"
	CategoryStrategicAnalysis     Category = "strategic_analysis"
	CategoryRiskAssessment        Category = "risk_assessment"
	CategoryRegulatoryCompliance  Category = "regulatory_compliance"
	CategorySustainability        Category = "sustainability"
	CategoryTechnologyInnovation  Category = "technology_innovation"
	CategoryLeadership            Category = "leadership"
	CategoryProjects              Category = "projects"
	CategoryTrendAnalysis         Category = "trend_analysis"
	CategoryComprehensive         Category = "comprehensive_analysis"
)

const companyCategoryPrefix = "company_"

// CompanyCategory builds the per-company category for a recognized company
// key, e.g. "sonangol" -> "company_sonangol".
func CompanyCategory(key string) Category {
	return Category(companyCategoryPrefix + strings.ToLower(key))
}

// IsCompany reports whether the category targets a single company, and if
// so returns the company key.
func (c Category) IsCompany() (string, bool) {
	s := string(c)
	if !strings.HasPrefix(s, companyCategoryPrefix) {
		return "", false
	}
	return strings.TrimPrefix(s, companyCategoryPrefix), true
}

func (c Category) String() string { return string(c) }
