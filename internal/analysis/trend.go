package analysis

import (
	"fmt"

	"github.com/kwanza-labs/insights-cli/internal/model"
)

var structuralTrends = []string{
	"Digitalização crescente do setor petrolífero",
	"Foco em sustentabilidade e ESG",
	"Otimização de custos operacionais",
}

// TrendAnalyzer derives trend statements across three horizons from the
// dispersion and concentration of extracted values. It never projects
// figures that are not present in the facts.
type TrendAnalyzer struct{}

func NewTrendAnalyzer() *TrendAnalyzer {
	return &TrendAnalyzer{}
}

// Analyze builds the trend set for a category's facts. Long-term
// structural trends are always present; data-derived patterns require
// enough facts to support them, and the investment and production
// medium-term statements belong to the financial and operational
// categories respectively.
func (t *TrendAnalyzer) Analyze(category model.Category, facts model.FactSet) model.TrendSet {
	trends := model.TrendSet{}

	if len(facts) >= 2 {
		sorted := facts.Sorted()
		high := sorted[0].Value
		low := sorted[len(sorted)-1].Value
		trends.Patterns = append(trends.Patterns,
			fmt.Sprintf("Valores entre %s e %s, com média de %s",
				model.FormatValue(low), model.FormatValue(high), model.FormatValue(facts.Mean())))
	}

	if len(facts) >= 3 {
		total := facts.Sum()
		if total != 0 {
			share := facts.Sorted()[0].Value / total
			switch {
			case share > 0.5:
				trends.Patterns = append(trends.Patterns, "Alta concentração: um indicador domina os valores")
			case share < 0.2:
				trends.Patterns = append(trends.Patterns, "Distribuição equilibrada entre os indicadores")
			}
		}
	}

	financial, production := splitFacts(facts)
	if category == model.CategoryFinancialPerformance && len(financial) > 0 {
		trends.Add(model.HorizonMediumTerm,
			fmt.Sprintf("Tendência de investimento: %s em média", model.FormatValue(financial.Mean())))
	}
	if category == model.CategoryOperationalEfficiency && len(production) > 0 {
		trends.Add(model.HorizonMediumTerm,
			fmt.Sprintf("Capacidade produtiva: %s em média", model.FormatValue(production.Mean())))
	}

	if category == model.CategoryMarketAnalysis && len(facts) > 0 {
		hhi := concentrationIndex(facts)
		if hhi > 2000 {
			trends.Add(model.HorizonLongTerm, "Mercado altamente concentrado - risco de monopolização")
		} else if hhi > 1500 {
			trends.Add(model.HorizonMediumTerm, "Concentração moderada - monitoramento necessário")
		}
	}

	for _, trend := range structuralTrends {
		trends.Add(model.HorizonLongTerm, trend)
	}
	return trends
}
