package analysis

import (
	"github.com/kwanza-labs/insights-cli/internal/model"
)

const maxRecommendations = 5

// Recommender derives prioritized actions from the resolved category,
// the KPI statuses and the trends. Every rule fires off computed values
// or the classified focus; no recommendation invents data.
type Recommender struct{}

func NewRecommender() *Recommender {
	return &Recommender{}
}

// categoryRecommendations holds the single canned recommendation each
// analysis focus contributes. Categories without an entry contribute none.
var categoryRecommendations = map[model.Category]model.Recommendation{
	model.CategoryFinancialPerformance: {
		Category: "Financeiro",
		Priority: model.PriorityMedium,
		Text:     "Monitorar tendências de investimento identificadas",
		Impact:   "Otimizar alocação de capital e momento dos investimentos",
	},
	model.CategoryOperationalEfficiency: {
		Category: "Operacional",
		Priority: model.PriorityMedium,
		Text:     "Analisar lacunas de desempenho identificadas nos dados",
		Impact:   "Melhorar eficiência operacional e reduzir custos",
	},
	model.CategoryMarketAnalysis: {
		Category: "Estratégico",
		Priority: model.PriorityHigh,
		Text:     "Avaliar posicionamento competitivo com base nos dados de mercado",
		Impact:   "Fortalecer posição de mercado e identificar oportunidades",
	},
}

// Recommend applies the rule set in priority order, deduplicates on
// category plus text, and caps the list at maxRecommendations. The
// resolved category contributes at most one canned recommendation; the
// remaining rules key off fact count, KPI status and trend presence.
// When no rule fires it falls back to a single monitoring recommendation.
func (r *Recommender) Recommend(category model.Category, facts model.FactSet, kpis model.KPISet, trends model.TrendSet) []model.Recommendation {
	var recs []model.Recommendation

	if len(facts) < 3 {
		recs = append(recs, model.Recommendation{
			Category: "Dados",
			Priority: model.PriorityHigh,
			Text:     "Expandir coleta de dados para análise mais completa",
			Impact:   "Maior precisão nas análises futuras",
		})
	}

	if kpi, ok := kpis["data_confidence"]; ok && kpi.Status == model.StatusWarning {
		recs = append(recs, model.Recommendation{
			Category: "Qualidade",
			Priority: model.PriorityHigh,
			Text:     "Validar fontes de dados com baixa confiabilidade",
			Impact:   "Garantia de decisões baseadas em dados reais",
		})
	}

	if rec, ok := categoryRecommendations[category]; ok {
		recs = append(recs, rec)
	}

	if !trends.Empty() {
		recs = append(recs, model.Recommendation{
			Category: "Estratégico",
			Priority: model.PriorityMedium,
			Text:     "Acompanhar padrões identificados para antecipar mudanças",
			Impact:   "Vantagem competitiva baseada em dados",
		})
	}

	recs = dedupeRecommendations(recs)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	if len(recs) == 0 {
		recs = append(recs, fallbackRecommendation())
	}
	return recs
}

// fallbackRecommendation is the single generic record returned when no
// rule fires or the recommendation stage fails outright.
func fallbackRecommendation() model.Recommendation {
	return model.Recommendation{
		Category: "Geral",
		Priority: model.PriorityMedium,
		Text:     "Continuar monitoramento baseado em dados reais do setor",
		Impact:   "Manutenção da qualidade analítica",
	}
}

func dedupeRecommendations(recs []model.Recommendation) []model.Recommendation {
	seen := make(map[string]bool, len(recs))
	out := recs[:0]
	for _, rec := range recs {
		key := rec.Category + "|" + rec.Text
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}
	return out
}
