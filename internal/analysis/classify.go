package analysis

import (
	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

// categoryKeywords pairs a category with its trigger keywords. The slice
// order is the classification priority: the first category with any
// keyword match wins, so e.g. leadership questions about a company
// classify as leadership, not as that company.
var categoryKeywords = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryMarketAnalysis, []string{
		"mercado", "mercado petrolífero", "mercado de petróleo", "análise de mercado",
		"tendências do mercado", "dinâmica do mercado", "competitividade", "quota de mercado",
		"market share", "competição", "concorrência",
	}},
	{model.CategoryFinancialPerformance, []string{
		"performance financeira", "resultados financeiros", "lucratividade", "rentabilidade",
		"retorno sobre investimento", "roi", "margem", "ebitda", "receita", "lucro",
		"investimento", "financiamento", "capital", "dólar", "usd", "milhões", "bilhões",
	}},
	{model.CategoryOperationalEfficiency, []string{
		"eficiência operacional", "produtividade", "desempenho operacional", "oee",
		"disponibilidade", "qualidade", "performance", "produção", "volume", "bpd",
		"barril", "extração", "refino", "capacidade",
	}},
	{model.CategoryStrategicAnalysis, []string{
		"análise estratégica", "posicionamento estratégico", "vantagem competitiva",
		"análise swot", "estratégia", "planejamento estratégico", "posicionamento no mercado",
	}},
	{model.CategoryRiskAssessment, []string{
		"análise de risco", "gestão de risco", "riscos", "incertezas", "volatilidade",
		"exposição", "mitigação", "análise de vulnerabilidade",
	}},
	{model.CategoryRegulatoryCompliance, []string{
		"conformidade regulatória", "regulação", "compliance", "regulamentação",
		"normas", "legislação", "regulador", "anpg", "ministerial",
	}},
	{model.CategorySustainability, []string{
		"sustentabilidade", "esg", "ambiental", "social", "governança", "verde",
		"descarbonização", "neutralidade de carbono", "renovável", "transição energética",
	}},
	{model.CategoryTechnologyInnovation, []string{
		"tecnologia", "inovação", "digitalização", "transformação digital", "i4.0",
		"automação", "ia", "inteligência artificial", "blockchain", "iot",
	}},
	{model.CategoryLeadership, []string{
		"presidente", "ceo", "director", "executivo", "conselho", "administração",
		"liderança", "gestão", "board", "pca",
	}},
	{model.CategoryProjects, []string{
		"projeto", "projecto", "bloco", "block", "fpso", "campo", "field",
		"plataforma", "infraestrutura", "desenvolvimento",
	}},
}

// temporalKeywords route otherwise-unmatched questions about evolution
// over time to trend analysis.
var temporalKeywords = []string{
	"tempo", "histórico", "evolução", "tendência", "série temporal", "timeline",
}

// Classify maps a question to exactly one category. Topical categories are
// tested in fixed priority order, then known company names, then temporal
// keywords; anything else is a comprehensive analysis. Pure function of
// the question and the alias table.
func Classify(question string, aliases registry.AliasTable) model.Category {
	for _, entry := range categoryKeywords {
		if containsAnyFold(question, entry.keywords) {
			return entry.category
		}
	}

	if companies := aliases.Identify(question); len(companies) > 0 {
		return model.CompanyCategory(companies[0])
	}

	if containsAnyFold(question, temporalKeywords) {
		return model.CategoryTrendAnalysis
	}

	return model.CategoryComprehensive
}
