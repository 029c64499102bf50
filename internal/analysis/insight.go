package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

const maxInsights = 5

var insightFinancialTerms = []string{"investimento", "usd", "milhões", "milhares", "capital"}

var insightOperationalTerms = []string{"produção", "barril", "bpd", "volume", "capacidade"}

// InsightBuilder turns fact sets into readable findings. Every statement
// it produces references values present in the input; nothing is invented.
type InsightBuilder struct {
	aliases registry.AliasTable
	titler  cases.Caser
}

func NewInsightBuilder(aliases registry.AliasTable) *InsightBuilder {
	return &InsightBuilder{
		aliases: aliases,
		titler:  cases.Title(language.Portuguese),
	}
}

// Insights derives up to maxInsights statements from the fact set, in
// order of importance: headline fact, concentration of the top three,
// financial versus operational balance, and companies seen in the data.
func (b *InsightBuilder) Insights(facts model.FactSet) []string {
	if len(facts) == 0 {
		return nil
	}

	var insights []string
	sorted := facts.Sorted()

	top := sorted[0]
	insights = append(insights, fmt.Sprintf("Principal destaque: %s com %s", top.Label, model.FormatValue(top.Value)))

	if len(sorted) >= 3 {
		total := facts.Sum()
		if total != 0 {
			var top3 float64
			for _, f := range sorted[:3] {
				top3 += f.Value
			}
			share := top3 / total * 100
			insights = append(insights, fmt.Sprintf("Os 3 principais indicadores concentram %.1f%% do valor total", share))
		}
	}

	financial, operational := 0, 0
	for label := range facts {
		if containsAnyFold(label, insightFinancialTerms) {
			financial++
		}
		if containsAnyFold(label, insightOperationalTerms) {
			operational++
		}
	}
	switch {
	case financial > operational:
		insights = append(insights, fmt.Sprintf("Análise com foco financeiro: %d indicadores monetários identificados", financial))
	case operational > financial:
		insights = append(insights, fmt.Sprintf("Análise com foco operacional: %d indicadores de produção identificados", operational))
	}

	if companies := b.companiesInLabels(facts); len(companies) > 0 {
		insights = append(insights, "Empresas identificadas nos dados: "+strings.Join(companies, ", "))
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// companiesInLabels returns the known companies whose name appears in at
// least one fact label, in stable alias-table order.
func (b *InsightBuilder) companiesInLabels(facts model.FactSet) []string {
	var companies []string
	for _, key := range b.aliases.Keys() {
		for label := range facts {
			if b.aliases.Matches(key, label) {
				companies = append(companies, b.titler.String(key))
				break
			}
		}
	}
	return companies
}

var narrativeTitles = map[model.Category]string{
	model.CategoryMarketAnalysis:        "Análise de Mercado",
	model.CategoryFinancialPerformance:  "Desempenho Financeiro",
	model.CategoryOperationalEfficiency: "Eficiência Operacional",
	model.CategoryStrategicAnalysis:     "Análise Estratégica",
	model.CategoryRiskAssessment:        "Avaliação de Riscos",
	model.CategoryRegulatoryCompliance:  "Conformidade Regulatória",
	model.CategorySustainability:        "Sustentabilidade e Ambiente",
	model.CategoryTechnologyInnovation:  "Inovação e Tecnologia",
	model.CategoryLeadership:            "Liderança e Governança",
	model.CategoryProjects:              "Projetos e Infraestrutura",
	model.CategoryTrendAnalysis:         "Análise de Tendências",
	model.CategoryComprehensive:         "Análise Abrangente do Setor",
}

var narrativeSubtitles = map[model.Category]string{
	model.CategoryMarketAnalysis:        "Concentração e dinâmica competitiva do setor petrolífero angolano",
	model.CategoryFinancialPerformance:  "Indicadores financeiros extraídos de documentos do setor",
	model.CategoryOperationalEfficiency: "Capacidade produtiva e eficiência das operações",
	model.CategoryStrategicAnalysis:     "Posicionamento e vantagens competitivas identificadas",
	model.CategoryRiskAssessment:        "Exposição e vulnerabilidades detectadas nos dados",
	model.CategoryRegulatoryCompliance:  "Quadro regulatório e conformidade do setor",
	model.CategorySustainability:        "Indicadores ambientais e de transição energética",
	model.CategoryTechnologyInnovation:  "Adoção tecnológica no setor petrolífero",
	model.CategoryLeadership:            "Estruturas de decisão e governança corporativa",
	model.CategoryProjects:              "Blocos, campos e projetos em desenvolvimento",
	model.CategoryTrendAnalysis:         "Evolução temporal dos indicadores do setor",
	model.CategoryComprehensive:         "Visão integrada dos indicadores do setor",
}

var categoryRisks = map[model.Category]string{
	model.CategoryMarketAnalysis:        "Concentração de mercado pode limitar a concorrência",
	model.CategoryFinancialPerformance:  "Exposição à volatilidade do preço do petróleo",
	model.CategoryOperationalEfficiency: "Declínio natural dos campos maduros pressiona a capacidade",
	model.CategoryProjects:              "Ciclos longos de retorno aumentam o risco de capital",
	model.CategorySustainability:        "Pressão regulatória crescente sobre emissões",
}

var sectorRisks = []string{
	"Dependência de receitas petrolíferas na economia nacional",
	"Transição energética global pode reduzir a procura de longo prazo",
	"Necessidade de renovação de infraestrutura envelhecida",
}

// Narrative assembles the report-facing prose block for a category from
// its facts and insights.
func (b *InsightBuilder) Narrative(category model.Category, facts model.FactSet, insights []string) model.Narrative {
	title, ok := narrativeTitles[category]
	if !ok {
		if company, isCompany := category.IsCompany(); isCompany {
			title = "Análise da Empresa: " + b.titler.String(company)
		} else {
			title = narrativeTitles[model.CategoryComprehensive]
		}
	}
	subtitle, ok := narrativeSubtitles[category]
	if !ok {
		subtitle = narrativeSubtitles[model.CategoryComprehensive]
	}

	return model.Narrative{
		Title:               title,
		Subtitle:            subtitle,
		ExecutiveSummary:    b.executiveSummary(facts),
		KeyInsights:         insights,
		CompetitiveAnalysis: b.competitiveAnalysis(facts),
		RiskAssessment:      b.riskAssessment(category, facts),
	}
}

func (b *InsightBuilder) executiveSummary(facts model.FactSet) string {
	if len(facts) == 0 {
		return "Nenhum dado quantitativo disponível para esta análise."
	}
	top := facts.Sorted()[0]
	return fmt.Sprintf(
		"Análise baseada em %d indicadores reais extraídos de documentos do setor. O indicador de maior expressão é %s, com %s. Todos os valores apresentados provêm de dados verificados, sem estimativas.",
		len(facts), top.Label, model.FormatValue(top.Value),
	)
}

// competitiveAnalysis compares per-company mean values and names a leader
// when at least three facts carry company attribution.
func (b *InsightBuilder) competitiveAnalysis(facts model.FactSet) string {
	type companyStat struct {
		name  string
		mean  float64
		count int
	}

	var stats []companyStat
	attributed := 0
	for _, key := range b.aliases.Keys() {
		var sum float64
		count := 0
		for label, value := range facts {
			if b.aliases.Matches(key, label) {
				sum += value
				count++
			}
		}
		if count > 0 {
			stats = append(stats, companyStat{name: b.titler.String(key), mean: sum / float64(count), count: count})
			attributed += count
		}
	}

	if attributed < 3 || len(stats) == 0 {
		return "Dados insuficientes para uma comparação competitiva entre empresas."
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].mean != stats[j].mean {
			return stats[i].mean > stats[j].mean
		}
		return stats[i].name < stats[j].name
	})

	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s (média %s em %d indicadores)", s.name, model.FormatValue(s.mean), s.count))
	}
	return fmt.Sprintf("Destaque competitivo para %s. Comparativo: %s.", stats[0].name, strings.Join(parts, "; "))
}

// riskAssessment lists up to five risks: a volatility flag when the
// coefficient of variation exceeds 30%, the category-specific risk, and
// standing sector risks.
func (b *InsightBuilder) riskAssessment(category model.Category, facts model.FactSet) []string {
	var risks []string

	if len(facts) >= 2 {
		mean := facts.Mean()
		if mean != 0 {
			var variance float64
			for _, v := range facts {
				variance += (v - mean) * (v - mean)
			}
			variance /= float64(len(facts))
			if math.Sqrt(variance)/math.Abs(mean) > 0.3 {
				risks = append(risks, "Alta volatilidade entre os indicadores analisados")
			}
		}
	}

	if risk, ok := categoryRisks[category]; ok {
		risks = append(risks, risk)
	}
	risks = append(risks, sectorRisks...)

	if len(risks) > maxInsights {
		risks = risks[:maxInsights]
	}
	return risks
}
