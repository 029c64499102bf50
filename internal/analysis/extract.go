package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/internal/registry"
)

// maxFactsPerText caps the extractor output; texts producing more raw
// matches keep only the largest values by magnitude.
const maxFactsPerText = 10

// minLineLength filters noise lines (menu fragments, separators) before
// pattern matching.
const minLineLength = 10

// extractionRule pairs a numeric pattern with the base label its matches
// receive. Rules are applied to every qualifying line in order.
type extractionRule struct {
	pattern *regexp.Regexp
	label   string
}

var extractionRules = []extractionRule{
	// Monetary values.
	{regexp.MustCompile(`(?i)\$\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:milhões?|million|m)`), "Investimento (USD milhões)"},
	{regexp.MustCompile(`(?i)\$\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:bilhões?|billion|b)`), "Investimento (USD bilhões)"},

	// Production and volumes.
	{regexp.MustCompile(`(?i)(\d+(?:,\d{3})*)\s*barril`), "Produção (barris)"},
	{regexp.MustCompile(`(?i)(\d+(?:,\d{3})*)\s*bpd`), "Produção (bpd)"},
	{regexp.MustCompile(`(?i)(\d+(?:,\d{3})*)\s*mboe`), "Reservas (mboe)"},

	// Percentages and rates.
	{regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*%`), "Percentagem"},

	// Generic numbers anchored to a keyword.
	{regexp.MustCompile(`(?i)(?:volume|produção|production|output)[\s:]*(\d+(?:,\d{3})*)`), "Volume"},
	{regexp.MustCompile(`(?i)(?:capacidade|capacity)[\s:]*(\d+(?:,\d{3})*)`), "Capacidade"},
	{regexp.MustCompile(`(?i)(?:investimento|investment)[\s:]*\$?(\d+(?:,\d{3})*)`), "Investimento"},
}

// lineContexts enrich labels with the topic of the matched line. Checked
// in order after company names; first match wins.
var lineContexts = []struct {
	name     string
	keywords []string
}{
	{"Produção", []string{"produção", "production", "output", "barril", "bpd"}},
	{"Investimento", []string{"investimento", "investment", "capital", "financiamento"}},
	{"Reservas", []string{"reserva", "reserve", "mboe", "recursos"}},
	{"Projeto", []string{"projeto", "project", "bloco", "block", "fpso"}},
	{"Ambiente", []string{"ambiental", "environmental", "esg", "sustentabilidade"}},
}

// Extractor scans unstructured text for quantitative facts.
type Extractor struct {
	aliases registry.AliasTable
	titler  cases.Caser
}

// NewExtractor creates an Extractor using the given company alias table
// for label context enrichment.
func NewExtractor(aliases registry.AliasTable) *Extractor {
	return &Extractor{
		aliases: aliases,
		titler:  cases.Title(language.Portuguese),
	}
}

// Extract scans text line by line and returns up to maxFactsPerText
// normalized facts. A text with no matches yields an empty set, never an
// error; individual matches that fail numeric parsing are skipped.
func (e *Extractor) Extract(text string) model.FactSet {
	facts := model.FactSet{}
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < minLineLength {
			continue
		}

		for _, rule := range extractionRules {
			for _, match := range rule.pattern.FindAllStringSubmatch(line, -1) {
				fact, err := e.buildFact(rule.label, match[1], line, i, lines)
				if err != nil {
					zap.L().Debug("extract: skipping unparsable match",
						zap.String("raw", match[1]),
						zap.Error(err),
					)
					continue
				}
				facts.Put(fact.Label, fact.Value)
			}
		}
	}

	return facts.TopN(maxFactsPerText)
}

// buildFact parses one regex capture into a normalized fact. Values above
// a million are scaled to millions, values above a thousand to thousands,
// with the unit recorded in the label suffix.
func (e *Extractor) buildFact(baseLabel, raw, line string, lineIdx int, lines []string) (model.Fact, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return model.Fact{}, eris.Wrapf(err, "extract: parse %q", raw)
	}

	label := baseLabel
	switch {
	case value > 1_000_000:
		value /= 1_000_000
		label += " (em milhões)"
	case value > 1_000:
		value /= 1_000
		label += " (em milhares)"
	}

	if ctx := e.lineContext(line, lineIdx, lines); ctx != "" {
		label = ctx + " - " + label
	}

	return model.Fact{Label: label, Value: value}, nil
}

// lineContext looks for a company name in a window of surrounding lines,
// then for a topical keyword on the matched line itself. Returns "" when
// neither is found.
func (e *Extractor) lineContext(line string, lineIdx int, lines []string) string {
	lo := max(0, lineIdx-2)
	hi := min(len(lines), lineIdx+3)
	for _, company := range e.aliases.Keys() {
		for _, windowLine := range lines[lo:hi] {
			if e.aliases.Matches(company, windowLine) {
				return e.titler.String(company)
			}
		}
	}

	for _, ctx := range lineContexts {
		if containsAnyFold(line, ctx.keywords) {
			return ctx.name
		}
	}
	return ""
}
