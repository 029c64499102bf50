package analysis

import (
	"fmt"

	"github.com/kwanza-labs/insights-cli/internal/model"
)

var (
	paletteWide   = []string{"#1f4e79", "#2e75b6", "#5b9bd5", "#c5504b", "#70ad47", "#ed7d31", "#a5a5a5", "#ffc000"}
	paletteMedium = []string{"#1f4e79", "#2e75b6", "#5b9bd5", "#c5504b"}
	paletteNarrow = []string{"#1f4e79", "#2e75b6"}
)

// Visualizer prepares chart configuration for the fact set. Richer data
// unlocks more chart types and a wider palette.
type Visualizer struct{}

func NewVisualizer() *Visualizer {
	return &Visualizer{}
}

// Configure picks chart types, palette and annotations for the facts.
func (v *Visualizer) Configure(facts model.FactSet) model.VisualizationConfig {
	cfg := model.VisualizationConfig{}

	switch {
	case len(facts) >= 5:
		cfg.ChartTypes = []model.ChartType{model.ChartBar, model.ChartPie, model.ChartDonut}
		cfg.Colors = paletteWide
	case len(facts) >= 3:
		cfg.ChartTypes = []model.ChartType{model.ChartBar, model.ChartPie}
		cfg.Colors = paletteMedium
	default:
		cfg.ChartTypes = []model.ChartType{model.ChartBar}
		cfg.Colors = paletteNarrow
	}

	if len(facts) > 0 {
		financial, production := splitFacts(facts)
		if len(financial) > 0 {
			top := financial.Sorted()[0]
			cfg.Annotations = append(cfg.Annotations, model.Annotation{
				Type:     "highlight",
				Text:     fmt.Sprintf("Maior investimento: %s", model.FormatValue(top.Value)),
				Position: "top",
			})
		}
		if len(production) > 0 {
			cfg.Annotations = append(cfg.Annotations, model.Annotation{
				Type:     "summary",
				Text:     fmt.Sprintf("Produção total: %s", model.FormatValue(production.Sum())),
				Position: "bottom",
			})
		}
	}
	return cfg
}

// DefaultConfig is the minimal safe configuration used when chart
// preparation fails.
func DefaultConfig() model.VisualizationConfig {
	return model.VisualizationConfig{
		ChartTypes: []model.ChartType{model.ChartBar},
		Colors:     paletteNarrow[:1],
	}
}
