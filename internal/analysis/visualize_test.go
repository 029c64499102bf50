package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanza-labs/insights-cli/internal/model"
)

func TestConfigureScalesWithFactCount(t *testing.T) {
	viz := NewVisualizer()

	small := viz.Configure(model.FactSet{"a": 1})
	assert.Equal(t, []model.ChartType{model.ChartBar}, small.ChartTypes)
	assert.Len(t, small.Colors, 2)

	medium := viz.Configure(model.FactSet{"a": 1, "b": 2, "c": 3})
	assert.Equal(t, []model.ChartType{model.ChartBar, model.ChartPie}, medium.ChartTypes)
	assert.Len(t, medium.Colors, 4)

	rich := viz.Configure(model.FactSet{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5})
	assert.Equal(t, []model.ChartType{model.ChartBar, model.ChartPie, model.ChartDonut}, rich.ChartTypes)
	assert.Len(t, rich.Colors, 8)
}

func TestConfigureAnnotations(t *testing.T) {
	facts := model.FactSet{
		"Investimento (USD milhões)": 850,
		"Produção (bpd)":             45,
	}

	cfg := NewVisualizer().Configure(facts)

	require.Len(t, cfg.Annotations, 2)
	assert.Equal(t, "highlight", cfg.Annotations[0].Type)
	assert.Equal(t, "Maior investimento: 850.0", cfg.Annotations[0].Text)
	assert.Equal(t, "top", cfg.Annotations[0].Position)
	assert.Equal(t, "Produção total: 45.0", cfg.Annotations[1].Text)
	assert.Equal(t, "bottom", cfg.Annotations[1].Position)
}

func TestDefaultConfigIsMinimal(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []model.ChartType{model.ChartBar}, cfg.ChartTypes)
	assert.Equal(t, []string{"#1f4e79"}, cfg.Colors)
	assert.Empty(t, cfg.Annotations)
}
