package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchmark_RateHigherIsBetter(t *testing.T) {
	b := Benchmark{Target: 85, WorldClass: 95, Average: 78}
	assert.Equal(t, StatusExcellent, b.Rate(96))
	assert.Equal(t, StatusGood, b.Rate(88))
	assert.Equal(t, StatusModerate, b.Rate(80))
	assert.Equal(t, StatusNeedsImprovement, b.Rate(70))
}

func TestBenchmark_RateLowerIsBetter(t *testing.T) {
	// operational_cost_ratio style: world class below target.
	b := Benchmark{Target: 30, WorldClass: 25, Average: 35}
	assert.Equal(t, StatusExcellent, b.Rate(24))
	assert.Equal(t, StatusGood, b.Rate(28))
	assert.Equal(t, StatusModerate, b.Rate(33))
	assert.Equal(t, StatusNeedsImprovement, b.Rate(40))
}

func TestBenchmarkTable_RateUnknownMetric(t *testing.T) {
	table := BenchmarkTable{"roe": {Target: 15, WorldClass: 20, Average: 12}}
	assert.Equal(t, StatusGood, table.Rate("roe", 16))
	assert.Equal(t, StatusUnknown, table.Rate("nope", 16))
}

func TestCategory_IsCompany(t *testing.T) {
	key, ok := CompanyCategory("Sonangol").IsCompany()
	assert.True(t, ok)
	assert.Equal(t, "sonangol", key)

	_, ok = CategoryMarketAnalysis.IsCompany()
	assert.False(t, ok)
}
