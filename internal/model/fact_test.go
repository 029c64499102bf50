package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactSet_PutKeepsFirst(t *testing.T) {
	fs := FactSet{}
	assert.True(t, fs.Put("Investimento", 850))
	assert.False(t, fs.Put("Investimento", 900))
	assert.Equal(t, 850.0, fs["Investimento"])
}

func TestFactSet_MergeOverwrites(t *testing.T) {
	fs := FactSet{"a": 1, "b": 2}
	fs.Merge(FactSet{"b": 5, "c": 3})
	assert.Equal(t, FactSet{"a": 1, "b": 5, "c": 3}, fs)
}

func TestFactSet_SortedByAbsValue(t *testing.T) {
	fs := FactSet{"small": 2, "big": -100, "mid": 40}
	sorted := fs.Sorted()
	assert.Equal(t, []Fact{
		{Label: "big", Value: -100},
		{Label: "mid", Value: 40},
		{Label: "small", Value: 2},
	}, sorted)
}

func TestFactSet_TopN(t *testing.T) {
	fs := FactSet{}
	for _, f := range []Fact{
		{"a", 1}, {"b", 12}, {"c", 3}, {"d", 9}, {"e", -20},
	} {
		fs.Put(f.Label, f.Value)
	}
	top := fs.TopN(3)
	assert.Len(t, top, 3)
	assert.Contains(t, top, "e")
	assert.Contains(t, top, "b")
	assert.Contains(t, top, "d")
}

func TestFactSet_TopNSmallSetUnchanged(t *testing.T) {
	fs := FactSet{"a": 1, "b": 2}
	assert.Equal(t, fs, fs.TopN(10))
}

func TestFactSet_SumMean(t *testing.T) {
	fs := FactSet{"a": 10, "b": 20, "c": 30}
	assert.Equal(t, 60.0, fs.Sum())
	assert.Equal(t, 20.0, fs.Mean())
	assert.Equal(t, 0.0, FactSet{}.Mean())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "2.5M", FormatValue(2_500_000))
	assert.Equal(t, "45.0K", FormatValue(45_000))
	assert.Equal(t, "850.0", FormatValue(850))
	assert.Equal(t, "0.25", FormatValue(0.25))
	assert.Equal(t, "0.050", FormatValue(0.05))
}
