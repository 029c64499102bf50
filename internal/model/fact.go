package model

import (
	"fmt"
	"math"
	"sort"
)

// Fact is a single quantitative data point extracted from a document:
// a normalized label paired with a numeric value.
type Fact struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// FactSet maps normalized labels to extracted values. Labels are unique
// within a set; Put keeps the first value written for a label.
type FactSet map[string]float64

// Put adds a fact unless the label is already present. Returns true if
// the fact was added.
func (fs FactSet) Put(label string, value float64) bool {
	if _, ok := fs[label]; ok {
		return false
	}
	fs[label] = value
	return true
}

// Merge copies all entries from other into fs. Entries in other overwrite
// entries in fs for identical labels.
func (fs FactSet) Merge(other FactSet) {
	for label, value := range other {
		fs[label] = value
	}
}

// Sorted returns the facts ordered by descending absolute value, ties
// broken by label for deterministic output.
func (fs FactSet) Sorted() []Fact {
	facts := make([]Fact, 0, len(fs))
	for label, value := range fs {
		facts = append(facts, Fact{Label: label, Value: value})
	}
	sort.Slice(facts, func(i, j int) bool {
		ai, aj := math.Abs(facts[i].Value), math.Abs(facts[j].Value)
		if ai != aj {
			return ai > aj
		}
		return facts[i].Label < facts[j].Label
	})
	return facts
}

// TopN returns a new FactSet holding only the n largest facts by absolute
// value. Sets of size <= n are returned as-is.
func (fs FactSet) TopN(n int) FactSet {
	if len(fs) <= n {
		return fs
	}
	top := make(FactSet, n)
	for _, f := range fs.Sorted()[:n] {
		top[f.Label] = f.Value
	}
	return top
}

// Sum returns the sum of all fact values.
func (fs FactSet) Sum() float64 {
	var total float64
	for _, v := range fs {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of all fact values, 0 for an empty set.
func (fs FactSet) Mean() float64 {
	if len(fs) == 0 {
		return 0
	}
	return fs.Sum() / float64(len(fs))
}

// FormatValue renders a value for display with M/K magnitude suffixes.
func FormatValue(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%.1fK", value/1_000)
	case value >= 1:
		return fmt.Sprintf("%.1f", value)
	case value >= 0.1:
		return fmt.Sprintf("%.2f", value)
	default:
		return fmt.Sprintf("%.3f", value)
	}
}
