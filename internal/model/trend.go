package model

// Horizon is the time scope of a trend statement.
type Horizon string

const (
	HorizonShortTerm  Horizon = "short_term"
	HorizonMediumTerm Horizon = "medium_term"
	HorizonLongTerm   Horizon = "long_term"
)

// TrendSet groups descriptive trend statements by time horizon, plus
// numeric patterns observed directly in the extracted facts.
type TrendSet struct {
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
	Patterns   []string `json:"patterns"`
}

// Empty reports whether the set carries no statements at all.
func (t TrendSet) Empty() bool {
	return len(t.ShortTerm) == 0 && len(t.MediumTerm) == 0 &&
		len(t.LongTerm) == 0 && len(t.Patterns) == 0
}

// Add appends a statement to the bucket for the given horizon.
func (t *TrendSet) Add(h Horizon, statement string) {
	switch h {
	case HorizonShortTerm:
		t.ShortTerm = append(t.ShortTerm, statement)
	case HorizonMediumTerm:
		t.MediumTerm = append(t.MediumTerm, statement)
	case HorizonLongTerm:
		t.LongTerm = append(t.LongTerm, statement)
	}
}
