// Package sentiment implements the lexicon-based scoring engine: per-text
// polarity scoring with negation and intensity handling, and the
// aggregation of per-comment scores into a thread-level summary.
package sentiment

import "fmt"

// Label is the closed set of sentiment classes. The zero value is not a
// valid label; use LabelNeutral explicitly.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
	LabelMixed    Label = "mixed"
)

// AllLabels returns every known label in its fixed output order. Group
// lists and notable-comment lists follow this order.
func AllLabels() []Label {
	return []Label{LabelPositive, LabelNegative, LabelNeutral, LabelMixed}
}

// labelPriority is the deterministic tie-break order for the overall
// label: when counts tie, the more informative label wins and NEUTRAL
// never shadows a tied polarized label.
var labelPriority = []Label{LabelPositive, LabelNegative, LabelMixed, LabelNeutral}

// ParseLabel validates a wire-format label string.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelPositive, LabelNegative, LabelNeutral, LabelMixed:
		return Label(s), nil
	}
	return "", fmt.Errorf("sentiment: unknown label %q", s)
}

func (l Label) String() string { return string(l) }
