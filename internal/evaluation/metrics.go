// Package evaluation measures classifier quality against labeled comment
// datasets: confusion matrix, per-class precision/recall/F1, and a VADER
// baseline for comparison.
package evaluation

import (
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

// Example is one labeled comment.
type Example struct {
	CommentID string
	Text      string
	Label     sentiment.Label
	Community string
	PostID    string
}

// Classifier assigns a label to one example.
type Classifier func(Example) sentiment.Label

type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

type Metrics struct {
	Accuracy float64                          `json:"accuracy"`
	PosNegF1 float64                          `json:"pos_neg_f1"`
	Classes  map[sentiment.Label]ClassMetrics `json:"classes"`
	Total    int                              `json:"total"`
}

// Evaluate runs the classifier over all examples and computes accuracy and
// per-class metrics from the confusion matrix.
func Evaluate(examples []Example, classify Classifier) Metrics {
	confusion := make(map[sentiment.Label]map[sentiment.Label]int, 4)
	for _, truth := range sentiment.AllLabels() {
		confusion[truth] = make(map[sentiment.Label]int, 4)
	}

	for _, ex := range examples {
		confusion[ex.Label][classify(ex)]++
	}

	total := len(examples)
	correct := 0
	for _, l := range sentiment.AllLabels() {
		correct += confusion[l][l]
	}

	m := Metrics{
		Classes: make(map[sentiment.Label]ClassMetrics, 4),
		Total:   total,
	}
	if total > 0 {
		m.Accuracy = float64(correct) / float64(total)
	}

	for _, label := range sentiment.AllLabels() {
		tp := confusion[label][label]
		fp, fn := 0, 0
		for _, other := range sentiment.AllLabels() {
			if other == label {
				continue
			}
			fp += confusion[other][label]
			fn += confusion[label][other]
		}

		var precision, recall, f1 float64
		if tp+fp > 0 {
			precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			recall = float64(tp) / float64(tp+fn)
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		m.Classes[label] = ClassMetrics{Precision: precision, Recall: recall, F1: f1}
	}

	m.PosNegF1 = (m.Classes[sentiment.LabelPositive].F1 + m.Classes[sentiment.LabelNegative].F1) / 2
	return m
}
