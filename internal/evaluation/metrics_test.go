package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

func TestEvaluatePerfectClassifier(t *testing.T) {
	examples := []Example{
		{Text: "a", Label: sentiment.LabelPositive},
		{Text: "b", Label: sentiment.LabelNegative},
		{Text: "c", Label: sentiment.LabelNeutral},
		{Text: "d", Label: sentiment.LabelMixed},
	}
	echo := func(ex Example) sentiment.Label { return ex.Label }

	m := Evaluate(examples, echo)

	assert.Equal(t, 4, m.Total)
	assert.InDelta(t, 1.0, m.Accuracy, 1e-9)
	assert.InDelta(t, 1.0, m.PosNegF1, 1e-9)
	for _, label := range sentiment.AllLabels() {
		c := m.Classes[label]
		assert.InDelta(t, 1.0, c.Precision, 1e-9)
		assert.InDelta(t, 1.0, c.Recall, 1e-9)
		assert.InDelta(t, 1.0, c.F1, 1e-9)
	}
}

func TestEvaluateConfusionMath(t *testing.T) {
	// Truth: pos, pos, neg, neu. Predictions: pos, neg, neg, neu.
	examples := []Example{
		{CommentID: "1", Label: sentiment.LabelPositive},
		{CommentID: "2", Label: sentiment.LabelPositive},
		{CommentID: "3", Label: sentiment.LabelNegative},
		{CommentID: "4", Label: sentiment.LabelNeutral},
	}
	predictions := map[string]sentiment.Label{
		"1": sentiment.LabelPositive,
		"2": sentiment.LabelNegative,
		"3": sentiment.LabelNegative,
		"4": sentiment.LabelNeutral,
	}
	classify := func(ex Example) sentiment.Label { return predictions[ex.CommentID] }

	m := Evaluate(examples, classify)

	assert.InDelta(t, 0.75, m.Accuracy, 1e-9)

	pos := m.Classes[sentiment.LabelPositive]
	assert.InDelta(t, 1.0, pos.Precision, 1e-9)
	assert.InDelta(t, 0.5, pos.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, pos.F1, 1e-9)

	neg := m.Classes[sentiment.LabelNegative]
	assert.InDelta(t, 0.5, neg.Precision, 1e-9)
	assert.InDelta(t, 1.0, neg.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, neg.F1, 1e-9)

	assert.InDelta(t, 2.0/3.0, m.PosNegF1, 1e-9)
}

func TestEvaluateEmptyDataset(t *testing.T) {
	m := Evaluate(nil, func(Example) sentiment.Label { return sentiment.LabelNeutral })
	assert.Zero(t, m.Total)
	assert.Zero(t, m.Accuracy)
}

func TestEvaluateClassNeverPredicted(t *testing.T) {
	examples := []Example{
		{Label: sentiment.LabelPositive},
		{Label: sentiment.LabelNegative},
	}
	always := func(Example) sentiment.Label { return sentiment.LabelNeutral }

	m := Evaluate(examples, always)

	require.Contains(t, m.Classes, sentiment.LabelPositive)
	assert.Zero(t, m.Classes[sentiment.LabelPositive].F1)
	assert.Zero(t, m.Classes[sentiment.LabelNeutral].Recall)
	assert.Zero(t, m.Accuracy)
}
