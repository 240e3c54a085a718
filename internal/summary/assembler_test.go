package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmckinney22/CS410-Group-Project/internal/models"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

func TestAssemble(t *testing.T) {
	post := models.Post{PostID: "abc123", Title: "Release thread"}
	agg := sentiment.Summary{
		Overall: sentiment.LabelPositive,
		Groups: []sentiment.Group{
			{Label: sentiment.LabelPositive, Count: 2, Proportion: 0.5},
			{Label: sentiment.LabelNegative, Count: 1, Proportion: 0.25},
			{Label: sentiment.LabelNeutral, Count: 1, Proportion: 0.25},
			{Label: sentiment.LabelMixed, Count: 0, Proportion: 0},
		},
		Controversy: 0.125,
		Keywords:    []string{"battery", "screen"},
		Notable: []sentiment.Exemplar{
			{CommentID: "c1", Snippet: "love it", Label: sentiment.LabelPositive, Score: 12},
		},
		Total: 4,
	}

	got := Assemble(post, agg)

	assert.Equal(t, "Release thread", got.PostTitle)
	assert.Equal(t, "positive", got.OverallSentiment)
	assert.InDelta(t, 0.125, got.Controversy, 1e-9)
	assert.Equal(t, []string{"battery", "screen"}, got.Keywords)

	require.Len(t, got.Groups, 4)
	assert.Equal(t, models.SentimentGroup{Label: "positive", Count: 2, Proportion: 0.5}, got.Groups[0])

	require.Len(t, got.Notable, 1)
	assert.Equal(t, models.NotableComment{
		CommentID: "c1", Snippet: "love it", Sentiment: "positive", Score: 12,
	}, got.Notable[0])
}

func TestAssembleEmptyAggregate(t *testing.T) {
	got := Assemble(models.Post{Title: "quiet thread"}, sentiment.Summary{
		Overall: sentiment.LabelNeutral,
	})

	assert.Equal(t, "neutral", got.OverallSentiment)
	assert.Empty(t, got.Groups)
	assert.Empty(t, got.Notable)
	assert.Zero(t, got.Controversy)
}
