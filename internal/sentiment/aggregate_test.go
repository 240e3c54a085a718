package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmckinney22/CS410-Group-Project/internal/models"
)

func testThread() models.Thread {
	return models.Thread{
		Post: models.Post{PostID: "abc123", Title: "Release thread"},
		Comments: []models.Comment{
			{CommentID: "c1", Body: "I love this!", Score: 10},
			{CommentID: "c2", Body: "This is terrible", Score: -2},
			{CommentID: "c3", Body: "It's fine I guess", Score: 1},
		},
	}
}

func TestSummarizeThread(t *testing.T) {
	agg := Summarize(testThread(), testLexicon(), DefaultParams())

	assert.Equal(t, 3, agg.Total)
	// 1-1-1 tie between positive, negative, and neutral: positive wins.
	assert.Equal(t, LabelPositive, agg.Overall)
	assert.InDelta(t, 1.0/9.0, agg.Controversy, 1e-9)
}

func TestSummarizeGroupsCoverAllLabels(t *testing.T) {
	agg := Summarize(testThread(), testLexicon(), DefaultParams())

	require.Len(t, agg.Groups, 4)
	assert.Equal(t, AllLabels(), []Label{
		agg.Groups[0].Label, agg.Groups[1].Label, agg.Groups[2].Label, agg.Groups[3].Label,
	})

	sum := 0.0
	for _, g := range agg.Groups {
		sum += g.Proportion
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	byLabel := make(map[Label]Group, 4)
	for _, g := range agg.Groups {
		byLabel[g.Label] = g
	}
	assert.Equal(t, 1, byLabel[LabelPositive].Count)
	assert.Equal(t, 1, byLabel[LabelNegative].Count)
	assert.Equal(t, 1, byLabel[LabelNeutral].Count)
	assert.Equal(t, 0, byLabel[LabelMixed].Count)
}

func TestSummarizeNotableComments(t *testing.T) {
	agg := Summarize(testThread(), testLexicon(), DefaultParams())

	// One exemplar per populated label, no MIXED entry, fixed order.
	require.Len(t, agg.Notable, 3)
	assert.Equal(t, "c1", agg.Notable[0].CommentID)
	assert.Equal(t, LabelPositive, agg.Notable[0].Label)
	assert.Equal(t, 10, agg.Notable[0].Score)
	assert.Equal(t, "c2", agg.Notable[1].CommentID)
	assert.Equal(t, "c3", agg.Notable[2].CommentID)
}

func TestSummarizeEmptyThread(t *testing.T) {
	agg := Summarize(models.Thread{}, testLexicon(), DefaultParams())

	assert.Zero(t, agg.Total)
	assert.Equal(t, LabelNeutral, agg.Overall)
	assert.Zero(t, agg.Controversy)
	assert.Empty(t, agg.Notable)
	assert.Empty(t, agg.Keywords)
	require.Len(t, agg.Groups, 4)
	for _, g := range agg.Groups {
		assert.Zero(t, g.Count)
		assert.Zero(t, g.Proportion)
	}
}

func TestNotablePicksHighestVoted(t *testing.T) {
	thread := models.Thread{Comments: []models.Comment{
		{CommentID: "low", Body: "great", Score: 3},
		{CommentID: "high", Body: "superb", Score: 40},
		{CommentID: "mid", Body: "great stuff", Score: 7},
	}}

	agg := Summarize(thread, testLexicon(), DefaultParams())
	require.Len(t, agg.Notable, 1)
	assert.Equal(t, "high", agg.Notable[0].CommentID)
}

func TestNotableSnippetTruncation(t *testing.T) {
	long := "great " + strings.Repeat("x", 300)
	thread := models.Thread{Comments: []models.Comment{
		{CommentID: "c1", Body: long, Score: 1},
	}}

	agg := Summarize(thread, testLexicon(), DefaultParams())
	require.Len(t, agg.Notable, 1)

	snippet := agg.Notable[0].Snippet
	assert.True(t, strings.HasSuffix(snippet, snippetEllipsis))
	assert.Len(t, []rune(snippet), snippetBudget+len(snippetEllipsis))
}

func TestShortSnippetNotTruncated(t *testing.T) {
	thread := models.Thread{Comments: []models.Comment{
		{CommentID: "c1", Body: "great", Score: 1},
	}}
	agg := Summarize(thread, testLexicon(), DefaultParams())
	require.Len(t, agg.Notable, 1)
	assert.Equal(t, "great", agg.Notable[0].Snippet)
}

func TestOverallLabelTieBreak(t *testing.T) {
	cases := []struct {
		counts map[Label]int
		want   Label
	}{
		{map[Label]int{LabelPositive: 2, LabelNegative: 2}, LabelPositive},
		{map[Label]int{LabelNegative: 2, LabelNeutral: 2}, LabelNegative},
		{map[Label]int{LabelMixed: 3, LabelNeutral: 3}, LabelMixed},
		{map[Label]int{LabelNeutral: 5, LabelNegative: 1}, LabelNeutral},
	}
	for _, tc := range cases {
		total := 0
		for _, n := range tc.counts {
			total += n
		}
		assert.Equal(t, tc.want, OverallLabel(tc.counts, total))
	}
}

func TestControversyExtremes(t *testing.T) {
	assert.Zero(t, controversy(5, 0, 5))
	assert.Zero(t, controversy(0, 5, 5))
	assert.InDelta(t, 0.25, controversy(5, 5, 10), 1e-9)
	assert.Zero(t, controversy(0, 0, 0))
}

func TestExtractKeywords(t *testing.T) {
	comments := []models.Comment{
		{Body: "the battery drains fast"},
		{Body: "battery life is short, battery replacement helps"},
		{Body: "screen looks sharp"},
	}

	keywords := ExtractKeywords(comments, 3)
	require.NotEmpty(t, keywords)
	assert.Equal(t, "battery", keywords[0])
	assert.Len(t, keywords, 3)
}

func TestExtractKeywordsSkipsShortAndStopwords(t *testing.T) {
	comments := []models.Comment{
		{Body: "this is it and that was just like really something"},
	}
	keywords := ExtractKeywords(comments, 10)
	assert.Equal(t, []string{"something"}, keywords)
}

func TestExtractKeywordsTieKeepsFirstSeenOrder(t *testing.T) {
	comments := []models.Comment{
		{Body: "alpha bravo charlie"},
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, ExtractKeywords(comments, 10))
}
