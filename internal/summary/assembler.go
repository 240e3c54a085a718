// Package summary shapes the aggregator output into the response structure
// delivered to the transport layer. Pure transformation, no computation.
package summary

import (
	"github.com/zmckinney22/CS410-Group-Project/internal/models"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

// Assemble packages the post metadata and thread aggregate into the wire
// form. The group list always carries all four labels; the notable list
// carries one entry per populated label.
func Assemble(post models.Post, agg sentiment.Summary) models.AnalysisSummary {
	groups := make([]models.SentimentGroup, 0, len(agg.Groups))
	for _, g := range agg.Groups {
		groups = append(groups, models.SentimentGroup{
			Label:      g.Label.String(),
			Count:      g.Count,
			Proportion: g.Proportion,
		})
	}

	notable := make([]models.NotableComment, 0, len(agg.Notable))
	for _, n := range agg.Notable {
		notable = append(notable, models.NotableComment{
			CommentID: n.CommentID,
			Snippet:   n.Snippet,
			Sentiment: n.Label.String(),
			Score:     n.Score,
		})
	}

	return models.AnalysisSummary{
		PostTitle:        post.Title,
		OverallSentiment: agg.Overall.String(),
		Groups:           groups,
		Controversy:      agg.Controversy,
		Keywords:         agg.Keywords,
		Notable:          notable,
	}
}
