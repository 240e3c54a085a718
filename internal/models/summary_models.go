package models

// SentimentGroup is one entry of the per-label distribution. Every known
// label is present in the group list, including zero-count ones.
type SentimentGroup struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
}

// NotableComment is the highest-voted exemplar for one sentiment label.
type NotableComment struct {
	CommentID string `json:"comment_id"`
	Snippet   string `json:"snippet"`
	Sentiment string `json:"sentiment"`
	Score     int    `json:"score"`
}

// AnalysisSummary is the response delivered to the transport layer.
type AnalysisSummary struct {
	PostTitle        string           `json:"post_title"`
	OverallSentiment string           `json:"overall_sentiment"`
	Groups           []SentimentGroup `json:"groups"`
	Controversy      float64          `json:"controversy"`
	Keywords         []string         `json:"keywords"`
	Notable          []NotableComment `json:"notable"`
}
