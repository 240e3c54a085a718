package sentiment

import (
	"sort"

	"github.com/zmckinney22/CS410-Group-Project/internal/models"
	"github.com/zmckinney22/CS410-Group-Project/internal/normalize"
)

// minKeywordLength drops short function words before the stopword check.
const minKeywordLength = 4

// keywordStopwords are frequent thread words that carry no topical signal.
// Tokens shorter than minKeywordLength are already excluded, so only
// longer forms appear here.
var keywordStopwords = map[string]struct{}{
	"this": {}, "that": {}, "these": {}, "those": {}, "there": {},
	"their": {}, "theyre": {}, "them": {}, "then": {}, "than": {},
	"with": {}, "without": {}, "would": {}, "could": {}, "should": {},
	"have": {}, "having": {}, "been": {}, "being": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"your": {}, "youre": {}, "yours": {}, "from": {}, "into": {},
	"just": {}, "like": {}, "only": {}, "some": {}, "such": {},
	"about": {}, "after": {}, "before": {}, "because": {}, "between": {},
	"people": {}, "thing": {}, "things": {}, "really": {}, "very": {},
	"more": {}, "most": {}, "much": {}, "many": {}, "even": {},
	"also": {}, "still": {}, "will": {}, "dont": {}, "doesnt": {},
	"didnt": {}, "cant": {}, "does": {}, "deleted": {}, "removed": {},
}

// ExtractKeywords counts token frequency across all comment bodies and
// returns the top limit tokens by descending frequency. Ties keep
// first-encountered order (stable sort).
func ExtractKeywords(comments []models.Comment, limit int) []string {
	counts := make(map[string]int)
	var order []string

	for _, c := range comments {
		for _, tok := range normalize.Normalize(c.Body) {
			if len(tok) < minKeywordLength {
				continue
			}
			if _, stop := keywordStopwords[tok]; stop {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}
