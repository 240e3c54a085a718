package sentiment

import (
	"log/slog"

	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
	"github.com/zmckinney22/CS410-Group-Project/internal/models"
	"github.com/zmckinney22/CS410-Group-Project/internal/normalize"
)

const (
	snippetBudget   = 150
	snippetEllipsis = "..."
	keywordLimit    = 10
)

// ScoredComment pairs a comment with its assigned label and the signed
// score that produced it. It lives only for the duration of one analysis.
type ScoredComment struct {
	Comment models.Comment
	Label   Label
	Value   float64
}

// Group is one entry of the per-label distribution.
type Group struct {
	Label      Label
	Count      int
	Proportion float64
}

// Exemplar is the highest-voted comment of one label partition, already
// truncated to the snippet budget.
type Exemplar struct {
	CommentID string
	Snippet   string
	Label     Label
	Score     int
}

// Summary is the aggregate over one thread's comments.
type Summary struct {
	Overall     Label
	Groups      []Group
	Controversy float64
	Keywords    []string
	Notable     []Exemplar
	Total       int
}

// Summarize scores every comment in the thread and derives the label
// distribution, controversy score, keywords, and notable exemplars.
// A failure scoring one comment never aborts the batch: the comment is
// logged and counted as NEUTRAL with zero score.
func Summarize(thread models.Thread, lex *lexicon.Lexicon, p Params) Summary {
	counts := make(map[Label]int, 4)
	for _, l := range AllLabels() {
		counts[l] = 0
	}

	scored := make([]ScoredComment, 0, len(thread.Comments))
	for _, c := range thread.Comments {
		sc := scoreComment(c, lex, p)
		scored = append(scored, sc)
		counts[sc.Label]++
	}

	total := len(scored)
	groups := make([]Group, 0, len(counts))
	for _, l := range AllLabels() {
		proportion := 0.0
		if total > 0 {
			proportion = float64(counts[l]) / float64(total)
		}
		groups = append(groups, Group{Label: l, Count: counts[l], Proportion: proportion})
	}

	return Summary{
		Overall:     OverallLabel(counts, total),
		Groups:      groups,
		Controversy: controversy(counts[LabelPositive], counts[LabelNegative], total),
		Keywords:    ExtractKeywords(thread.Comments, keywordLimit),
		Notable:     notableComments(scored),
		Total:       total,
	}
}

// scoreComment isolates per-comment failures: a panic inside the pipeline
// downgrades the comment to NEUTRAL/0 instead of breaking the thread.
func scoreComment(c models.Comment, lex *lexicon.Lexicon, p Params) (sc ScoredComment) {
	sc = ScoredComment{Comment: c, Label: LabelNeutral}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Aggregator] Failed to score comment, treating as neutral",
				slog.String("comment_id", c.CommentID),
				slog.Any("panic", r))
			sc = ScoredComment{Comment: c, Label: LabelNeutral}
		}
	}()

	label, value := ScoreTokens(normalize.Normalize(c.Body), lex, p)
	sc.Label = label
	sc.Value = value
	return sc
}

// OverallLabel picks the label with the strictly highest count. Ties break
// by the fixed priority positive > negative > mixed > neutral. Zero
// comments mean NEUTRAL by definition.
func OverallLabel(counts map[Label]int, total int) Label {
	if total == 0 {
		return LabelNeutral
	}
	best := LabelNeutral
	bestCount := -1
	for _, l := range labelPriority {
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}
	return best
}

// controversy is pos*neg/total². It lives in [0, 0.25]: 0 means consensus,
// 0.25 means an even positive/negative split.
func controversy(positive, negative, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(positive*negative) / float64(total*total)
}

// notableComments selects, per non-empty label partition, the comment with
// the highest raw vote score. First-encountered order breaks ties. Labels
// with zero members produce no entry.
func notableComments(scored []ScoredComment) []Exemplar {
	best := make(map[Label]ScoredComment, 4)
	for _, sc := range scored {
		cur, ok := best[sc.Label]
		if !ok || sc.Comment.Score > cur.Comment.Score {
			best[sc.Label] = sc
		}
	}

	notable := make([]Exemplar, 0, len(best))
	for _, l := range AllLabels() {
		sc, ok := best[l]
		if !ok {
			continue
		}
		notable = append(notable, Exemplar{
			CommentID: sc.Comment.CommentID,
			Snippet:   truncateSnippet(sc.Comment.Body),
			Label:     l,
			Score:     sc.Comment.Score,
		})
	}
	return notable
}

// truncateSnippet cuts a body to the snippet budget, appending the
// ellipsis marker only when something was actually cut.
func truncateSnippet(body string) string {
	runes := []rune(body)
	if len(runes) <= snippetBudget {
		return body
	}
	return string(runes[:snippetBudget]) + snippetEllipsis
}
