package evaluation

import (
	"log/slog"

	"github.com/jonreiter/govader"

	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
	"github.com/zmckinney22/CS410-Group-Project/internal/normalize"
	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

// EngineClassifier classifies with the lexicon engine. With perCommunity
// set, a community-specific lexicon is built (and cached) for each
// example's subreddit; everything else shares the base lexicon.
func EngineClassifier(cfg lexicon.Config, params sentiment.Params, perCommunity bool) (Classifier, error) {
	base, err := lexicon.Load(cfg)
	if err != nil {
		return nil, err
	}

	cache := map[string]*lexicon.Lexicon{"": base}
	return func(ex Example) sentiment.Label {
		lex := base
		if perCommunity && ex.Community != "" {
			cached, ok := cache[ex.Community]
			if !ok {
				communityCfg := cfg
				communityCfg.Community = ex.Community
				loaded, err := lexicon.Load(communityCfg)
				if err != nil {
					slog.Warn("[Evaluation] Falling back to base lexicon",
						slog.String("community", ex.Community),
						slog.String("error", err.Error()))
					loaded = base
				}
				cache[ex.Community] = loaded
				cached = loaded
			}
			lex = cached
		}

		label, _ := sentiment.ScoreTokens(normalize.Normalize(ex.Text), lex, params)
		return label
	}, nil
}

// VADER label thresholds, matching the usual compound-score convention.
const (
	vaderPositiveThreshold = 0.20
	vaderNegativeThreshold = -0.20
)

// VADERClassifier is the rule-based baseline the engine is compared
// against. VADER has no MIXED class.
func VADERClassifier() Classifier {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return func(ex Example) sentiment.Label {
		compound := analyzer.PolarityScores(ex.Text).Compound
		switch {
		case compound >= vaderPositiveThreshold:
			return sentiment.LabelPositive
		case compound <= vaderNegativeThreshold:
			return sentiment.LabelNegative
		default:
			return sentiment.LabelNeutral
		}
	}
}
