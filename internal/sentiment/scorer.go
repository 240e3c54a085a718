package sentiment

import (
	"math"

	"github.com/zmckinney22/CS410-Group-Project/internal/lexicon"
)

// negationWords flip the sign of a polarity word appearing within the
// configured window after them.
var negationWords = map[string]struct{}{
	"not":   {},
	"never": {},
	"no":    {},
}

// modifierWeights are multiplicative intensity modifiers: >1 intensifies,
// <1 diminishes. The slang table canonicalizes "af"/"highkey" to "very"
// and "lowkey" to "slightly" before these apply.
var modifierWeights = map[string]float64{
	"very":       1.5,
	"extremely":  1.8,
	"absolutely": 1.8,
	"really":     1.3,
	"totally":    1.4,
	"so":         1.2,
	"slightly":   0.5,
	"somewhat":   0.7,
	"kinda":      0.6,
	"barely":     0.4,
	"hardly":     0.4,
}

// ScoreTokens assigns a label to a normalized token sequence and returns
// the signed score sum that produced it. An empty sequence is NEUTRAL
// without touching the lexicon.
func ScoreTokens(tokens []string, lex *lexicon.Lexicon, p Params) (Label, float64) {
	if len(tokens) == 0 {
		return LabelNeutral, 0
	}

	var posTotal, negTotal float64
	for i, tok := range tokens {
		base := tokenPolarity(tok, lex, p)
		if base == 0 {
			// Non-sentiment tokens contribute nothing, but they still
			// occupy window positions for later tokens.
			continue
		}

		start := i - p.NegationWindow
		if start < 0 {
			start = 0
		}
		negated := false
		modifier := 1.0
		for _, prev := range tokens[start:i] {
			if _, ok := negationWords[prev]; ok {
				negated = true
			}
			if w, ok := modifierWeights[prev]; ok {
				modifier *= w
			}
		}

		score := base * modifier
		if negated {
			score = -score * p.NegationFlipWeight
		}

		// Each token lands in exactly one total, by post-negation sign.
		if score > 0 {
			posTotal += score
		} else if score < 0 {
			negTotal += -score
		}
	}

	sum := posTotal - negTotal
	switch {
	case posTotal > 0 && negTotal > 0 && math.Abs(sum) < p.MixedMargin:
		return LabelMixed, sum
	case sum >= p.PositiveThreshold:
		return LabelPositive, sum
	case sum <= p.NegativeThreshold:
		return LabelNegative, sum
	default:
		return LabelNeutral, sum
	}
}

// tokenPolarity computes the base polarity of one token. The binary sign
// wins on disagreement; binary and weighted scores blend only when they
// agree or one source is silent.
func tokenPolarity(tok string, lex *lexicon.Lexicon, p Params) float64 {
	binary := float64(lex.Polarity(tok))

	var weighted float64
	if p.UseWeighted {
		if w, ok := lex.Weight(tok); ok {
			weighted = w
		}
	}

	switch {
	case binary != 0 && weighted != 0 && binary*weighted > 0:
		return (1-p.BlendWeight)*binary + p.BlendWeight*weighted
	case binary != 0:
		return binary
	default:
		return weighted
	}
}
