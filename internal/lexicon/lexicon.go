// Package lexicon loads and merges the word-to-polarity sources the scorer
// runs on: the binary opinion lexicon plus the optional SocialSent
// community lexicons with continuous scores.
//
// A Lexicon is immutable once built and safe to share across concurrent
// analyses without locking.
package lexicon

import "errors"

// ErrMissingBase is returned when a base word list cannot be read. The
// engine cannot operate without one, so callers should treat it as fatal.
var ErrMissingBase = errors.New("lexicon: base word list missing")

type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
	weighted map[string]float64

	community      string
	degraded       string
	removedOverlap []string
}

// New builds a Lexicon from in-memory word lists. Words present in both
// polarity sets are dropped from both; the curated overrides are applied
// afterwards and always win. weighted may be nil for binary-only scoring.
func New(positive, negative []string, weighted map[string]float64) *Lexicon {
	lex := &Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		lex.positive[w] = struct{}{}
	}
	for _, w := range negative {
		lex.negative[w] = struct{}{}
	}
	lex.dropOverlap()
	lex.applyOverrides()
	if weighted != nil {
		lex.weighted = rescale(weighted)
	}
	return lex
}

// Polarity reports the binary polarity of a word form: +1 positive,
// -1 negative, 0 unknown.
func (l *Lexicon) Polarity(word string) int {
	if _, ok := l.positive[word]; ok {
		return 1
	}
	if _, ok := l.negative[word]; ok {
		return -1
	}
	return 0
}

// Weight returns the continuous community score of a word, if the weighted
// lexicon is loaded and carries the word.
func (l *Lexicon) Weight(word string) (float64, bool) {
	if l.weighted == nil {
		return 0, false
	}
	w, ok := l.weighted[word]
	return w, ok
}

// HasWeighted reports whether continuous scores are available.
func (l *Lexicon) HasWeighted() bool { return l.weighted != nil }

// Community returns the weighted-lexicon partition that was loaded, or ""
// for the general fallback or binary-only operation.
func (l *Lexicon) Community() string { return l.community }

// Degraded returns the reason weighted scoring is unavailable even though
// it was requested, or "" when nothing was lost.
func (l *Lexicon) Degraded() string { return l.degraded }

// RemovedOverlap lists the words that appeared in both base lists and were
// dropped from both at load time.
func (l *Lexicon) RemovedOverlap() []string { return l.removedOverlap }

// Sizes reports the word counts of the loaded sources.
func (l *Lexicon) Sizes() (positive, negative, weighted int) {
	return len(l.positive), len(l.negative), len(l.weighted)
}

func (l *Lexicon) dropOverlap() {
	var overlap []string
	for w := range l.positive {
		if _, ok := l.negative[w]; ok {
			overlap = append(overlap, w)
		}
	}
	for _, w := range overlap {
		delete(l.positive, w)
		delete(l.negative, w)
	}
	l.removedOverlap = overlap
}

// applyOverrides force-assigns curated domain words to a polarity,
// regardless of what the base lists said.
func (l *Lexicon) applyOverrides() {
	for _, w := range positiveOverrides {
		delete(l.negative, w)
		l.positive[w] = struct{}{}
	}
	for _, w := range negativeOverrides {
		delete(l.positive, w)
		l.negative[w] = struct{}{}
	}
}

var positiveOverrides = []string{
	"fun", "funny", "excited", "love", "happy", "good", "cool", "amazing",
}

var negativeOverrides = []string{
	"sad", "very_sad", "angry", "bad", "disgust", "suspicious", "shock", "disappointed",
}

// rescale maps all scores into [-1, 1] by dividing by the maximum absolute
// value when any score falls outside the range.
func rescale(scores map[string]float64) map[string]float64 {
	maxAbs := 0.0
	for _, s := range scores {
		if a := abs(s); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs <= 1 {
		return scores
	}
	scaled := make(map[string]float64, len(scores))
	for w, s := range scores {
		scaled[w] = s / maxAbs
	}
	return scaled
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
