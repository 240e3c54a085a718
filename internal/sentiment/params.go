package sentiment

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrInvalidParams marks contradictory engine configuration. Construction
// fails fast; there is no partial operation with bad thresholds.
var ErrInvalidParams = errors.New("sentiment: invalid params")

// Params is the engine configuration surface.
type Params struct {
	// UseWeighted blends the SocialSent community scores into the binary
	// polarity when the weighted lexicon is loaded.
	UseWeighted bool

	// Community selects the weighted-lexicon partition.
	Community string

	// PositiveThreshold and NegativeThreshold bound the NEUTRAL band of
	// the signed token-score sum.
	PositiveThreshold float64
	NegativeThreshold float64

	// NegationWindow is how many preceding tokens are examined for a
	// negation word.
	NegationWindow int

	// NegationFlipWeight scales a flipped score; 1.0 is a full flip,
	// smaller values model partial negation.
	NegationFlipWeight float64

	// BlendWeight w combines binary and weighted polarity as
	// (1-w)*binary + w*weighted when both are present.
	BlendWeight float64

	// MixedMargin is the near-cancellation band: when both positive and
	// negative totals are nonzero and |sum| falls below it, the text is
	// MIXED.
	MixedMargin float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		UseWeighted:        false,
		PositiveThreshold:  0.01,
		NegativeThreshold:  -0.01,
		NegationWindow:     2,
		NegationFlipWeight: 1.0,
		BlendWeight:        0.3,
		MixedMargin:        0.05,
	}
}

// Validate rejects contradictory combinations before any scoring happens.
func (p Params) Validate() error {
	if p.PositiveThreshold <= p.NegativeThreshold {
		return fmt.Errorf("%w: positive_threshold %.3f <= negative_threshold %.3f",
			ErrInvalidParams, p.PositiveThreshold, p.NegativeThreshold)
	}
	if p.NegationWindow < 0 {
		return fmt.Errorf("%w: negation_window %d < 0", ErrInvalidParams, p.NegationWindow)
	}
	if p.NegationFlipWeight < 0 || p.NegationFlipWeight > 1 {
		return fmt.Errorf("%w: negation_flip_weight %.3f outside [0,1]", ErrInvalidParams, p.NegationFlipWeight)
	}
	if p.BlendWeight < 0 || p.BlendWeight > 1 {
		return fmt.Errorf("%w: weighted_blend_weight %.3f outside [0,1]", ErrInvalidParams, p.BlendWeight)
	}
	if p.MixedMargin < 0 {
		return fmt.Errorf("%w: mixed_margin %.3f < 0", ErrInvalidParams, p.MixedMargin)
	}
	return nil
}

// ParamsFromEnv builds Params from environment variables, keeping the
// defaults for anything unset, and validates the result.
func ParamsFromEnv() (Params, error) {
	p := DefaultParams()
	p.UseWeighted = os.Getenv("USE_WEIGHTED_LEXICON") == "true"
	p.Community = os.Getenv("COMMUNITY_CONTEXT")
	envFloat("POSITIVE_THRESHOLD", &p.PositiveThreshold)
	envFloat("NEGATIVE_THRESHOLD", &p.NegativeThreshold)
	envInt("NEGATION_WINDOW", &p.NegationWindow)
	envFloat("NEGATION_FLIP_WEIGHT", &p.NegationFlipWeight)
	envFloat("WEIGHTED_BLEND_WEIGHT", &p.BlendWeight)
	envFloat("MIXED_MARGIN", &p.MixedMargin)
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
