// Package interp implements ANIME's two attribute-transfer formulas over a
// populated match store: extensive (length-weighted sum) and intensive
// (length-weighted mean). Both share one entry point dispatched on a mode
// tag, per the source's explicit preference for a two-variant tag over an
// interface with one implementation per variant.
package interp

import (
	"errors"
	"math"

	"github.com/azybler/anime/pkg/match"
)

// Mode selects the interpolation formula.
type Mode int

const (
	// ModeExtensive is the length-weighted sum, appropriate for count-like
	// quantities (totals, counts).
	ModeExtensive Mode = iota
	// ModeIntensive is the length-weighted mean, appropriate for
	// rates/densities.
	ModeIntensive
)

var (
	// ErrIncorrectLength is returned when y's length does not match the
	// number of source features.
	ErrIncorrectLength = errors.New("interp: y length does not match source length")
	// ErrContainsNull is returned when y contains a value with no sensible
	// numeric interpretation (±Inf). NaN and the finite-max sentinel are
	// not null: they are the two defined missing-data markers and are
	// silently skipped during accumulation instead.
	ErrContainsNull = errors.New("interp: y contains a null value")
)

// sentinelMissing reports whether v is one of the two defined "missing
// source value" markers: NaN, or the IEEE-754 maximum finite float64. Both
// are skipped during accumulation rather than treated as an error; R-style
// callers commonly emit either one for NA.
func sentinelMissing(v float64) bool {
	return math.IsNaN(v) || v == math.MaxFloat64
}

// Interpolate transfers y (one value per source feature, in source_lens
// order) onto the targets of a populated store, per mode. entries must come
// from a store that has already run FindMatches; sourceLens and targetLens
// are the engine's full per-feature length arrays.
//
// y must have exactly len(sourceLens) elements and must contain no ±Inf
// value. Entries missing a candidate for a given target contribute a
// result of 0.
func Interpolate(entries []match.Entry, sourceLens, targetLens []float64, mode Mode, y []float64) ([]float64, error) {
	if len(y) != len(sourceLens) {
		return nil, ErrIncorrectLength
	}
	for _, v := range y {
		if math.IsInf(v, 0) {
			return nil, ErrContainsNull
		}
	}

	out := make([]float64, len(targetLens))
	for _, e := range entries {
		switch mode {
		case ModeIntensive:
			out[e.TargetIndex] = intensive(e, targetLens, y)
		default:
			out[e.TargetIndex] = extensive(e, sourceLens, y)
		}
	}
	return out, nil
}

// extensive computes ŷ_j = Σᵢ (SL_ij / source_lens[i]) · y_i.
func extensive(e match.Entry, sourceLens, y []float64) float64 {
	var acc float64
	for _, c := range e.Candidates {
		sv := y[c.SourceIndex]
		if sentinelMissing(sv) {
			continue
		}
		wt := c.SharedLen / sourceLens[c.SourceIndex]
		acc += sv * wt
	}
	return acc
}

// intensive computes ŷ_j = (Σᵢ w_ij · y_i) / (Σᵢ w_ij), w_ij = SL_ij /
// target_lens[j], or 0 if the denominator is not positive.
func intensive(e match.Entry, targetLens, y []float64) float64 {
	targetLen := targetLens[e.TargetIndex]

	var num, den float64
	for _, c := range e.Candidates {
		sv := y[c.SourceIndex]
		if sentinelMissing(sv) {
			continue
		}
		wt := c.SharedLen / targetLen
		num += sv * wt
		den += wt
	}
	if den > 0 {
		return num / den
	}
	return 0
}
