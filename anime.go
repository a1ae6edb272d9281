// Package anime implements ANIME — Approximate Network Matching,
// Integration, and Enrichment — for one-dimensional linear networks
// embedded in the plane. Given a source polyline network and a target
// polyline network, it finds for each target which source polylines
// overlap it in the same direction and within a distance corridor,
// quantifies the shared length, and transfers numeric attributes from
// source to target using that shared length as the interpolation weight.
package anime

import (
	"log"

	"github.com/paulmach/orb"

	"github.com/azybler/anime/pkg/interp"
	"github.com/azybler/anime/pkg/match"
	"github.com/azybler/anime/pkg/spatial"
)

// Config holds the tolerances an engine is built with, mirroring the
// teacher's small options-struct-with-defaults convention.
type Config struct {
	// DistanceTolerance is the maximum corridor width (in the input's
	// planar units) within which a target may match a source.
	DistanceTolerance float64
	// AngleTolerance is the maximum slope-angle difference, in degrees,
	// within which a target may match a source.
	AngleTolerance float64
}

// DefaultConfig returns the tolerances used across the end-to-end
// scenarios this engine was validated against: a half-unit corridor and a
// five-degree angle window.
func DefaultConfig() Config {
	return Config{DistanceTolerance: 0.5, AngleTolerance: 5.0}
}

// Stats summarizes a completed match run: how many candidates were found
// in total, how many targets matched nothing, and the mean shared length
// across all candidates. The core engine itself has no such notion in its
// tabular export; Stats is a convenience view over the same state.
type Stats struct {
	TotalCandidates  int
	TargetsUnmatched int
	MeanSharedLength float64
}

// Engine holds the built spatial indexes, length bookkeeping, and match
// store for one source/target network pair. An Engine is safe to share
// for concurrent reads once FindMatches has completed; before that it
// must not be shared for write (see the single matcher run invariant
// below).
type Engine struct {
	cfg Config

	source *spatial.SourceIndex
	target *spatial.TargetIndex

	sourceLens []float64
	targetLens []float64
	targetN    int

	store match.Store
}

// Load builds the engine's spatial indexes and length arrays but leaves
// the match store empty; call FindMatches to populate it. This is the
// lazy constructor of the engine's lifecycle.
func Load(source, target []orb.LineString, cfg Config) *Engine {
	srcIdx, srcLens := spatial.NewSourceIndex(source)
	tgtIdx, tgtLens := spatial.NewTargetIndex(target, cfg.DistanceTolerance)

	log.Printf("anime: loaded %d source and %d target features (distance_tol=%.4g, angle_tol=%.4g)",
		len(source), len(target), cfg.DistanceTolerance, cfg.AngleTolerance)

	return &Engine{
		cfg:        cfg,
		source:     srcIdx,
		target:     tgtIdx,
		sourceLens: srcLens,
		targetLens: tgtLens,
		targetN:    len(target),
	}
}

// Build constructs an engine and runs the matcher immediately. This is the
// eager constructor; unlike Load it never returns an unmatched engine.
func Build(source, target []orb.LineString, cfg Config) *Engine {
	e := Load(source, target, cfg)
	if err := e.FindMatches(); err != nil {
		// Build is only ever called on a freshly loaded engine, so the
		// only possible failure (already matched) cannot occur here.
		panic(err)
	}
	return e
}

// FindMatches runs the candidate matcher once over the engine's indexes.
// A second call returns an *AlreadyMatchedError carrying the existing
// store instead of re-running.
func (e *Engine) FindMatches() error {
	if e.store.IsSet() {
		return &AlreadyMatchedError{Existing: &e.store}
	}

	entries := match.FindMatches(e.source, e.target, e.cfg.DistanceTolerance, e.cfg.AngleTolerance)
	e.store.Set(entries)

	stats := e.computeStats(entries)
	log.Printf("anime: matched %d targets, %d candidates, %d targets unmatched, mean shared length %.4g",
		len(entries), stats.TotalCandidates, stats.TargetsUnmatched, stats.MeanSharedLength)

	return nil
}

// Matches returns the match store's entries in ascending target-index
// order, or (nil, false) if FindMatches has not run yet.
func (e *Engine) Matches() ([]match.Entry, bool) {
	return e.store.Get()
}

// Export produces one tabular row per match candidate: source_id,
// target_id, shared_len, source_weighted, target_weighted. Row order
// follows match-store iteration order.
func (e *Engine) Export() ([]match.Row, error) {
	rows, ok := match.Export(&e.store, e.sourceLens, e.targetLens)
	if !ok {
		return nil, ErrMatchesNotFound
	}
	return rows, nil
}

// Interpolate transfers a source-aligned attribute vector y onto the
// targets, using mode's formula and shared length as the weight.
func (e *Engine) Interpolate(mode interp.Mode, y []float64) ([]float64, error) {
	entries, ok := e.store.Get()
	if !ok {
		return nil, ErrMatchesNotFound
	}
	out, err := interp.Interpolate(entries, e.sourceLens, e.targetLens, mode, y)
	if err != nil {
		return nil, adaptInterpError(err)
	}
	return out, nil
}

// Stats summarizes the match run so far. Before FindMatches has run, it
// reports every target as unmatched and zero candidates.
func (e *Engine) Stats() Stats {
	entries, ok := e.store.Get()
	if !ok {
		return Stats{TargetsUnmatched: e.targetN}
	}
	return e.computeStats(entries)
}

func (e *Engine) computeStats(entries []match.Entry) Stats {
	var total int
	var sumShared float64
	matchedTargets := make(map[int]bool, len(entries))

	for _, entry := range entries {
		matchedTargets[entry.TargetIndex] = true
		for _, c := range entry.Candidates {
			total++
			sumShared += c.SharedLen
		}
	}

	mean := 0.0
	if total > 0 {
		mean = sumShared / float64(total)
	}

	return Stats{
		TotalCandidates:  total,
		TargetsUnmatched: e.targetN - len(matchedTargets),
		MeanSharedLength: mean,
	}
}

// SourceLens and TargetLens expose the engine's per-feature length
// bookkeeping, read-only, for callers that want to validate §8's length
// invariants themselves or build their own interpolation inputs.
func (e *Engine) SourceLens() []float64 { return e.sourceLens }
func (e *Engine) TargetLens() []float64 { return e.targetLens }
