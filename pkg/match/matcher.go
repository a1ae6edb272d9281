package match

import (
	"math"
	"sort"

	"github.com/azybler/anime/pkg/geomutil"
	"github.com/azybler/anime/pkg/rangealg"
	"github.com/azybler/anime/pkg/spatial"
)

// FindMatches runs the candidate matcher once over the given source and
// target indexes and returns the resulting entries in ascending
// target-index order.
//
// For every source leaf, it queries the target index for leaves whose
// padded envelope intersects the source leaf's tight envelope (this is
// the dual-tree traversal of §4.4 — target-side padding only widens the
// lookup, the gates below still compare tight bounds). Each candidate
// pair is then run through the angle gate, the geometric (overlap) gate,
// the distance gate, and finally the shared-length computation, which is
// accumulated into the target's candidate list.
//
// Grounded directly on the original implementation's find_candidate_matches.
func FindMatches(src *spatial.SourceIndex, tgt *spatial.TargetIndex, distanceTolerance, angleTolerance float64) []Entry {
	acc := make(map[int][]Candidate)

	src.Scan(func(s spatial.Leaf) bool {
		sBound := s.Seg.Bound()
		tgt.Search(sBound, func(t spatial.Leaf) bool {
			processPair(acc, s, t, distanceTolerance, angleTolerance)
			return true
		})
		return true
	})

	return sortedEntries(acc)
}

func processPair(acc map[int][]Candidate, s, t spatial.Leaf, distanceTolerance, angleTolerance float64) {
	xDeg := s.Slope.Degrees()
	yDeg := t.Slope.Degrees()

	// Angle gate. A NaN slope (degenerate segment) makes this comparison
	// false, discarding the pair — the intended behaviour for degenerate
	// input.
	if !(math.Abs(xDeg-yDeg) < angleTolerance) {
		return
	}

	sBound := s.Seg.Bound()
	tBound := t.Seg.Bound()

	xOverlap, xOk := rangealg.Overlap(
		rangealg.Interval{Lo: sBound.Min.X(), Hi: sBound.Max.X()},
		rangealg.Interval{Lo: tBound.Min.X(), Hi: tBound.Max.X()},
	)
	yOverlap, yOk := rangealg.Overlap(
		rangealg.Interval{Lo: sBound.Min.Y(), Hi: sBound.Max.Y()},
		rangealg.Interval{Lo: tBound.Min.Y(), Hi: tBound.Max.Y()},
	)

	// Geometric gate: discard only if neither axis overlaps.
	if !xOk && !yOk {
		return
	}

	// Distance gate, computed on the tight segments (the target's padding
	// played its only role above, widening the R-tree lookup).
	if geomutil.SegmentDistance(s.Seg, t.Seg) > distanceTolerance {
		return
	}

	sharedLen := sharedLength(s.Seg, s.Slope, xOverlap, xOk, yOverlap, yOk)

	accumulate(acc, t.FeatureIndex, s.FeatureIndex, sharedLen)
}

// sharedLength picks the shallow or steep axis per the source segment's
// slope and reconstructs the two endpoints on its supporting line.
func sharedLength(seg geomutil.Segment, slope geomutil.Slope, xOverlap rangealg.Interval, xOk bool, yOverlap rangealg.Interval, yOk bool) float64 {
	m := float64(slope)
	knownX, knownY := seg.A.X(), seg.A.Y()

	if slope.Shallow() {
		if !xOk {
			return 0
		}
		p1, p2 := rangealg.SolveShallow(xOverlap, knownX, knownY, m)
		return ptDist(p1, p2)
	}

	if !yOk {
		return 0
	}
	p1, p2 := rangealg.SolveSteep(yOverlap, knownX, knownY, m)
	return ptDist(p1, p2)
}

func ptDist(a, b rangealg.Point2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}

// accumulate locates an existing candidate for sourceIndex under
// targetIndex by linear scan and adds to it, or appends a new one.
func accumulate(acc map[int][]Candidate, targetIndex, sourceIndex int, sharedLen float64) {
	cands := acc[targetIndex]
	for i := range cands {
		if cands[i].SourceIndex == sourceIndex {
			cands[i].SharedLen += sharedLen
			return
		}
	}
	acc[targetIndex] = append(cands, Candidate{SourceIndex: sourceIndex, SharedLen: sharedLen})
}

func sortedEntries(acc map[int][]Candidate) []Entry {
	keys := make([]int, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{TargetIndex: k, Candidates: acc[k]}
	}
	return entries
}
