// Package spatial builds the two R*-trees the matcher queries: a tight
// index over source segments and a padded index over target segments.
//
// Both indexes are bulk-built once from a whole slice of polylines and
// expose no Insert of their own — matching the "bulk loading is required;
// incremental insertion is not part of the contract" rule. This is the
// package that finally exercises github.com/tidwall/rtree, a dependency
// the teacher repo carried in go.mod but never imported.
package spatial

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"github.com/azybler/anime/pkg/geomutil"
)

// Leaf is one R*-tree entry: a single segment of a polyline feature, with
// its feature index and slope cached so the matcher never recomputes them.
type Leaf struct {
	FeatureIndex int
	Slope        geomutil.Slope
	Seg          geomutil.Segment
}

// decompose splits a polyline into its component segments and accumulates
// its total Euclidean length.
func decompose(line orb.LineString) (segs []geomutil.Segment, length float64) {
	for i := 0; i+1 < len(line); i++ {
		s := geomutil.NewSegment(line[i], line[i+1])
		segs = append(segs, s)
		length += s.Length()
	}
	return segs, length
}

// SourceIndex is the R*-tree over source segments, using tight envelopes.
type SourceIndex struct {
	tree rtree.RTreeG[Leaf]
	n    int
}

// NewSourceIndex bulk-builds a SourceIndex from the given source polylines,
// in iteration order, and returns the per-feature total length alongside it.
func NewSourceIndex(features []orb.LineString) (*SourceIndex, []float64) {
	idx := &SourceIndex{}
	lens := make([]float64, len(features))
	for i, f := range features {
		segs, length := decompose(f)
		lens[i] = length
		for _, s := range segs {
			leaf := Leaf{FeatureIndex: i, Slope: s.Slope(), Seg: s}
			b := s.Bound()
			idx.tree.Insert([2]float64{b.Min.X(), b.Min.Y()}, [2]float64{b.Max.X(), b.Max.Y()}, leaf)
			idx.n++
		}
	}
	return idx, lens
}

// Len returns the number of segment leaves in the index.
func (si *SourceIndex) Len() int { return si.n }

// Scan visits every leaf in the index. Iteration order is deterministic for
// a given input (fixed bulk-insert order), which is what gives the matcher
// its deterministic candidate-pair emission order.
func (si *SourceIndex) Scan(fn func(Leaf) bool) {
	si.tree.Scan(func(_, _ [2]float64, data Leaf) bool {
		return fn(data)
	})
}

// TargetIndex is the R*-tree over target segments, using envelopes padded
// by the corridor's distance tolerance. The leaf's own Seg stays the tight
// segment — only the index envelope is grown, so later tight-bound overlap
// tests (§4.4 step 3) are unaffected by the padding.
type TargetIndex struct {
	tree rtree.RTreeG[Leaf]
	n    int
}

// NewTargetIndex bulk-builds a TargetIndex from the given target polylines,
// padding each segment's envelope by distanceTolerance, and returns the
// per-feature total length alongside it.
func NewTargetIndex(features []orb.LineString, distanceTolerance float64) (*TargetIndex, []float64) {
	idx := &TargetIndex{}
	lens := make([]float64, len(features))
	for i, f := range features {
		segs, length := decompose(f)
		lens[i] = length
		for _, s := range segs {
			leaf := Leaf{FeatureIndex: i, Slope: s.Slope(), Seg: s}
			b := s.PaddedBound(distanceTolerance)
			idx.tree.Insert([2]float64{b.Min.X(), b.Min.Y()}, [2]float64{b.Max.X(), b.Max.Y()}, leaf)
			idx.n++
		}
	}
	return idx, lens
}

// Len returns the number of segment leaves in the index.
func (ti *TargetIndex) Len() int { return ti.n }

// Search visits every leaf whose padded envelope intersects the given
// bound.
func (ti *TargetIndex) Search(bound orb.Bound, fn func(Leaf) bool) {
	min := [2]float64{bound.Min.X(), bound.Min.Y()}
	max := [2]float64{bound.Max.X(), bound.Max.Y()}
	ti.tree.Search(min, max, func(_, _ [2]float64, data Leaf) bool {
		return fn(data)
	})
}
