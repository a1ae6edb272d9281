// Package geomutil provides the planar geometry primitives ANIME's matcher
// is built on: segments, their bounding rectangles, slopes, lengths, and the
// Euclidean distance between two segments.
//
// Coordinates are represented with github.com/paulmach/orb's Point and
// LineString types, so callers that already hold orb geometries (the
// convention used throughout this corpus) don't need to convert.
//
// Slope follows IEEE-754 for the degenerate cases: a vertical segment has
// slope ±Inf, a zero-length segment has slope NaN. Callers comparing slopes
// in degrees must treat NaN as "never within tolerance" — see Slope.Degrees.
package geomutil

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a planar coordinate.
type Point = orb.Point

// Segment is a directed pair of endpoints.
type Segment struct {
	A, B Point
}

// NewSegment builds a Segment from two points.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// DX returns B.X() - A.X().
func (s Segment) DX() float64 { return s.B.X() - s.A.X() }

// DY returns B.Y() - A.Y().
func (s Segment) DY() float64 { return s.B.Y() - s.A.Y() }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx, dy := s.DX(), s.DY()
	return math.Hypot(dx, dy)
}

// Bound returns the segment's axis-aligned tight bounding rectangle.
func (s Segment) Bound() orb.Bound {
	minX, maxX := s.A.X(), s.B.X()
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.A.Y(), s.B.Y()
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}}
}

// PaddedBound returns the segment's bounding rectangle expanded by d in
// both axes. d must be nonnegative; a negative d shrinks the rectangle,
// which is never meaningful for a corridor radius and is the caller's
// responsibility to avoid.
func (s Segment) PaddedBound(d float64) orb.Bound {
	b := s.Bound()
	return orb.Bound{
		Min: orb.Point{b.Min.X() - d, b.Min.Y() - d},
		Max: orb.Point{b.Max.X() + d, b.Max.Y() + d},
	}
}

// Slope computes the segment's slope dy/dx, following IEEE-754 division:
// ±Inf for a vertical segment, NaN for a zero-length segment.
func (s Segment) Slope() Slope {
	return Slope(s.DY() / s.DX())
}

// Slope is a segment slope as a plain ratio (dy/dx). Use Degrees to convert
// to the angle used by the matcher's angle gate.
type Slope float64

// Degrees converts the slope to degrees via atan(m)*180/π. A vertical slope
// (±Inf) maps to ±90°; a degenerate (NaN) slope maps to NaN, which compares
// false against any tolerance and so is never treated as "same direction".
func (m Slope) Degrees() float64 {
	return math.Atan(float64(m)) * 180 / math.Pi
}

// Shallow reports whether the segment is "mostly horizontal": its slope's
// angle magnitude is at most 45°. NaN is never shallow (nor steep).
func (m Slope) Shallow() bool {
	d := m.Degrees()
	return math.Abs(d) <= 45
}
