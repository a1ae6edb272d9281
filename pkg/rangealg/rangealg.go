// Package rangealg implements the 1-D interval algebra the matcher uses to
// turn a bounding-rectangle overlap back into two points on a source
// segment's supporting line.
package rangealg

import "math"

// Interval is a half-open real interval [Lo, Hi).
type Interval struct {
	Lo, Hi float64
}

// Overlap returns the intersection of a and b. Touching intervals (one's Hi
// equals the other's Lo) still overlap, yielding a zero-width interval.
func Overlap(a, b Interval) (Interval, bool) {
	if a.Hi < b.Lo || b.Hi < a.Lo {
		return Interval{}, false
	}
	lo := a.Lo
	if b.Lo > lo {
		lo = b.Lo
	}
	hi := a.Hi
	if b.Hi < hi {
		hi = b.Hi
	}
	return Interval{Lo: lo, Hi: hi}, true
}

// Point2 is a plain 2-D point, kept independent of geomutil/orb so this
// package has no geometry dependency of its own.
type Point2 struct {
	X, Y float64
}

// SolveShallow reconstructs the two endpoints of an x-overlap on the line
// y = m*x + b, given one known point (knownX, knownY) on that line and its
// slope m. Used when the source segment is mostly horizontal.
func SolveShallow(xOverlap Interval, knownX, knownY, m float64) (p1, p2 Point2) {
	b := knownY - m*knownX
	y1 := m*xOverlap.Lo + b
	y2 := m*xOverlap.Hi + b
	return Point2{X: xOverlap.Lo, Y: y1}, Point2{X: xOverlap.Hi, Y: y2}
}

// SolveSteep reconstructs the two endpoints of a y-overlap on the line
// y = m*x + b, given one known point (knownX, knownY) on that line and its
// slope m. Used when the source segment is mostly vertical. When m is ±Inf
// or NaN, x is pinned to knownX (a vertical line).
func SolveSteep(yOverlap Interval, knownX, knownY, m float64) (p1, p2 Point2) {
	if isInfOrNaN(m) {
		return Point2{X: knownX, Y: yOverlap.Lo}, Point2{X: knownX, Y: yOverlap.Hi}
	}
	b := knownY - m*knownX
	x1 := (yOverlap.Lo - b) / m
	x2 := (yOverlap.Hi - b) / m
	return Point2{X: x1, Y: yOverlap.Lo}, Point2{X: x2, Y: yOverlap.Hi}
}

func isInfOrNaN(m float64) bool {
	return math.IsNaN(m) || math.IsInf(m, 0)
}
