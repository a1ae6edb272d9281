package geomutil

import "math"

// PointToSegmentDistance returns the perpendicular (clamped) distance from
// p to segment s, and the projection ratio along s in [0, 1].
//
// Generalized from the teacher's geographic PointToSegmentDist: the
// projection-and-clamp algorithm is identical, but here the inputs are
// already planar so there is no cosine-of-latitude correction.
func PointToSegmentDistance(p Point, s Segment) (dist, ratio float64) {
	dx, dy := s.DX(), s.DY()
	lenSq := dx*dx + dy*dy

	if lenSq == 0 {
		return dEuclid(p, s.A), 0
	}

	t := ((p.X()-s.A.X())*dx + (p.Y()-s.A.Y())*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point{s.A.X() + t*dx, s.A.Y() + t*dy}
	return dEuclid(p, closest), t
}

func dEuclid(a, b Point) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return math.Hypot(dx, dy)
}

// SegmentDistance returns the Euclidean distance between two segments: the
// minimum of the four vertex-to-segment distances, or 0 if the segments
// intersect.
func SegmentDistance(a, b Segment) float64 {
	if segmentsIntersect(a, b) {
		return 0
	}

	d1, _ := PointToSegmentDistance(a.A, b)
	d2, _ := PointToSegmentDistance(a.B, b)
	d3, _ := PointToSegmentDistance(b.A, a)
	d4, _ := PointToSegmentDistance(b.B, a)

	min := d1
	if d2 < min {
		min = d2
	}
	if d3 < min {
		min = d3
	}
	if d4 < min {
		min = d4
	}
	return min
}

// orientation returns the cross product (q-p) x (r-p), whose sign is
// positive for counterclockwise, negative for clockwise, zero for collinear.
func orientation(p, q, r Point) float64 {
	return (q.X()-p.X())*(r.Y()-p.Y()) - (q.Y()-p.Y())*(r.X()-p.X())
}

// onSegment reports whether q, known collinear with p and r, lies within
// the bounding rectangle of segment p-r.
func onSegment(p, q, r Point) bool {
	return q.X() <= max(p.X(), r.X()) && q.X() >= min(p.X(), r.X()) &&
		q.Y() <= max(p.Y(), r.Y()) && q.Y() >= min(p.Y(), r.Y())
}

// segmentsIntersect reports whether segments a and b share at least one
// point, using the standard orientation-based test (handles the collinear
// overlap case via onSegment).
func segmentsIntersect(a, b Segment) bool {
	o1 := orientation(a.A, a.B, b.A)
	o2 := orientation(a.A, a.B, b.B)
	o3 := orientation(b.A, b.B, a.A)
	o4 := orientation(b.A, b.B, a.B)

	if sign(o1) != sign(o2) && sign(o3) != sign(o4) {
		return true
	}

	if o1 == 0 && onSegment(a.A, b.A, a.B) {
		return true
	}
	if o2 == 0 && onSegment(a.A, b.B, a.B) {
		return true
	}
	if o3 == 0 && onSegment(b.A, a.A, b.B) {
		return true
	}
	if o4 == 0 && onSegment(b.A, a.B, b.B) {
		return true
	}
	return false
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
