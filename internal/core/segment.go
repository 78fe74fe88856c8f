package core

import "math"

// SegmentsIntersect reports whether segment p0->p1 crosses segment p2->p3.
//
// Parameters are solved with Cramer's rule. Collinear and parallel segments
// never intersect, and the degeneracy checks compare exactly against zero.
// Touching endpoints count as an intersection.
func SegmentsIntersect(p0, p1, p2, p3 Vec2F) bool {
	return segmentsIntersect(p0, p1, p2, p3, 0)
}

// SegmentsIntersectTol is SegmentsIntersect with every zero test replaced by
// |x| <= eps and the parameter range widened to [-eps, 1+eps].
// With eps == 0 both functions agree.
func SegmentsIntersectTol(p0, p1, p2, p3 Vec2F, eps float64) bool {
	return segmentsIntersect(p0, p1, p2, p3, math.Abs(eps))
}

func segmentsIntersect(p0, p1, p2, p3 Vec2F, eps float64) bool {
	ta := (p3.X-p2.X)*(p0.Y-p2.Y) - (p3.Y-p2.Y)*(p0.X-p2.X)
	tb := (p1.X-p0.X)*(p0.Y-p2.Y) - (p1.Y-p0.Y)*(p0.X-p2.X)
	denom := (p3.Y-p2.Y)*(p1.X-p0.X) - (p3.X-p2.X)*(p1.Y-p0.Y)

	// Collinear: overlap is not detected.
	if isZero(ta, eps) && isZero(tb, eps) && isZero(denom, eps) {
		return false
	}
	// Parallel
	if isZero(denom, eps) {
		return false
	}

	ta /= denom
	tb /= denom

	return inUnit(ta, eps) && inUnit(tb, eps)
}

func isZero(v, eps float64) bool {
	if eps == 0 {
		return v == 0
	}
	return math.Abs(v) <= eps
}

func inUnit(t, eps float64) bool {
	return t >= -eps && t <= 1+eps
}
