package core

import (
	"math"
	"testing"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 Vec2F
		expected       bool
	}{
		{
			name:     "crossing diagonals",
			p0:       V2(0.0, 0.0),
			p1:       V2(10.0, 10.0),
			p2:       V2(0.0, 10.0),
			p3:       V2(10.0, 0.0),
			expected: true,
		},
		{
			name:     "perpendicular cross",
			p0:       V2(0.0, 5.0),
			p1:       V2(10.0, 5.0),
			p2:       V2(5.0, 0.0),
			p3:       V2(5.0, 10.0),
			expected: true,
		},
		{
			name:     "touching endpoints",
			p0:       V2(0.0, 0.0),
			p1:       V2(5.0, 0.0),
			p2:       V2(5.0, 0.0),
			p3:       V2(5.0, 5.0),
			expected: true,
		},
		{
			name:     "T junction",
			p0:       V2(0.0, 0.0),
			p1:       V2(10.0, 0.0),
			p2:       V2(5.0, 0.0),
			p3:       V2(5.0, 8.0),
			expected: true,
		},
		{
			name:     "disjoint",
			p0:       V2(0.0, 0.0),
			p1:       V2(1.0, 1.0),
			p2:       V2(5.0, 0.0),
			p3:       V2(6.0, -4.0),
			expected: false,
		},
		{
			name:     "lines cross outside segment range",
			p0:       V2(0.0, 0.0),
			p1:       V2(1.0, 0.0),
			p2:       V2(5.0, -1.0),
			p3:       V2(5.0, 1.0),
			expected: false,
		},
		{
			name:     "parallel",
			p0:       V2(0.0, 0.0),
			p1:       V2(10.0, 0.0),
			p2:       V2(0.0, 1.0),
			p3:       V2(10.0, 1.0),
			expected: false,
		},
		{
			name:     "collinear overlapping",
			p0:       V2(0.0, 0.0),
			p1:       V2(10.0, 0.0),
			p2:       V2(5.0, 0.0),
			p3:       V2(15.0, 0.0),
			expected: false,
		},
		{
			name:     "collinear identical",
			p0:       V2(0.0, 0.0),
			p1:       V2(10.0, 0.0),
			p2:       V2(0.0, 0.0),
			p3:       V2(10.0, 0.0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SegmentsIntersect(tc.p0, tc.p1, tc.p2, tc.p3)
			if result != tc.expected {
				t.Errorf("SegmentsIntersect() = %v, expected %v", result, tc.expected)
			}
			// The test is symmetric in its two segments
			resultReverse := SegmentsIntersect(tc.p2, tc.p3, tc.p0, tc.p1)
			if resultReverse != tc.expected {
				t.Errorf("SegmentsIntersect() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
			if tol := SegmentsIntersectTol(tc.p0, tc.p1, tc.p2, tc.p3, 0); tol != tc.expected {
				t.Errorf("SegmentsIntersectTol(eps=0) = %v, expected %v", tol, tc.expected)
			}
		})
	}
}

func TestSegmentsIntersectTol(t *testing.T) {
	// Segment B stops just short of segment A.
	p0, p1 := V2(0.0, 0.0), V2(10.0, 0.0)
	p2, p3 := V2(5.0, 1e-9), V2(5.0, 5.0)

	if SegmentsIntersect(p0, p1, p2, p3) {
		t.Error("exact test should miss a 1e-9 gap")
	}
	if !SegmentsIntersectTol(p0, p1, p2, p3, 1e-6) {
		t.Error("tolerant test should bridge a 1e-9 gap")
	}

	// Nearly parallel segments become parallel under a loose tolerance.
	q0, q1 := V2(0.0, 0.0), V2(10.0, 0.0)
	q2, q3 := V2(0.0, -0.0001), V2(10.0, 0.0001)
	if !SegmentsIntersect(q0, q1, q2, q3) {
		t.Error("exact test should see the shallow crossing")
	}
	if SegmentsIntersectTol(q0, q1, q2, q3, 0.01) {
		t.Error("tolerant test should treat near-parallel segments as parallel")
	}
}

func TestRotate(t *testing.T) {
	pivot := V2(10.0, 10.0)
	tests := []struct {
		name     string
		degrees  float64
		point    Vec2F
		expected Vec2F
	}{
		{"zero", 0, V2(20.0, 10.0), V2(20.0, 10.0)},
		{"quarter turn", 90, V2(20.0, 10.0), V2(10.0, 20.0)},
		{"half turn", 180, V2(20.0, 10.0), V2(0.0, 10.0)},
		{"negative quarter", -90, V2(20.0, 10.0), V2(10.0, 0.0)},
		{"full turn", 360, V2(13.0, 4.0), V2(13.0, 4.0)},
		{"pivot is fixed", 45, pivot, pivot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRotation(tc.degrees)
			got := r.Apply(pivot, tc.point)
			if !ApproxEqual(got, tc.expected, 1e-9) {
				t.Errorf("Rotate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRotatePreservesDistance(t *testing.T) {
	pivot := V2(3.0, -2.0)
	p := V2(7.5, 1.25)
	before := math.Hypot(p.X-pivot.X, p.Y-pivot.Y)

	for _, deg := range []float64{13, 77, 145, 271, 333} {
		r := NewRotation(deg)
		q := Rotate(pivot, r.Sin, r.Cos, p)
		after := math.Hypot(q.X-pivot.X, q.Y-pivot.Y)
		if math.Abs(before-after) > 1e-9 {
			t.Errorf("rotation by %v changed distance: %v -> %v", deg, before, after)
		}
	}
}

func TestVec2JSON(t *testing.T) {
	s, err := V2(39.9, 0.0).JSON()
	if err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}
	if s != `{"x":39.9,"y":0}` {
		t.Errorf("JSON() = %s, expected {\"x\":39.9,\"y\":0}", s)
	}

	d, err := V2[uint32](800, 600).JSON()
	if err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}
	if d != `{"x":800,"y":600}` {
		t.Errorf("JSON() = %s, expected {\"x\":800,\"y\":600}", d)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1.5, 2.0)
	b := V2(0.5, -1.0)

	if got := a.Add(b); got != V2(2.0, 1.0) {
		t.Errorf("Add() = %v, expected {2 1}", got)
	}
	if got := a.Sub(b); got != V2(1.0, 3.0) {
		t.Errorf("Sub() = %v, expected {1 3}", got)
	}
	if got := Float(V2(40, 20)); got != V2(40.0, 20.0) {
		t.Errorf("Float() = %v, expected {40 20}", got)
	}
}
