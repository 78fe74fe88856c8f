// Package core provides the geometric primitives of the collision engine:
// vectors, edges, the rotation transform and the segment intersection test.
// Nothing here knows about bodies, elements or groups.
package core

import (
	"encoding/json"
	"math"
)

// Number is the set of numeric kinds a Vec2 can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vec2 is an immutable two-component value.
// Integer vectors carry dimensions, float vectors carry positions.
type Vec2[T Number] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// Vec2F is a world- or local-space position.
type Vec2F = Vec2[float64]

// Vec2I is an integer extent (width, height).
type Vec2I = Vec2[int]

// V2 creates a vector from its components.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Float converts any vector to float64 components.
func Float[T Number](v Vec2[T]) Vec2F {
	return Vec2F{X: float64(v.X), Y: float64(v.Y)}
}

// JSON returns the {"x":..,"y":..} form handed to host-side consumers.
func (v Vec2[T]) JSON() (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ApproxEqual reports whether both components differ by at most tol.
func ApproxEqual(a, b Vec2F, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Edge is one boundary segment of a shape, in world coordinates.
type Edge struct {
	Start Vec2F `json:"start"`
	End   Vec2F `json:"end"`
}

// E creates an edge from start to end.
func E(start, end Vec2F) Edge {
	return Edge{Start: start, End: end}
}

// ApproxEqual compares endpoints with the given tolerance.
func (e Edge) ApproxEqual(o Edge, tol float64) bool {
	return ApproxEqual(e.Start, o.Start, tol) && ApproxEqual(e.End, o.End, tol)
}

// Intersects runs the exact segment test against another edge.
func (e Edge) Intersects(o Edge) bool {
	return SegmentsIntersect(e.Start, e.End, o.Start, o.End)
}
