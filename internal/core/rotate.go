package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation holds the precomputed sine and cosine of an angle so that the
// four corners of a box share one trigonometric evaluation.
type Rotation struct {
	Sin, Cos float64
}

// NewRotation converts degrees to a Rotation.
func NewRotation(degrees float64) Rotation {
	sin, cos := math.Sincos(mgl64.DegToRad(degrees))
	return Rotation{Sin: sin, Cos: cos}
}

// Apply rotates p about pivot.
func (r Rotation) Apply(pivot, p Vec2F) Vec2F {
	return Rotate(pivot, r.Sin, r.Cos, p)
}

// Rotate rotates point about pivot using [[cos, -sin], [sin, cos]].
func Rotate(pivot Vec2F, sin, cos float64, point Vec2F) Vec2F {
	// mgl64.Mat2 is column-major.
	m := mgl64.Mat2{cos, sin, -sin, cos}
	rel := mgl64.Vec2{point.X - pivot.X, point.Y - pivot.Y}
	out := m.Mul2x1(rel)
	return Vec2F{X: out[0] + pivot.X, Y: out[1] + pivot.Y}
}
