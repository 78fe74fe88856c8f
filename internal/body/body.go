package body

import "github.com/vovakirdan/hitbox/internal/core"

// Body is one shape instance attached to an element. Its position is local
// to the owning element and its dimensions are magnitudes; negative values
// are a caller error and are not checked.
type Body struct {
	Shape      Shape
	Dimensions core.Vec2I
	Pos        core.Vec2F
	Rotation   float64 // degrees
	Groups     Groups[int]
}

// New creates an unrotated, untagged body.
func New(shape Shape, width, height int, x, y float64) *Body {
	return &Body{
		Shape:      shape,
		Dimensions: core.V2(width, height),
		Pos:        core.V2(x, y),
	}
}

// WithRotation sets the rotation in degrees and returns the body.
func (b *Body) WithRotation(degrees float64) *Body {
	b.Rotation = degrees
	return b
}

// WithGroups adds the given groups and returns the body.
func (b *Body) WithGroups(groups ...int) *Body {
	for _, g := range groups {
		b.Groups.Add(g)
	}
	return b
}

// SetRotation sets the rotation in degrees.
func (b *Body) SetRotation(degrees float64) {
	b.Rotation = degrees
}

// AddGroup adds the body to a collision group.
func (b *Body) AddGroup(group int) {
	b.Groups.Add(group)
}

// RemoveGroup removes the body from a collision group.
func (b *Body) RemoveGroup(group int) {
	b.Groups.Remove(group)
}

// HasGroup reports whether the body belongs to a collision group.
func (b *Body) HasGroup(group int) bool {
	return b.Groups.Has(group)
}

// Edges returns the body's boundary for an element positioned at parent.
// Edges are rebuilt on every call.
func (b *Body) Edges(parent core.Vec2F) []core.Edge {
	return EdgesOf(b.Shape, b.Dimensions, b.Pos, b.Rotation, parent)
}

// Clone returns a deep copy.
func (b *Body) Clone() *Body {
	c := *b
	c.Groups = b.Groups.Clone()
	return &c
}

// BodiesEligible applies the group filter to two bodies.
func BodiesEligible(a, b *Body) bool {
	return Eligible(a.Groups, b.Groups, DefaultGroup)
}
