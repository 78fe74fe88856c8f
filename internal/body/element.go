package body

import "github.com/vovakirdan/hitbox/internal/core"

// Element is a positioned aggregate of collision bodies. It owns its bodies
// exclusively. Identity lives in the registry that names it.
type Element struct {
	Pos    core.Vec2F
	Groups Groups[string]
	bodies []*Body
}

// NewElement creates an element at (x, y). Nil bodies are skipped, so an
// optional body can be passed straight through.
func NewElement(x, y float64, bodies ...*Body) *Element {
	e := &Element{Pos: core.V2(x, y)}
	for _, b := range bodies {
		e.AddBody(b)
	}
	return e
}

// AddBody attaches a body. Nil is ignored.
func (e *Element) AddBody(b *Body) {
	if b == nil {
		return
	}
	e.bodies = append(e.bodies, b)
}

// RemoveBody detaches the body at index i and reports whether it existed.
func (e *Element) RemoveBody(i int) bool {
	if i < 0 || i >= len(e.bodies) {
		return false
	}
	e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
	return true
}

// Body returns the body at index i, or nil.
func (e *Element) Body(i int) *Body {
	if i < 0 || i >= len(e.bodies) {
		return nil
	}
	return e.bodies[i]
}

// Bodies returns the attached bodies. The slice is a copy; the bodies are not.
func (e *Element) Bodies() []*Body {
	out := make([]*Body, len(e.bodies))
	copy(out, e.bodies)
	return out
}

// BodyCount returns the number of attached bodies.
func (e *Element) BodyCount() int {
	return len(e.bodies)
}

// Edges returns the world-space edges of every body, in body order.
func (e *Element) Edges() []core.Edge {
	var edges []core.Edge
	for _, b := range e.bodies {
		edges = append(edges, b.Edges(e.Pos)...)
	}
	return edges
}

// MoveBy offsets the element position.
func (e *Element) MoveBy(dx, dy float64) {
	e.Pos = e.Pos.Add(core.V2(dx, dy))
}

// AddGroup adds an element-level tag.
func (e *Element) AddGroup(tag string) {
	e.Groups.Add(tag)
}

// RemoveGroup removes an element-level tag.
func (e *Element) RemoveGroup(tag string) {
	e.Groups.Remove(tag)
}

// HasGroup reports whether the element carries a tag.
func (e *Element) HasGroup(tag string) bool {
	return e.Groups.Has(tag)
}

// PosJSON returns the position as {"x":..,"y":..}.
func (e *Element) PosJSON() (string, error) {
	return e.Pos.JSON()
}

// Clone returns a deep copy, bodies included.
func (e *Element) Clone() *Element {
	c := &Element{
		Pos:    e.Pos,
		Groups: e.Groups.Clone(),
		bodies: make([]*Body, len(e.bodies)),
	}
	for i, b := range e.bodies {
		c.bodies[i] = b.Clone()
	}
	return c
}

// ElementsEligible applies the group filter to element-level tags.
func ElementsEligible(a, b *Element) bool {
	return Eligible(a.Groups, b.Groups, DefaultTag)
}
