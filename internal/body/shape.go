// Package body models collision bodies and the elements that own them, and
// builds the world-space edges the collision test runs on.
package body

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hitbox/internal/core"
)

// Shape selects which edge construction applies to a body.
type Shape int

const (
	Rectangle Shape = iota
	Circle
)

// Ellipse is the same variant as Circle; radii may differ.
const Ellipse = Circle

// String returns the canonical lowercase name.
func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "rect"
	case Circle:
		return "circle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape parses a shape name. Accepted: rect, rectangle, circle, ellipse.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect", "rectangle":
		return Rectangle, nil
	case "circle", "ellipse", "elipse":
		return Circle, nil
	default:
		return 0, fmt.Errorf("body: unknown shape %q", s)
	}
}

// MarshalYAML writes the canonical name.
func (s Shape) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts any name ParseShape does.
func (s *Shape) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseShape(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// EdgesOf builds the world-space boundary of a shape.
//
// Rectangles yield four edges: top (left to right), right (top to bottom),
// bottom (right to left) and left (bottom to top). A non-zero rotation turns
// every vertex about the box center. Circles yield two radius edges, center
// to right midpoint then center to top midpoint, and ignore rotation.
func EdgesOf(shape Shape, dims core.Vec2I, offset core.Vec2F, rotation float64, world core.Vec2F) []core.Edge {
	origin := world.Add(offset)
	w, h := float64(dims.X), float64(dims.Y)

	switch shape {
	case Circle:
		center := core.V2(origin.X+w/2, origin.Y+h/2)
		return []core.Edge{
			core.E(center, core.V2(origin.X+w, center.Y)),
			core.E(center, core.V2(center.X, origin.Y)),
		}
	default:
		tl := origin
		tr := core.V2(origin.X+w, origin.Y)
		br := core.V2(origin.X+w, origin.Y+h)
		bl := core.V2(origin.X, origin.Y+h)

		if rotation != 0 {
			rot := core.NewRotation(rotation)
			pivot := core.V2(origin.X+w/2, origin.Y+h/2)
			tl = rot.Apply(pivot, tl)
			tr = rot.Apply(pivot, tr)
			br = rot.Apply(pivot, br)
			bl = rot.Apply(pivot, bl)
		}

		return []core.Edge{
			core.E(tl, tr),
			core.E(tr, br),
			core.E(br, bl),
			core.E(bl, tl),
		}
	}
}
