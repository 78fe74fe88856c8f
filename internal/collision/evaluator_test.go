package collision

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hitbox/internal/body"
)

type mapResolver map[string]*body.Element

func (m mapResolver) Element(name string) (*body.Element, bool) {
	e, ok := m[name]
	return e, ok
}

func box(x, y float64, groups ...int) *body.Element {
	return body.NewElement(x, y, body.New(body.Rectangle, 40, 40, 0, 0).WithGroups(groups...))
}

func TestCollidesRectangles(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *body.Element
		expected bool
	}{
		{
			name:     "0.1 overlap",
			a:        box(39.9, 0, 1),
			b:        box(0, 0, 1),
			expected: true,
		},
		{
			name:     "horizontal gap",
			a:        box(41, 0, 1),
			b:        box(0, 0, 1),
			expected: false,
		},
		{
			name:     "vertical gap",
			a:        box(0, 41, 1),
			b:        box(0, 0, 1),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        box(40, 0, 1),
			b:        box(0, 0, 1),
			expected: true, // shared corners count even though shared edges are collinear
		},
		{
			name:     "corner overlap",
			a:        box(20, 20, 1),
			b:        box(0, 0, 1),
			expected: true,
		},
		{
			name:     "untagged bodies",
			a:        box(10, 10),
			b:        box(0, 0),
			expected: true,
		},
		{
			name:     "groups disjoint despite overlap",
			a:        box(10, 10, 1),
			b:        box(0, 0, 2),
			expected: false,
		},
		{
			name:     "tagged vs untagged",
			a:        box(10, 10, 1),
			b:        box(0, 0),
			expected: false,
		},
		{
			name:     "default group meets untagged",
			a:        box(10, 10, body.DefaultGroup),
			b:        box(0, 0),
			expected: true,
		},
	}

	var ev Evaluator
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ev.Collides(tc.a, tc.b); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := ev.Collides(tc.b, tc.a); got != tc.expected {
				t.Errorf("Collides() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesContainedBoxMisses(t *testing.T) {
	// Only boundaries are tested, so a box strictly inside another has no
	// crossing edges.
	outer := body.NewElement(0, 0, body.New(body.Rectangle, 100, 100, 0, 0))
	inner := body.NewElement(40, 40, body.New(body.Rectangle, 10, 10, 0, 0))

	var ev Evaluator
	if ev.Collides(outer, inner) {
		t.Error("Collides() = true for fully contained box")
	}
}

func TestCollidesRotated(t *testing.T) {
	// Two 40x40 boxes 45 units apart do not touch until one is turned 45
	// degrees and its corner reaches across the gap.
	a := body.NewElement(0, 0, body.New(body.Rectangle, 40, 40, 0, 0))
	b := body.NewElement(45, 0, body.New(body.Rectangle, 40, 40, 0, 0))

	var ev Evaluator
	if ev.Collides(a, b) {
		t.Fatal("Collides() = true before rotation")
	}

	b.Body(0).SetRotation(45)
	if !ev.Collides(a, b) {
		t.Error("Collides() = false after 45 degree rotation")
	}
	if !ev.Collides(b, a) {
		t.Error("Collides() (reversed) = false after 45 degree rotation")
	}
}

func TestCollidesCircleStub(t *testing.T) {
	rect := body.NewElement(0, 0, body.New(body.Rectangle, 40, 40, 0, 0))
	circle := body.NewElement(10, 10, body.New(body.Circle, 40, 40, 0, 0))
	other := body.NewElement(5, 5, body.New(body.Ellipse, 40, 20, 0, 0))

	var ev Evaluator
	pairs := []struct {
		name string
		a, b *body.Element
	}{
		{"rect-circle", rect, circle},
		{"circle-rect", circle, rect},
		{"circle-circle", circle, other},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			if ev.Collides(p.a, p.b) {
				t.Error("Collides() = true for a pair involving a circle")
			}
		})
	}

	res := ev.Evaluate(rect, circle)
	if res.Unsupported != 1 {
		t.Errorf("Unsupported = %d, expected 1", res.Unsupported)
	}
}

func TestCollidesMixedBodies(t *testing.T) {
	// Group gating is per body pair: an ineligible pair does not veto others.
	a := body.NewElement(0, 0,
		body.New(body.Rectangle, 40, 40, 0, 0).WithGroups(1),
		body.New(body.Rectangle, 40, 40, 0, 0).WithGroups(2),
	)
	b := box(20, 20, 2)

	var ev Evaluator
	res := ev.Evaluate(a, b)
	if !res.Collides {
		t.Fatal("Evaluate().Collides = false, expected true via second body")
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, expected 1", res.Skipped)
	}
	for _, h := range res.Hits {
		if h.BodyA != 1 || h.BodyB != 0 {
			t.Errorf("unexpected hit %+v", h)
		}
	}
	if len(res.Hits) != 2 {
		t.Errorf("len(Hits) = %d, expected 2", len(res.Hits))
	}
}

func TestCollidesElementGroups(t *testing.T) {
	a := box(10, 10)
	b := box(0, 0)
	a.AddGroup("player")

	var ev Evaluator
	if ev.Collides(a, b) {
		t.Error("Collides() = true with disjoint element groups")
	}

	b.AddGroup("player")
	if !ev.Collides(a, b) {
		t.Error("Collides() = false with shared element group")
	}
}

func TestCollidesTaggedElementKeepsDefault(t *testing.T) {
	a := box(10, 10)
	a.AddGroup("player")
	a.AddGroup(body.DefaultTag)

	var ev Evaluator
	if !ev.Collides(a, box(0, 0)) {
		t.Error("Collides() = false for tagged element that also carries the default tag")
	}
}

func TestCollidesEmptyElements(t *testing.T) {
	var ev Evaluator
	if ev.Collides(body.NewElement(0, 0), box(0, 0)) {
		t.Error("Collides() = true for element without bodies")
	}
}

func TestCollidesEpsilon(t *testing.T) {
	// Right edge at x=40 and a box starting 1e-9 further along.
	a := box(0, 0)
	b := body.NewElement(40+1e-9, 10, body.New(body.Rectangle, 40, 20, 0, 0))

	exact := Evaluator{}
	if exact.Collides(a, b) {
		t.Error("exact Collides() = true across a 1e-9 gap")
	}
	tolerant := Evaluator{Epsilon: 1e-6}
	if !tolerant.Collides(a, b) {
		t.Error("tolerant Collides() = false across a 1e-9 gap")
	}
}

func TestCollision(t *testing.T) {
	reg := mapResolver{
		"banana":  box(39.9, 0, 1),
		"abacate": box(0, 0, 1),
	}
	var ev Evaluator

	got, err := ev.Collision(reg, "banana", "abacate")
	if err != nil {
		t.Fatalf("Collision() failed: %v", err)
	}
	if !got {
		t.Error("Collision() = false, expected true")
	}

	got, err = ev.MovingCollision(reg, "banana", "abacate")
	if err != nil || !got {
		t.Errorf("MovingCollision() = %v, %v; expected true, nil", got, err)
	}
}

func TestCollisionLookupErrors(t *testing.T) {
	reg := mapResolver{"banana": box(0, 0)}
	var ev Evaluator

	tests := []struct {
		name     string
		a, b     string
		expected Side
		message  string
	}{
		{"first missing", "kiwi", "banana", SideFirst, `first element missing: "kiwi"`},
		{"second missing", "banana", "kiwi", SideSecond, `second element missing: "kiwi"`},
		{"both missing", "kiwi", "mango", SideBoth, `both elements missing: "kiwi", "mango"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ev.Collision(reg, tc.a, tc.b)
			if err == nil {
				t.Fatal("Collision() expected error")
			}
			if got {
				t.Error("Collision() returned true alongside an error")
			}
			if !errors.Is(err, ErrUnresolved) {
				t.Errorf("errors.Is(err, ErrUnresolved) = false for %v", err)
			}
			if side := MissingSide(err); side != tc.expected {
				t.Errorf("MissingSide() = %v, expected %v", side, tc.expected)
			}
			if err.Error() != tc.message {
				t.Errorf("Error() = %q, expected %q", err.Error(), tc.message)
			}
		})
	}
}
