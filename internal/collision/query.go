package collision

import "github.com/vovakirdan/hitbox/internal/body"

// Resolver looks elements up by name.
type Resolver interface {
	Element(name string) (*body.Element, bool)
}

// Resolve looks up both names and returns a LookupError naming the side(s)
// that failed.
func Resolve(r Resolver, first, second string) (*body.Element, *body.Element, error) {
	a, okA := r.Element(first)
	b, okB := r.Element(second)

	switch {
	case !okA && !okB:
		return nil, nil, &LookupError{Missing: SideBoth, First: first, Second: second}
	case !okA:
		return nil, nil, &LookupError{Missing: SideFirst, First: first, Second: second}
	case !okB:
		return nil, nil, &LookupError{Missing: SideSecond, First: first, Second: second}
	}
	return a, b, nil
}

// Collision resolves both names and runs Collides. A query either returns a
// verdict or a LookupError, never both.
func (ev Evaluator) Collision(r Resolver, nameA, nameB string) (bool, error) {
	a, b, err := Resolve(r, nameA, nameB)
	if err != nil {
		return false, err
	}
	return ev.Collides(a, b), nil
}

// MovingCollision is Collision with moving/collider naming. The test is
// symmetric; the names only label the error sides.
func (ev Evaluator) MovingCollision(r Resolver, moving, collider string) (bool, error) {
	return ev.Collision(r, moving, collider)
}
