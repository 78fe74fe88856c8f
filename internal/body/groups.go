package body

import (
	"cmp"
	"maps"
	"slices"
)

// DefaultGroup is the body group an untagged body belongs to.
const DefaultGroup = 0

// DefaultTag is the element tag an untagged element belongs to.
const DefaultTag = "default"

// Groups is a set of collision group tags. Order is irrelevant and
// duplicates are impossible. The zero value is an empty set ready to use.
//
// Groups holds a map, so a plain assignment is not a copy: once the set is
// non-empty, both values share storage, while an Add on a copy of an empty
// set stays local to that copy. Use Clone for an independent set.
type Groups[T comparable] struct {
	set map[T]struct{}
}

// NewGroups creates a set holding the given tags.
func NewGroups[T comparable](tags ...T) Groups[T] {
	var g Groups[T]
	for _, t := range tags {
		g.Add(t)
	}
	return g
}

// Add inserts a tag. Adding an existing tag is a no-op.
func (g *Groups[T]) Add(tag T) {
	if g.set == nil {
		g.set = make(map[T]struct{})
	}
	g.set[tag] = struct{}{}
}

// Remove deletes a tag if present.
func (g *Groups[T]) Remove(tag T) {
	delete(g.set, tag)
}

// Has reports membership.
func (g Groups[T]) Has(tag T) bool {
	_, ok := g.set[tag]
	return ok
}

// Len returns the number of tags.
func (g Groups[T]) Len() int {
	return len(g.set)
}

// Clone returns an independent copy.
func (g Groups[T]) Clone() Groups[T] {
	return Groups[T]{set: maps.Clone(g.set)}
}

// Intersects reports whether the two sets share at least one tag.
func (g Groups[T]) Intersects(o Groups[T]) bool {
	small, large := g.set, o.set
	if len(small) > len(large) {
		small, large = large, small
	}
	for t := range small {
		if _, ok := large[t]; ok {
			return true
		}
	}
	return false
}

// orDefault returns g, or {def} when g is empty.
func (g Groups[T]) orDefault(def T) Groups[T] {
	if g.Len() > 0 {
		return g
	}
	return NewGroups(def)
}

// Eligible is the collision-group filter: two tag sets may collide iff they
// intersect. An empty set stands for {def}, so untagged objects collide with
// each other and with anything explicitly tagged def.
func Eligible[T comparable](a, b Groups[T], def T) bool {
	return a.orDefault(def).Intersects(b.orDefault(def))
}

// Sorted returns the tags in ascending order.
func Sorted[T cmp.Ordered](g Groups[T]) []T {
	return slices.Sorted(maps.Keys(g.set))
}
