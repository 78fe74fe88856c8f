// Package collision decides whether two elements overlap. It combines the
// group filter, the per-body edges and the segment test into one verdict.
package collision

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox/internal/body"
	"github.com/vovakirdan/hitbox/internal/core"
)

// Evaluator runs pairwise collision queries.
// The zero value uses the exact segment test and does not log.
type Evaluator struct {
	// Epsilon > 0 switches to the tolerant segment test.
	Epsilon float64
	// Logger receives debug output for skipped pairs and verdicts. Optional.
	Logger *log.Logger
}

// PairHit records one intersecting edge pair.
type PairHit struct {
	BodyA, BodyB int
	EdgeA, EdgeB int
}

// Result is the detailed outcome of Evaluate.
type Result struct {
	Collides bool
	// Hits lists every intersecting edge pair.
	Hits []PairHit
	// Skipped counts body pairs rejected by the group filter.
	Skipped int
	// Unsupported counts eligible body pairs involving a circle.
	Unsupported int
}

// Collides reports whether any edge of any body of a crosses any edge of any
// eligible body of b. It never mutates either element.
//
// Element tags are checked before any body pair: if the element-level tag
// sets are disjoint the result is false regardless of body groups. An
// untagged element belongs to body.DefaultTag, so tagging one element
// "player" stops it colliding with untagged elements unless it also
// carries "default".
func (ev Evaluator) Collides(a, b *body.Element) bool {
	return ev.evaluate(a, b, false).Collides
}

// Evaluate is Collides with the full list of hits.
func (ev Evaluator) Evaluate(a, b *body.Element) Result {
	return ev.evaluate(a, b, true)
}

func (ev Evaluator) evaluate(a, b *body.Element, explain bool) Result {
	var res Result

	if !body.ElementsEligible(a, b) {
		ev.debug("element groups disjoint")
		return res
	}

	for i, ba := range a.Bodies() {
		edgesA := ba.Edges(a.Pos)
		for j, bb := range b.Bodies() {
			if !body.BodiesEligible(ba, bb) {
				res.Skipped++
				ev.debug("body groups disjoint", "bodyA", i, "bodyB", j)
				continue
			}
			if !shapesSupported(ba.Shape, bb.Shape) {
				res.Unsupported++
				continue
			}

			edgesB := bb.Edges(b.Pos)
			for ea, edgeA := range edgesA {
				for eb, edgeB := range edgesB {
					if !ev.intersects(edgeA, edgeB) {
						continue
					}
					res.Collides = true
					if !explain {
						ev.debug("verdict", "collides", true)
						return res
					}
					res.Hits = append(res.Hits, PairHit{BodyA: i, BodyB: j, EdgeA: ea, EdgeB: eb})
				}
			}
		}
	}

	ev.debug("verdict", "collides", res.Collides, "hits", len(res.Hits))
	return res
}

// shapesSupported reports whether a shape combination gets a real
// geometric test. Circle pairs always report no collision.
// TODO: circle-circle and rect-circle tests; callers rely on false today.
func shapesSupported(a, b body.Shape) bool {
	return a == body.Rectangle && b == body.Rectangle
}

func (ev Evaluator) intersects(a, b core.Edge) bool {
	if ev.Epsilon > 0 {
		return core.SegmentsIntersectTol(a.Start, a.End, b.Start, b.End, ev.Epsilon)
	}
	return core.SegmentsIntersect(a.Start, a.End, b.Start, b.End)
}

func (ev Evaluator) debug(msg string, keyvals ...any) {
	if ev.Logger != nil {
		ev.Logger.Debug(msg, keyvals...)
	}
}
