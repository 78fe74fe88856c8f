// Package engine is the host-facing facade: it owns the element registry and
// the evaluator, and exposes the mutation and query surface a game host uses.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox/internal/body"
	"github.com/vovakirdan/hitbox/internal/collision"
	"github.com/vovakirdan/hitbox/internal/config"
	"github.com/vovakirdan/hitbox/internal/core"
	"github.com/vovakirdan/hitbox/internal/registry"
)

// Engine holds a set of named elements and answers collision queries
// between them.
type Engine struct {
	dimensions   core.Vec2[uint32]
	speed        float64
	acceleration float64
	elements     *registry.Registry
	eval         collision.Evaluator
	logger       *log.Logger
}

// New creates an engine from configuration. A nil logger discards output.
func New(cfg config.EngineConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		dimensions:   core.V2(cfg.Window.Width, cfg.Window.Height),
		speed:        cfg.Speed,
		acceleration: cfg.Acceleration,
		elements:     registry.New(),
		eval: collision.Evaluator{
			Epsilon: cfg.Collision.Epsilon,
			Logger:  logger,
		},
		logger: logger,
	}
}

// Dimensions returns the configured window size.
func (e *Engine) Dimensions() core.Vec2[uint32] {
	return e.dimensions
}

// DimensionsJSON returns the window size as {"x":..,"y":..}.
func (e *Engine) DimensionsJSON() (string, error) {
	return e.dimensions.JSON()
}

// Speed returns the configured movement speed.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Acceleration returns the configured acceleration.
func (e *Engine) Acceleration() float64 {
	return e.acceleration
}

// Registry exposes the element registry.
func (e *Engine) Registry() *registry.Registry {
	return e.elements
}

// Evaluator returns the evaluator queries run with.
func (e *Engine) Evaluator() collision.Evaluator {
	return e.eval
}

// AddElement stores an element under name.
func (e *Engine) AddElement(name string, el *body.Element) {
	e.elements.Put(name, el)
	e.logger.Debug("element added", "name", name, "bodies", el.BodyCount())
}

// CreateElement builds an element at (x, y) with an optional body.
func (e *Engine) CreateElement(name string, b *body.Body, x, y float64) {
	e.elements.Create(name, b, x, y)
	e.logger.Debug("element created", "name", name, "x", x, "y", y)
}

// Element returns a snapshot of the named element.
func (e *Engine) Element(name string) (*body.Element, bool) {
	return e.elements.Element(name)
}

// MoveElement offsets the named element.
func (e *Engine) MoveElement(name string, dx, dy float64) error {
	return e.elements.Mutate(name, func(el *body.Element) {
		el.MoveBy(dx, dy)
	})
}

// LoadScene adds every element of the scene, overwriting elements that
// share a name.
func (e *Engine) LoadScene(sf config.SceneFile) {
	for name, el := range sf.Build() {
		e.AddElement(name, el)
	}
	e.logger.Info("scene loaded", "scene", sf.Name, "elements", len(sf.Elements))
}

// Collision reports whether the two named elements collide.
func (e *Engine) Collision(nameA, nameB string) (bool, error) {
	collides, err := e.eval.Collision(e.elements, nameA, nameB)
	if err != nil {
		e.logger.Warn("collision query failed", "a", nameA, "b", nameB, "err", err)
		return false, err
	}
	return collides, nil
}

// CollisionBetweenColliderAndMovingObject is Collision under its moving
// versus collider name. Both arguments are treated symmetrically.
func (e *Engine) CollisionBetweenColliderAndMovingObject(moving, collider string) (bool, error) {
	return e.Collision(moving, collider)
}

// Explain runs a query and returns the detailed result.
func (e *Engine) Explain(nameA, nameB string) (collision.Result, error) {
	a, b, err := collision.Resolve(e.elements, nameA, nameB)
	if err != nil {
		return collision.Result{}, err
	}
	return e.eval.Evaluate(a, b), nil
}
