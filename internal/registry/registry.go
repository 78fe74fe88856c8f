// Package registry holds named elements for an engine.
// Lookups hand out snapshots so a collision query never races with a host
// mutating the same element; mutations go through Mutate.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hitbox/internal/body"
)

// Registry maps element names to elements.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]*body.Element
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{elements: make(map[string]*body.Element)}
}

// Put stores an element under name, replacing any previous one.
func (r *Registry) Put(name string, e *body.Element) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.elements[name] = e
}

// Create builds an element at (x, y) with an optional body and stores it.
func (r *Registry) Create(name string, b *body.Body, x, y float64) *body.Element {
	e := body.NewElement(x, y, b)
	r.Put(name, e)
	return e
}

// Get returns a copy of the named element.
func (r *Registry) Get(name string) (*body.Element, error) {
	e, ok := r.Element(name)
	if !ok {
		return nil, fmt.Errorf("registry: unknown element %q", name)
	}
	return e, nil
}

// Element returns a copy of the named element. It satisfies
// collision.Resolver.
func (r *Registry) Element(name string) (*body.Element, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.elements[name]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Mutate runs fn on the stored element under the write lock.
func (r *Registry) Mutate(name string, fn func(*body.Element)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.elements[name]
	if !ok {
		return fmt.Errorf("registry: unknown element %q", name)
	}
	fn(e)
	return nil
}

// Remove deletes an element and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.elements[name]
	delete(r.elements, name)
	return ok
}

// Exists checks if an element with the given name is registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.elements[name]
	return ok
}

// List returns all element names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.elements))
	for name := range r.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of elements.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.elements)
}

// Snapshot returns copies of every element keyed by name.
func (r *Registry) Snapshot() map[string]*body.Element {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*body.Element, len(r.elements))
	for name, e := range r.elements {
		out[name] = e.Clone()
	}
	return out
}
