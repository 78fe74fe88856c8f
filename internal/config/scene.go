package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hitbox/internal/body"
)

// SceneFile is the YAML form of a set of named elements.
type SceneFile struct {
	Name     string                 `yaml:"name"`
	Elements map[string]ElementSpec `yaml:"elements"`
}

// ElementSpec describes one element.
type ElementSpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Groups []string   `yaml:"groups,omitempty"`
	Bodies []BodySpec `yaml:"bodies,omitempty"`
}

// BodySpec describes one collision body. Position is local to the element.
type BodySpec struct {
	Shape    body.Shape `yaml:"shape"`
	W        int        `yaml:"w"`
	H        int        `yaml:"h"`
	X        float64    `yaml:"x,omitempty"`
	Y        float64    `yaml:"y,omitempty"`
	Rotation float64    `yaml:"rotation,omitempty"` // degrees
	Groups   []int      `yaml:"groups,omitempty"`
}

// ParseScene parses scene YAML and validates it.
func ParseScene(data []byte) (SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := sf.Validate(); err != nil {
		return sf, err
	}
	return sf, nil
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneFile{}, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return sf, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return sf, nil
}

// Marshal encodes the scene back to YAML.
func (sf SceneFile) Marshal() ([]byte, error) {
	return yaml.Marshal(sf)
}

// Validate rejects geometry the collision core treats as a precondition
// violation: negative dimensions and non-finite numbers.
func (sf SceneFile) Validate() error {
	var errs []error
	for _, name := range sf.Names() {
		if name == "" {
			errs = append(errs, errors.New("element with empty name"))
			continue
		}
		el := sf.Elements[name]
		if !finite(el.X, el.Y) {
			errs = append(errs, fmt.Errorf("element %q: position must be finite", name))
		}
		for i, b := range el.Bodies {
			if b.W < 0 || b.H < 0 {
				errs = append(errs, fmt.Errorf("element %q body %d: negative dimensions %dx%d", name, i, b.W, b.H))
			}
			if !finite(b.X, b.Y, b.Rotation) {
				errs = append(errs, fmt.Errorf("element %q body %d: offset and rotation must be finite", name, i))
			}
		}
	}
	return errors.Join(errs...)
}

// Names returns element names in sorted order.
func (sf SceneFile) Names() []string {
	names := make([]string, 0, len(sf.Elements))
	for name := range sf.Elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates fresh elements for every spec.
func (sf SceneFile) Build() map[string]*body.Element {
	out := make(map[string]*body.Element, len(sf.Elements))
	for name, spec := range sf.Elements {
		out[name] = spec.Build()
	}
	return out
}

// Build creates the element described by the spec.
func (es ElementSpec) Build() *body.Element {
	e := body.NewElement(es.X, es.Y)
	for _, g := range es.Groups {
		e.AddGroup(g)
	}
	for _, bs := range es.Bodies {
		e.AddBody(bs.Build())
	}
	return e
}

// Build creates the body described by the spec.
func (bs BodySpec) Build() *body.Body {
	return body.New(bs.Shape, bs.W, bs.H, bs.X, bs.Y).
		WithRotation(bs.Rotation).
		WithGroups(bs.Groups...)
}

// SpecOf converts an element back to its spec form.
func SpecOf(e *body.Element) ElementSpec {
	spec := ElementSpec{
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		Groups: body.Sorted(e.Groups),
	}
	for _, b := range e.Bodies() {
		spec.Bodies = append(spec.Bodies, BodySpec{
			Shape:    b.Shape,
			W:        b.Dimensions.X,
			H:        b.Dimensions.Y,
			X:        b.Pos.X,
			Y:        b.Pos.Y,
			Rotation: b.Rotation,
			Groups:   body.Sorted(b.Groups),
		})
	}
	return spec
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
