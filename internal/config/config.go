// Package config provides YAML-based engine configuration and scene file
// loading for hitbox.
package config

// EngineConfig contains all engine-level settings.
type EngineConfig struct {
	Window       WindowConfig    `yaml:"window"`
	Speed        float64         `yaml:"speed"`
	Acceleration float64         `yaml:"acceleration"`
	Collision    CollisionConfig `yaml:"collision"`
	LogLevel     string          `yaml:"log_level"` // debug, info, warn, error
}

// WindowConfig is the host surface size the engine reports back.
type WindowConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// CollisionConfig tunes the segment test.
type CollisionConfig struct {
	// Epsilon > 0 enables the tolerant segment test. 0 keeps exact
	// comparisons against zero.
	Epsilon float64 `yaml:"epsilon"`
}
