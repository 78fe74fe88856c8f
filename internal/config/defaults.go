package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Speed:        100,
		Acceleration: 10,
		Collision: CollisionConfig{
			Epsilon: 0,
		},
		LogLevel: "info",
	}
}

// GetDefaultYAML returns the embedded default engine YAML.
func GetDefaultYAML() []byte {
	return defaultEngineYAML
}
