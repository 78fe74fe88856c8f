// hitbox answers 2D collision queries between named elements of a scene.
//
// Usage:
//
//	hitbox list <scene>                   - List elements in a scene
//	hitbox edges <scene> <element>        - Print an element's world-space edges
//	hitbox check <scene> <a> <b>          - Check whether two elements collide
//	hitbox matrix <scene>                 - Check every pair in a scene
//	hitbox import <scene.yaml>            - Store a scene in the database
//	hitbox scenes                         - List stored scenes
//	hitbox history                        - Show recorded checks
//	hitbox watch <scene> <a> <b>          - Re-check on every file change
//	hitbox nudge <scene> <moving> <other> - Move an element interactively
//
// A scene is a YAML file path, or db:<name> for a stored scene.
//
// Global flags:
//
//	--config <path>     - Engine config YAML (default: search path)
//	--db <path>         - Database path (default: ~/.hitbox/hitbox.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hitbox/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hitbox",
	Short: "hitbox - 2D edge-based collision checks",
	Long: `hitbox loads named elements made of rectangle bodies and reports
whether their outlines intersect.

Available commands:
  list     - Show the elements of a scene
  edges    - Print the world-space edges of an element
  check    - Check one pair of elements
  matrix   - Check every pair of elements
  import   - Store a scene file in the database
  scenes   - List stored scenes
  history  - Show recorded checks
  watch    - Re-run a check whenever the scene file changes
  nudge    - Interactive viewer that moves one element toward another

Examples:
  hitbox list configs/demo.yaml
  hitbox check configs/demo.yaml banana abacate --explain
  hitbox import configs/demo.yaml --name demo
  hitbox check db:demo banana spinner --record
  hitbox nudge configs/demo.yaml banana abacate`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hitbox/hitbox.db", "Path to scene database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(edgesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(nudgeCmd)
}

// loadConfig reads the engine config. The --log-level flag overrides the
// configured level.
func loadConfig() (config.EngineConfig, error) {
	cfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the stderr logger for the given level name.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hitbox",
	})
	if level == "" {
		return logger
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}
