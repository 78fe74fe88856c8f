package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox/internal/config"
	"github.com/vovakirdan/hitbox/internal/engine"
	"github.com/vovakirdan/hitbox/internal/storage"
)

const dbScenePrefix = "db:"

// session is a loaded scene together with the engine holding it.
type session struct {
	name   string // Scene name used for history records
	scene  config.SceneFile
	cfg    config.EngineConfig
	eng    *engine.Engine
	logger *log.Logger
}

// readScene loads a scene from a YAML path or from the database.
func readScene(arg string) (config.SceneFile, string, error) {
	if name, ok := strings.CutPrefix(arg, dbScenePrefix); ok {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return config.SceneFile{}, "", err
		}
		defer store.Close()

		sf, err := store.LoadScene(name)
		if err != nil {
			return config.SceneFile{}, "", err
		}
		return sf, name, nil
	}

	sf, err := config.LoadScene(arg)
	if err != nil {
		return sf, "", err
	}
	name := sf.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
	}
	return sf, name, nil
}

// openSession loads config and scene and builds an engine over them.
func openSession(arg string) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.LogLevel)

	sf, name, err := readScene(arg)
	if err != nil {
		return nil, err
	}

	eng := engine.New(cfg, logger)
	eng.LoadScene(sf)
	return &session{name: name, scene: sf, cfg: cfg, eng: eng, logger: logger}, nil
}

// mustSession is openSession for command handlers.
func mustSession(arg string) *session {
	s, err := openSession(arg)
	if err != nil {
		fatalf("Error loading scene: %v\n", err)
	}
	return s
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
