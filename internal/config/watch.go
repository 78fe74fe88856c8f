package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// SceneWatcher reports changes to a single scene file. Editors often
// replace files instead of writing them, so the parent directory is
// watched and events are filtered by name.
type SceneWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchScene starts watching path.
func WatchScene(path string) (*SceneWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	sw := &SceneWatcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *SceneWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *SceneWatcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// Trailing-edge debounce: each relevant event restarts the timer, and
	// the file is reported once it has been quiet for watchDebounce.
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending = event.Name
			timer.Reset(watchDebounce)
		case <-timer.C:
			if pending == "" {
				continue
			}
			select {
			case w.Events <- pending:
			case <-w.closeCh:
				return
			}
			pending = ""
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *SceneWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}
