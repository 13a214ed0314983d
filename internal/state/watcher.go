package state

import (
	"errors"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type CatalogChangedMsg struct {
	Path string
}

type CatalogWatcherErrMsg struct {
	Err error
}

// CatalogWatcher reports changes to a single catalog file. The parent
// directory is watched so files replaced by rename are still seen.
type CatalogWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
	once    sync.Once
}

func NewCatalogWatcher(path string) (*CatalogWatcher, error) {
	if path == "" {
		return nil, errors.New("catalog path cannot be empty")
	}

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

	return &CatalogWatcher{
		watcher: w,
		path:    abs,
		done:    make(chan struct{}),
	}, nil
}

func (w *CatalogWatcher) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Start returns a command that blocks until the catalog changes. Models
// issue it again after every CatalogChangedMsg.
func (w *CatalogWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}

				return CatalogChangedMsg{Path: w.path}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return CatalogWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *CatalogWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}

func (w *CatalogWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
