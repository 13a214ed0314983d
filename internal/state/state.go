package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Paintersrp/prodsearch/internal/catalog"
	"github.com/Paintersrp/prodsearch/internal/config"
)

type State struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Watcher    *CatalogWatcher
	Home       string
	ConfigPath string
	LoadedAt   time.Time
}

// NewState loads the config at configPath, or at the default location under
// the home directory when configPath is empty. The catalog is not opened
// until LoadCatalog is called.
func NewState(configPath string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil && configPath == "" {
		return nil, err
	}

	if configPath == "" {
		configPath = config.GetConfigPath(home)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &State{
		Config:     cfg,
		Home:       home,
		ConfigPath: configPath,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadCatalog opens the configured catalog the first time it is called and
// returns the cached one afterwards.
func (s *State) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if s.Catalog != nil {
		return s.Catalog, nil
	}
	return s.ReloadCatalog(ctx)
}

// ReloadCatalog reads the catalog again. The previous catalog is kept when
// the reload fails.
func (s *State) ReloadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if s.Config == nil {
		return nil, errors.New("state: no config loaded")
	}

	cat, err := catalog.Open(ctx, s.Config)
	if err != nil {
		return nil, err
	}

	s.Catalog = cat
	s.LoadedAt = time.Now()
	return cat, nil
}

// Watch starts watching a local catalog file. Remote sources return a nil
// watcher and no error.
func (s *State) Watch() (*CatalogWatcher, error) {
	if s.Watcher != nil {
		return s.Watcher, nil
	}

	path, ok := catalog.LocalPath(s.Config.Catalog.Source)
	if !ok {
		return nil, nil
	}

	w, err := NewCatalogWatcher(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	s.Watcher = w
	return w, nil
}

// Close releases the catalog watcher.
func (s *State) Close() error {
	if s == nil || s.Watcher == nil {
		return nil
	}

	err := s.Watcher.Close()
	s.Watcher = nil
	return err
}
