package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/prodsearch/internal/config"
	"github.com/Paintersrp/prodsearch/internal/fuzzy"
)

func writeConfig(t testing.TB, data map[string]any) string {
	t.Helper()
	path := config.GetConfigPath(t.TempDir())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := config.GetConfigPath(t.TempDir())

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.Catalog.Key != "name" {
		t.Fatalf("expected default key %q, got %q", "name", cfg.Catalog.Key)
	}
	if cfg.Search.Limit != fuzzy.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", fuzzy.DefaultLimit, cfg.Search.Limit)
	}
	if cfg.Search.Threshold != 0 {
		t.Fatalf("expected threshold 0, got %v", cfg.Search.Threshold)
	}
	if cfg.Postgres.Query == "" || cfg.S3.Region == "" {
		t.Fatalf("expected backend defaults, got %+v", cfg)
	}
	if cfg.Path() != path {
		t.Fatalf("expected path %q to be remembered, got %q", path, cfg.Path())
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"catalog": map[string]any{
			"source": "  ./products.csv ",
			"key":    "title",
			"format": "CSV",
		},
		"search": map[string]any{
			"limit":     25,
			"threshold": 2.5,
		},
		"s3": map[string]any{
			"endpoint":       "http://localhost:9000",
			"use_path_style": true,
		},
	})

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.Catalog.Source != "./products.csv" || cfg.Catalog.Key != "title" || cfg.Catalog.Format != "csv" {
		t.Fatalf("unexpected catalog config %+v", cfg.Catalog)
	}
	opts := cfg.Search.Options()
	if opts.Limit != 25 || opts.Threshold != 2.5 {
		t.Fatalf("unexpected search options %+v", opts)
	}
	if !cfg.S3.UsePathStyle || cfg.S3.Endpoint != "http://localhost:9000" {
		t.Fatalf("unexpected s3 config %+v", cfg.S3)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		data  map[string]any
		field string
	}{
		{"negative limit", map[string]any{"search": map[string]any{"limit": -1}}, "search.limit"},
		{"negative threshold", map[string]any{"search": map[string]any{"threshold": -0.5}}, "search.threshold"},
		{"unknown format", map[string]any{"catalog": map[string]any{"format": "xlsx"}}, "catalog.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.data))
			if err == nil {
				t.Fatalf("expected load to fail")
			}
			if !errors.Is(err, config.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			var verr *config.ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := config.GetConfigPath(t.TempDir())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("catalog: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.SetPath(path)
	cfg.Catalog.Source = "s3://inventory/products.json"
	cfg.Search.Limit = 3

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Catalog.Source != cfg.Catalog.Source || loaded.Search.Limit != 3 {
		t.Fatalf("expected saved values to survive, got %+v", loaded)
	}
}

func TestSaveWithoutPathFails(t *testing.T) {
	if err := config.Default().Save(); err == nil {
		t.Fatalf("expected error when no path is set")
	}
}

func TestEnsureConfigExists(t *testing.T) {
	path := config.GetConfigPath(t.TempDir())

	cfg := config.Default()
	cfg.SetPath(path)
	created, err := config.EnsureConfigExists(cfg)
	if err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}
	if !created {
		t.Fatalf("expected config file to be created")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file on disk: %v", err)
	}

	// A second call must leave the existing file alone.
	if err := os.WriteFile(path, []byte("search:\n  limit: 4\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	created, err = config.EnsureConfigExists(cfg)
	if err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}
	if created {
		t.Fatalf("expected existing file to be kept")
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Search.Limit != 4 {
		t.Fatalf("expected existing file to be kept, got limit %d", loaded.Search.Limit)
	}
}

func TestApplyOverridesPrefersChangedFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("catalog", "", "")
	flags.String("key", "", "")
	flags.Int("limit", 0, "")
	flags.Float64("threshold", 0, "")

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		t.Fatalf("BindPFlags: %v", err)
	}
	if err := flags.Parse([]string{"--catalog", "postgres://localhost/pos", "--limit", "7"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg := config.Default()
	cfg.Catalog.Key = "title"
	if err := cfg.ApplyOverrides(v); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if cfg.Catalog.Source != "postgres://localhost/pos" {
		t.Fatalf("expected catalog override, got %q", cfg.Catalog.Source)
	}
	if cfg.Search.Limit != 7 {
		t.Fatalf("expected limit override, got %d", cfg.Search.Limit)
	}
	if cfg.Catalog.Key != "title" {
		t.Fatalf("expected untouched key to keep file value, got %q", cfg.Catalog.Key)
	}
}

func TestApplyOverridesFromEnvironment(t *testing.T) {
	t.Setenv("PRODSEARCH_THRESHOLD", "1.5")

	v := viper.New()
	v.SetEnvPrefix("PRODSEARCH")
	v.AutomaticEnv()

	cfg := config.Default()
	if err := cfg.ApplyOverrides(v); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if cfg.Search.Threshold != 1.5 {
		t.Fatalf("expected threshold from environment, got %v", cfg.Search.Threshold)
	}
}
