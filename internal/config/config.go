package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/prodsearch/internal/fuzzy"
)

type CatalogConfig struct {
	Source string `yaml:"source" json:"source"`
	Key    string `yaml:"key"    json:"key"`
	Format string `yaml:"format" json:"format"`
}

type SearchConfig struct {
	Limit     int     `yaml:"limit"     json:"limit"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
}

// Options converts the search settings into engine options.
func (s SearchConfig) Options() fuzzy.Options {
	return fuzzy.Options{Limit: s.Limit, Threshold: s.Threshold}
}

type PostgresConfig struct {
	Query string `yaml:"query" json:"query"`
}

// S3Config holds connection settings for S3 and S3-compatible storage.
// Empty credentials fall back to the default AWS credential chain.
type S3Config struct {
	Region          string `yaml:"region"            json:"region"`
	Endpoint        string `yaml:"endpoint"          json:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"     json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"-"`
	UsePathStyle    bool   `yaml:"use_path_style"    json:"use_path_style"`
}

type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"  json:"catalog"`
	Search   SearchConfig   `yaml:"search"   json:"search"`
	Postgres PostgresConfig `yaml:"postgres" json:"postgres"`
	S3       S3Config       `yaml:"s3"       json:"s3"`

	path string `yaml:"-"`
}

const (
	defaultKey           = "name"
	defaultPostgresQuery = "select * from products"
	defaultRegion        = "us-east-1"
)

var validFormats = map[string]bool{
	"":     true,
	"yaml": true,
	"yml":  true,
	"json": true,
	"csv":  true,
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ensureDefaults()
	return cfg
}

func (cfg *Config) ensureDefaults() {
	cfg.Catalog.Source = strings.TrimSpace(cfg.Catalog.Source)
	cfg.Catalog.Key = strings.TrimSpace(cfg.Catalog.Key)
	if cfg.Catalog.Key == "" {
		cfg.Catalog.Key = defaultKey
	}
	cfg.Catalog.Format = strings.ToLower(strings.TrimSpace(cfg.Catalog.Format))
	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = fuzzy.DefaultLimit
	}
	if strings.TrimSpace(cfg.Postgres.Query) == "" {
		cfg.Postgres.Query = defaultPostgresQuery
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = defaultRegion
	}
}

// Load reads the config file at path. A missing or empty file yields the
// defaults; the path is remembered for Save either way.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.ensureDefaults()
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (cfg *Config) Validate() error {
	if cfg.Search.Limit < 0 {
		return &ValidationError{Field: "search.limit", msg: "must not be negative"}
	}
	if cfg.Search.Threshold < 0 {
		return &ValidationError{Field: "search.threshold", msg: "must not be negative"}
	}
	if !validFormats[cfg.Catalog.Format] {
		return &ValidationError{
			Field: "catalog.format",
			msg:   fmt.Sprintf("unknown format %q, expected yaml, json or csv", cfg.Catalog.Format),
		}
	}
	return nil
}

// ApplyOverrides copies values explicitly set on v (bound flags or
// PRODSEARCH_* environment variables) over the file settings.
func (cfg *Config) ApplyOverrides(v *viper.Viper) error {
	if v == nil {
		return nil
	}
	if v.IsSet("catalog") {
		cfg.Catalog.Source = strings.TrimSpace(v.GetString("catalog"))
	}
	if v.IsSet("key") {
		cfg.Catalog.Key = strings.TrimSpace(v.GetString("key"))
	}
	if v.IsSet("catalog-format") {
		cfg.Catalog.Format = strings.ToLower(strings.TrimSpace(v.GetString("catalog-format")))
	}
	if v.IsSet("limit") {
		cfg.Search.Limit = v.GetInt("limit")
	}
	if v.IsSet("threshold") {
		cfg.Search.Threshold = v.GetFloat64("threshold")
	}
	cfg.ensureDefaults()
	return cfg.Validate()
}

func (cfg *Config) Path() string {
	return cfg.path
}

func (cfg *Config) SetPath(path string) {
	cfg.path = path
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return fmt.Errorf("config: no path to save to")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(cfg.path, data, 0o600)
}
