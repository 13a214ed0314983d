// Package catalog loads the product records the search tools rank.
//
// A catalog is a sequence of records read from a local YAML, JSON or CSV
// file, an object in S3-compatible storage, or a Postgres query. Whatever the
// source, the top-level value must be a sequence; anything else is rejected
// with ErrNotSequence rather than treated as an empty catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Paintersrp/prodsearch/internal/config"
	"github.com/Paintersrp/prodsearch/internal/fuzzy"
	"github.com/Paintersrp/prodsearch/internal/pathutil"
)

var (
	ErrNotSequence       = errors.New("catalog: expected a sequence of records")
	ErrUnsupportedSource = errors.New("catalog: unsupported source")
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")
	ErrNoSource          = errors.New("catalog: no source configured")
)

// Record is one decoded catalog entry, keyed by field name.
type Record = map[string]any

type Catalog struct {
	Source  string
	Key     string
	Records []Record
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// Search ranks the catalog records on their Key field.
func (c *Catalog) Search(query string, opts fuzzy.Options) []fuzzy.Result[Record] {
	if c == nil {
		return nil
	}
	return fuzzy.SearchRecords(query, c.Records, c.Key, opts)
}

// Open loads the catalog described by cfg, picking the loader from the shape
// of the source: s3://bucket/key, postgres:// or postgresql:// DSNs, or a
// local path.
func Open(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	source := strings.TrimSpace(cfg.Catalog.Source)
	if source == "" {
		return nil, ErrNoSource
	}

	var (
		records []Record
		err     error
	)
	switch sourceScheme(source) {
	case "s3":
		var loader *S3Loader
		loader, err = NewS3Loader(ctx, cfg.S3)
		if err == nil {
			records, err = loader.Load(ctx, source, cfg.Catalog.Format, cfg.Catalog.Key)
		}
	case "postgres", "postgresql":
		records, err = LoadPostgres(ctx, source, cfg.Postgres.Query)
	case "", "file":
		path, _ := LocalPath(source)
		records, err = LoadFile(path, cfg.Catalog.Format, cfg.Catalog.Key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Source:  source,
		Key:     cfg.Catalog.Key,
		Records: records,
	}, nil
}

// LocalPath reports the filesystem path of a local catalog source, with a
// leading ~ expanded.
func LocalPath(source string) (string, bool) {
	source = strings.TrimSpace(source)
	switch sourceScheme(source) {
	case "":
		return pathutil.Resolve(source), source != ""
	case "file":
		return pathutil.Resolve(strings.TrimPrefix(source, "file://")), true
	}
	return "", false
}

func sourceScheme(source string) string {
	if !strings.Contains(source, "://") {
		return ""
	}
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}
