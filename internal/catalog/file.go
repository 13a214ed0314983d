package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FormatFor resolves the decoder for name. An explicit format wins over the
// file extension.
func FormatFor(name, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	}

	switch format {
	case "yaml", "yml":
		return "yaml", nil
	case "json":
		return "json", nil
	case "csv":
		return "csv", nil
	}
	return "", fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, format, name)
}

// LoadFile reads the catalog stored at path.
func LoadFile(path, format, key string) ([]Record, error) {
	resolved, err := FormatFor(path, format)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data), resolved, key, path)
}

// Decode parses a catalog in the given format. name only labels errors and
// warnings. Bare string entries become records holding the string under key;
// entries that are neither records nor strings are kept as empty records so
// they still show up, unmatched, in rankings.
func Decode(r io.Reader, format, key, name string) ([]Record, error) {
	if format == "csv" {
		return decodeCSV(r, name)
	}

	var unmarshal func([]byte, any) error
	switch format {
	case "yaml", "yml":
		unmarshal = yaml.Unmarshal
	case "json":
		unmarshal = json.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, format, name)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	var doc any
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", name, err)
	}
	return toRecords(doc, key, name)
}

func toRecords(doc any, key, name string) ([]Record, error) {
	if doc == nil {
		return []Record{}, nil
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %s", ErrNotSequence, name, describe(doc))
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case map[string]any:
			records = append(records, v)
		case string:
			records = append(records, Record{key: v})
		default:
			log.Printf("catalog: %s: entry %d is %s, not a record", name, i, describe(item))
			records = append(records, Record{})
		}
	}
	return records, nil
}

// decodeCSV treats the first row as the header naming every column.
func decodeCSV(r io.Reader, name string) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("catalog: decode %s: %w", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make([]Record, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: decode %s: %w", name, err)
		}
		if len(row) > len(header) {
			log.Printf("catalog: %s: line %d has %d extra fields, ignoring them", name, line, len(row)-len(header))
		}

		record := make(Record, len(header))
		for i, column := range header {
			if i < len(row) && column != "" {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func describe(v any) string {
	switch v.(type) {
	case map[string]any:
		return "a mapping"
	case []any:
		return "a sequence"
	case string:
		return "a string"
	case nil:
		return "null"
	}
	return fmt.Sprintf("a %T", v)
}
