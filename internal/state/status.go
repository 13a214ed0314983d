package state

import (
	"fmt"
	"strings"
	"time"
)

// StatusLine summarises the loaded catalog for footers and headers.
func (s *State) StatusLine() string {
	if s == nil || s.Catalog == nil {
		return ""
	}

	parts := []string{fmt.Sprintf("%d products", s.Catalog.Len())}
	if s.Catalog.Source != "" {
		parts = append(parts, s.Catalog.Source)
	}
	if !s.LoadedAt.IsZero() {
		parts = append(parts, fmt.Sprintf("loaded %s", formatLoadTime(s.LoadedAt)))
	}

	return strings.Join(parts, " · ")
}

func formatLoadTime(t time.Time) string {
	return t.Local().Format("15:04")
}
