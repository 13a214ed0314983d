package pathutil

import (
	"path/filepath"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"./products.yaml", "products.yaml"},
		{`exports\2024\products.csv`, filepath.Join("exports", "2024", "products.csv")},
		{"exports//2024/../products.csv", filepath.Join("exports", "products.csv")},
	}

	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Fatalf("NormalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "clerk")

	cases := []struct {
		in, want string
	}{
		{"~", home},
		{"~/products.yaml", filepath.Join(home, "products.yaml")},
		{`~\catalog\products.json`, filepath.Join(home, `catalog\products.json`)},
		{"~other/products.yaml", "~other/products.yaml"},
		{"/srv/products.yaml", "/srv/products.yaml"},
	}

	for _, tc := range cases {
		if got := ExpandHome(tc.in, home); got != tc.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := ExpandHome("~/products.yaml", ""); got != "~/products.yaml" {
		t.Fatalf("expected path to be kept without a home, got %q", got)
	}
}

func TestResolveUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := Resolve("~/catalog/../products.yaml"); got != filepath.Join(home, "products.yaml") {
		t.Fatalf("unexpected resolved path %q", got)
	}
	if Resolve("") != "" {
		t.Fatalf("expected empty path to stay empty")
	}
}
