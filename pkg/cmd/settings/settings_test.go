package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/Paintersrp/prodsearch/internal/config"
	"github.com/Paintersrp/prodsearch/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	return &state.State{
		Config:     config.Default(),
		ConfigPath: filepath.Join(t.TempDir(), ".prodsearch", "config.yaml"),
	}
}

func run(t *testing.T, st *state.State, args ...string) (string, error) {
	t.Helper()

	cmd := NewCmdSettings(st)
	cmd.SetArgs(args)
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	err := cmd.Execute()
	return output.String(), err
}

func TestInitWritesConfig(t *testing.T) {
	st := newTestState(t)
	st.Config.Catalog.Source = "./products.csv"

	out, err := run(t, st, "init")
	if err != nil {
		t.Fatalf("config init returned error: %v\n%s", err, out)
	}
	if !strings.Contains(out, st.ConfigPath) {
		t.Fatalf("expected path in output, got %q", out)
	}

	loaded, err := config.Load(st.ConfigPath)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if loaded.Catalog.Source != "./products.csv" {
		t.Fatalf("expected catalog source to be saved, got %+v", loaded.Catalog)
	}
}

func TestInitRefusesToOverwrite(t *testing.T) {
	st := newTestState(t)

	if _, err := run(t, st, "init"); err != nil {
		t.Fatalf("first init returned error: %v", err)
	}
	if _, err := run(t, st, "init"); err == nil {
		t.Fatalf("expected second init to fail without --force")
	}

	st.Config.Search.Limit = 3
	if _, err := run(t, st, "init", "--force"); err != nil {
		t.Fatalf("forced init returned error: %v", err)
	}
	loaded, err := config.Load(st.ConfigPath)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if loaded.Search.Limit != 3 {
		t.Fatalf("expected forced init to overwrite, got limit %d", loaded.Search.Limit)
	}
}

func TestShowRedactsSecrets(t *testing.T) {
	st := newTestState(t)
	st.Config.S3.AccessKeyID = "AKIAEXAMPLE"
	st.Config.S3.SecretAccessKey = "super-secret"

	out, err := run(t, st, "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if strings.Contains(out, "super-secret") {
		t.Fatalf("expected secret to be redacted, got:\n%s", out)
	}
	for _, want := range []string{"# " + st.ConfigPath, "access_key_id: AKIAEXAMPLE", redacted, "limit: 10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if st.Config.S3.SecretAccessKey != "super-secret" {
		t.Fatalf("expected live config to keep the secret")
	}
}

func TestShowJSON(t *testing.T) {
	st := newTestState(t)
	st.Config.S3.SecretAccessKey = "super-secret"

	out, err := run(t, st, "show", "--json")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if strings.Contains(out, "super-secret") {
		t.Fatalf("expected secret to be omitted, got:\n%s", out)
	}

	var decoded config.Config
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("failed to decode output: %v\n%s", err, out)
	}
	if decoded.Catalog.Key != "name" || decoded.Search.Limit != 10 {
		t.Fatalf("unexpected decoded config %+v", decoded)
	}
}
