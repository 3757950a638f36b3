package main

import (
	"os"
	"path/filepath"
	"testing"

	"phpfix/internal/dialect"
	"phpfix/internal/token"
)

const sampleManifest = `
[php]
version = "8.1"

[whitespace]
cutset = " \t\n\r"

[rules]
enabled = ["double-whitespace"]
`

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "phpfix.toml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestFindPhpfixTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root)

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := findPhpfixToml(nested)
	if err != nil {
		t.Fatalf("findPhpfixToml failed: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("findPhpfixToml = %q, ok=%v; want %q", got, ok, want)
	}
}

func TestLoadManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root)

	m, ok, err := loadManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadManifest failed: ok=%v err=%v", ok, err)
	}
	if m.Config.Php.Version != "8.1" {
		t.Fatalf("php version = %q", m.Config.Php.Version)
	}
	if m.Config.Whitespace.Cutset != " \t\n\r" {
		t.Fatalf("cutset = %q", m.Config.Whitespace.Cutset)
	}
	if len(m.Config.Rules.Enabled) != 1 || m.Config.Rules.Enabled[0] != "double-whitespace" {
		t.Fatalf("rules = %+v", m.Config.Rules.Enabled)
	}
	if m.Root != root {
		t.Fatalf("manifest root = %q, want %q", m.Root, root)
	}
}

func TestLoadManifestMissingIsNotAnError(t *testing.T) {
	// пустой temp-каталог без phpfix.toml вплоть до корня — манифеста
	// может не быть, это штатный случай
	m, ok, err := loadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("missing manifest must not error: %v", err)
	}
	if ok || m != nil {
		t.Fatalf("missing manifest reported as found")
	}
}

func TestResolveRegistryPrecedence(t *testing.T) {
	t.Cleanup(func() { token.Configure(nil) })

	m := &manifest{Config: fileConfig{Php: phpConfig{Version: "8.1"}}}

	// flag beats manifest
	v, err := resolveRegistry("5.3", m)
	if err != nil {
		t.Fatalf("resolveRegistry failed: %v", err)
	}
	if v != dialect.V5_3 {
		t.Fatalf("version = %v, want 5.3", v)
	}

	// manifest beats the default
	v, err = resolveRegistry("", m)
	if err != nil {
		t.Fatalf("resolveRegistry failed: %v", err)
	}
	if v != dialect.V8_1 {
		t.Fatalf("version = %v, want 8.1", v)
	}

	// no flag, no manifest: latest
	v, err = resolveRegistry("", nil)
	if err != nil {
		t.Fatalf("resolveRegistry failed: %v", err)
	}
	if v != dialect.Latest {
		t.Fatalf("version = %v, want latest", v)
	}

	if _, err := resolveRegistry("not-a-version", nil); err == nil {
		t.Fatalf("malformed version must be an error")
	}
}
