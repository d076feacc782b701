package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFixtureManifestBasic(t *testing.T) {
	path := writeFixtureManifest(t, `
name: closures_counter
source: main.lox
expect:
  stdout: |
    1
    2
  exit: 0
`)

	manifest, err := LoadFixtureManifest(path)
	if err != nil {
		t.Fatalf("LoadFixtureManifest returned error: %v", err)
	}
	if manifest.Name != "closures_counter" {
		t.Fatalf("Name = %q, want closures_counter", manifest.Name)
	}
	if manifest.Source != "main.lox" {
		t.Fatalf("Source = %q, want main.lox", manifest.Source)
	}
	if manifest.Expect.Stdout != "1\n2\n" {
		t.Fatalf("Stdout = %q", manifest.Expect.Stdout)
	}
	if manifest.Expect.Exit != ExitOK {
		t.Fatalf("Exit = %d, want %d", manifest.Expect.Exit, ExitOK)
	}
}

func TestLoadFixtureManifestDefaultsSource(t *testing.T) {
	path := writeFixtureManifest(t, `
name: minimal
expect:
  exit: 0
`)
	manifest, err := LoadFixtureManifest(path)
	if err != nil {
		t.Fatalf("LoadFixtureManifest returned error: %v", err)
	}
	if manifest.Source != "main.lox" {
		t.Fatalf("Source should default to main.lox, got %q", manifest.Source)
	}
}

func TestLoadFixtureManifestRejectsUnknownKeys(t *testing.T) {
	path := writeFixtureManifest(t, `
name: typo
expect:
  exit: 0
  stdotu: "oops"
`)
	if _, err := LoadFixtureManifest(path); err == nil {
		t.Fatal("expected unknown-field error, got nil")
	}
}

func TestLoadFixtureManifestValidation(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		fragment string
	}{
		{
			name: "missing name",
			contents: `
name: ""
expect:
  exit: 0
`,
			fragment: "name must be provided",
		},
		{
			name: "bad exit code",
			contents: `
name: demo
expect:
  exit: 3
`,
			fragment: "expect.exit must be",
		},
		{
			name: "errors without failing exit",
			contents: `
name: demo
expect:
  exit: 0
  errors:
    - "[line 1] Error: anything"
`,
			fragment: "expect.errors requires a non-zero expect.exit",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixtureManifest(t, tc.contents)
			_, err := LoadFixtureManifest(path)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.fragment) {
				t.Fatalf("error %q missing fragment %q", err.Error(), tc.fragment)
			}
		})
	}
}

func TestWriteFixtureManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yml")
	original := &FixtureManifest{
		Name:   "syntax_recovery",
		Source: "main.lox",
		Expect: FixtureExpect{
			Exit: ExitStatic,
			Errors: []string{
				"[line 1] Error at '=': Expected expression.",
				"[line 3] Error at ';': Expected expression.",
			},
		},
	}

	if err := WriteFixtureManifest(original, path); err != nil {
		t.Fatalf("WriteFixtureManifest returned error: %v", err)
	}
	loaded, err := LoadFixtureManifest(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Name != original.Name || loaded.Expect.Exit != original.Expect.Exit {
		t.Fatalf("round trip mismatch: %#v", loaded)
	}
	if len(loaded.Expect.Errors) != 2 || loaded.Expect.Errors[0] != original.Expect.Errors[0] {
		t.Fatalf("errors did not survive round trip: %#v", loaded.Expect.Errors)
	}
}

func writeFixtureManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}
