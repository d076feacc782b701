package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FixtureManifest describes one execution fixture: a source file plus
// the exact observable behavior it must produce. The conformance suite
// under fixtures/exec is driven entirely by these files.
type FixtureManifest struct {
	Path   string
	Name   string
	Source string
	Expect FixtureExpect
}

// FixtureExpect captures the expected run outcome. Errors entries are
// matched as substrings of the rendered diagnostics, in order.
type FixtureExpect struct {
	Stdout string
	Exit   int
	Errors []string
}

// LoadFixtureManifest parses a manifest.yml from disk. Unknown keys are
// rejected so a typoed expectation fails loudly instead of passing.
func LoadFixtureManifest(path string) (*FixtureManifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	manifest := raw.toManifest()
	manifest.Path = abs
	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", abs, err)
	}
	return manifest, nil
}

// WriteFixtureManifest serialises the manifest back to disk.
func WriteFixtureManifest(manifest *FixtureManifest, path string) error {
	if manifest == nil {
		return fmt.Errorf("manifest: nil manifest")
	}
	if path == "" {
		if manifest.Path == "" {
			return fmt.Errorf("manifest: missing path")
		}
		path = manifest.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	if err := manifest.validate(); err != nil {
		return fmt.Errorf("manifest: %s: %w", abs, err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(manifest.toDisk()); err != nil {
		return fmt.Errorf("manifest: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("manifest: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", abs, err)
	}
	manifest.Path = abs
	return nil
}

func (m *FixtureManifest) validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Source = strings.TrimSpace(m.Source)
	if m.Name == "" {
		return fmt.Errorf("name must be provided")
	}
	if m.Source == "" {
		m.Source = "main.lox"
	}
	switch m.Expect.Exit {
	case ExitOK, ExitStatic, ExitRuntime:
	default:
		return fmt.Errorf("expect.exit must be %d, %d, or %d (got %d)",
			ExitOK, ExitStatic, ExitRuntime, m.Expect.Exit)
	}
	if m.Expect.Exit == ExitOK && len(m.Expect.Errors) > 0 {
		return fmt.Errorf("expect.errors requires a non-zero expect.exit")
	}
	for i, entry := range m.Expect.Errors {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("expect.errors[%d] is empty", i)
		}
	}
	return nil
}

type manifestDisk struct {
	Name   string             `yaml:"name"`
	Source string             `yaml:"source,omitempty"`
	Expect manifestExpectDisk `yaml:"expect"`
}

type manifestExpectDisk struct {
	Stdout string   `yaml:"stdout,omitempty"`
	Exit   int      `yaml:"exit"`
	Errors []string `yaml:"errors,omitempty"`
}

func (d manifestDisk) toManifest() *FixtureManifest {
	return &FixtureManifest{
		Name:   strings.TrimSpace(d.Name),
		Source: strings.TrimSpace(d.Source),
		Expect: FixtureExpect{
			Stdout: d.Expect.Stdout,
			Exit:   d.Expect.Exit,
			Errors: append([]string(nil), d.Expect.Errors...),
		},
	}
}

func (m *FixtureManifest) toDisk() manifestDisk {
	return manifestDisk{
		Name:   m.Name,
		Source: m.Source,
		Expect: manifestExpectDisk{
			Stdout: m.Expect.Stdout,
			Exit:   m.Expect.Exit,
			Errors: append([]string(nil), m.Expect.Errors...),
		},
	}
}
