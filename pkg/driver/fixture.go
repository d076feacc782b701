package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FixtureResult is the outcome of running one fixture directory against
// its manifest. Failures lists every expectation that did not hold; an
// empty list means the fixture passed.
type FixtureResult struct {
	Manifest    *FixtureManifest
	Stdout      string
	Diagnostics []Diagnostic
	Failures    []string
}

// Passed reports whether every manifest expectation held.
func (r *FixtureResult) Passed() bool {
	return len(r.Failures) == 0
}

// RunFixtureDir loads dir's manifest.yml, runs its source program, and
// checks stdout, exit code, and diagnostics against the expectations.
// Both the conformance test suite and `lox test` are built on this.
func RunFixtureDir(dir string) (*FixtureResult, error) {
	manifest, err := LoadFixtureManifest(filepath.Join(dir, "manifest.yml"))
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(filepath.Join(dir, manifest.Source))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	diags := Run(string(source), &out)

	result := &FixtureResult{
		Manifest:    manifest,
		Stdout:      out.String(),
		Diagnostics: diags,
	}
	result.Failures = checkExpectations(manifest.Expect, result)
	return result, nil
}

func checkExpectations(expect FixtureExpect, r *FixtureResult) []string {
	var failures []string
	if got := ExitCode(r.Diagnostics); got != expect.Exit {
		failures = append(failures, fmt.Sprintf("exit code = %d, want %d", got, expect.Exit))
	}
	if r.Stdout != expect.Stdout {
		failures = append(failures, fmt.Sprintf("stdout = %q, want %q", r.Stdout, expect.Stdout))
	}
	if len(r.Diagnostics) != len(expect.Errors) {
		failures = append(failures, fmt.Sprintf("diagnostic count = %d, want %d (%v)",
			len(r.Diagnostics), len(expect.Errors), r.Diagnostics))
		return failures
	}
	for i, want := range expect.Errors {
		if rendered := r.Diagnostics[i].Render(); !strings.Contains(rendered, want) {
			failures = append(failures, fmt.Sprintf("diagnostic %d = %q, want it to contain %q",
				i, rendered, want))
		}
	}
	return failures
}
