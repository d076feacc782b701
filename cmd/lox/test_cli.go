package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lox/interpreter-go/pkg/driver"
)

// runTest executes every fixture directory under the given root
// (default fixtures/exec) and reports pass/fail per fixture.
func runTest(args []string) int {
	root := filepath.Join("fixtures", "exec")
	switch len(args) {
	case 0:
	case 1:
		root = args[0]
	default:
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return driver.ExitUsage
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read fixture root %s: %v\n", root, err)
		return driver.ExitInternal
	}

	total, failed := 0, 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		total++
		result, err := driver.RunFixtureDir(filepath.Join(root, entry.Name()))
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", entry.Name(), err)
			continue
		}
		if result.Passed() {
			fmt.Fprintf(os.Stdout, "ok   %s\n", entry.Name())
			continue
		}
		failed++
		fmt.Fprintf(os.Stderr, "FAIL %s\n", entry.Name())
		for _, failure := range result.Failures {
			fmt.Fprintf(os.Stderr, "     %s\n", failure)
		}
	}

	fmt.Fprintf(os.Stdout, "%d fixtures, %d failed\n", total, failed)
	if failed > 0 {
		return driver.ExitInternal
	}
	return driver.ExitOK
}
