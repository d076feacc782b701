package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lox/interpreter-go/pkg/driver"
)

func runEntry(args []string) int {
	return executeFile(args, os.Stdout, os.Stderr, driver.Run)
}

func runCheck(args []string) int {
	return executeFile(args, os.Stdout, os.Stderr, func(source string, _ io.Writer) []driver.Diagnostic {
		return driver.Check(source)
	})
}

func executeFile(args []string, stdout, stderr io.Writer, execute func(string, io.Writer) []driver.Diagnostic) int {
	if len(args) != 1 {
		if len(args) > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		} else {
			fmt.Fprintln(stderr, "expected a source file")
		}
		printUsage()
		return driver.ExitUsage
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "failed to read %s: %v\n", args[0], err)
		return driver.ExitInternal
	}

	diags := execute(string(source), stdout)
	for _, d := range diags {
		fmt.Fprintln(stderr, d.Render())
	}
	return driver.ExitCode(diags)
}
