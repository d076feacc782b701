package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
)

func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return driver.ExitUsage
	}
	return repl(os.Stdin, os.Stdout, os.Stderr)
}

// repl reads one statement per line against a single interpreter, so
// definitions persist across lines. Errors are reported per line and
// never terminate the session.
func repl(in io.Reader, stdout, stderr io.Writer) int {
	interp := interpreter.New(stdout)
	scanner := bufio.NewScanner(in)

	fmt.Fprint(stdout, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			for _, d := range driver.RunWith(interp, line) {
				fmt.Fprintln(stderr, d.Render())
			}
		}
		fmt.Fprint(stdout, "> ")
	}
	fmt.Fprintln(stdout)

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "input error: %v\n", err)
		return driver.ExitInternal
	}
	return driver.ExitOK
}
