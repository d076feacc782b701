package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  lox run <file.lox>")
	fmt.Fprintln(os.Stderr, "  lox <file.lox>")
	fmt.Fprintln(os.Stderr, "  lox check <file.lox>")
	fmt.Fprintln(os.Stderr, "  lox test [fixture-root]")
	fmt.Fprintln(os.Stderr, "  lox repl")
	fmt.Fprintln(os.Stderr, "  lox")
}
