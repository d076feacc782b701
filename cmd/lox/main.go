package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "lox-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runRepl(nil)
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "repl":
		return runRepl(args[1:])
	case "check":
		return runCheck(args[1:])
	case "test":
		return runTest(args[1:])
	default:
		// `lox script.lox` is shorthand for `lox run script.lox`.
		return runEntry(args)
	}
}
