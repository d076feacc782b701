package driver

import (
	"fmt"
	"io"

	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/lexer"
	"lox/interpreter-go/pkg/parser"
)

// Exit codes follow the sysexits convention used by the CLI: 65 for
// errors in the source text, 70 for failures during evaluation.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitStatic   = 65
	ExitRuntime  = 70
	ExitInternal = 1
)

// Check lexes and parses source without evaluating it, returning every
// static diagnostic found. An empty slice means the program is runnable.
func Check(source string) []Diagnostic {
	_, lexErrs, parseErrs := parser.ParseSource(source)
	return staticDiagnostics(lexErrs, parseErrs)
}

// Run executes source against a fresh interpreter whose print output
// goes to stdout. If any lexical or syntax error is present the program
// is not evaluated at all; otherwise evaluation stops at the first
// runtime error. The returned diagnostics are empty on success.
func Run(source string, stdout io.Writer) []Diagnostic {
	return RunWith(interpreter.New(stdout), source)
}

// RunWith executes source against an existing interpreter, preserving
// its global environment. The REPL feeds each input line through this
// so definitions persist between lines.
func RunWith(interp *interpreter.Interpreter, source string) []Diagnostic {
	program, lexErrs, parseErrs := parser.ParseSource(source)
	if diags := staticDiagnostics(lexErrs, parseErrs); len(diags) > 0 {
		return diags
	}
	if err := interp.Interpret(program); err != nil {
		return []Diagnostic{runtimeDiagnostic(err)}
	}
	return nil
}

// ExitCode maps a diagnostic set to the process exit code: static
// errors dominate runtime ones when both could apply.
func ExitCode(diags []Diagnostic) int {
	code := ExitOK
	for _, d := range diags {
		switch d.Stage {
		case StageLex, StageParse:
			return ExitStatic
		case StageRuntime:
			code = ExitRuntime
		}
	}
	return code
}

func staticDiagnostics(lexErrs []*lexer.LexError, parseErrs []*parser.ParseError) []Diagnostic {
	if len(lexErrs) == 0 && len(parseErrs) == 0 {
		return nil
	}
	diags := make([]Diagnostic, 0, len(lexErrs)+len(parseErrs))
	for _, err := range lexErrs {
		diags = append(diags, fromLexError(err))
	}
	for _, err := range parseErrs {
		diags = append(diags, fromParseError(err))
	}
	return diags
}

func runtimeDiagnostic(err error) Diagnostic {
	if runtimeErr, ok := err.(*interpreter.RuntimeError); ok {
		return fromRuntimeError(runtimeErr)
	}
	return Diagnostic{
		Stage:   StageRuntime,
		Message: fmt.Sprintf("internal error: %v", err),
	}
}
