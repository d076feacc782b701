package interpreter

import (
	"io"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// Interpreter evaluates a parsed program against a persistent global
// environment. A single instance can interpret multiple programs in
// sequence, which is what the REPL relies on to carry definitions
// across lines.
type Interpreter struct {
	global *runtime.Environment
	stdout io.Writer
}

// New returns an interpreter whose print statements write to stdout.
// The global environment is pre-populated with the native functions.
func New(stdout io.Writer) *Interpreter {
	global := runtime.NewEnvironment(nil)
	registerBuiltins(global)
	return &Interpreter{global: global, stdout: stdout}
}

// GlobalEnvironment exposes the interpreter's outermost scope, mainly
// for hosts that want to inject additional bindings before running.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Interpret executes the program's statements in order. Execution stops
// at the first runtime error, which is returned as a *RuntimeError.
func (i *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := i.executeStatement(stmt, i.global); err != nil {
			if _, ok := err.(returnSignal); ok {
				return runtimeError(InvalidReturn, stmt, "Cannot return from top-level code.")
			}
			return err
		}
	}
	return nil
}
