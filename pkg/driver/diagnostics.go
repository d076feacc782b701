package driver

import (
	"fmt"

	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/lexer"
	"lox/interpreter-go/pkg/parser"
)

// Stage identifies which phase of the pipeline produced a diagnostic.
type Stage string

const (
	StageLex     Stage = "lex"
	StageParse   Stage = "parse"
	StageRuntime Stage = "runtime"
)

// Diagnostic is the driver's stage-agnostic error report. Context carries
// the "at 'x'" / "at end" fragment for parse errors and is empty otherwise.
type Diagnostic struct {
	Stage   Stage
	Line    int
	Context string
	Message string
}

// Render formats the diagnostic the way the CLI prints it. Static errors
// use the single-line "[line N] Error ...: msg" form; runtime errors put
// the location on its own trailing line.
func (d Diagnostic) Render() string {
	switch d.Stage {
	case StageRuntime:
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	default:
		if d.Context != "" {
			return fmt.Sprintf("[line %d] Error %s: %s", d.Line, d.Context, d.Message)
		}
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	}
}

func fromLexError(err *lexer.LexError) Diagnostic {
	return Diagnostic{
		Stage:   StageLex,
		Line:    err.Line,
		Message: err.Message,
	}
}

func fromParseError(err *parser.ParseError) Diagnostic {
	context := fmt.Sprintf("at '%s'", err.Lexeme)
	if err.AtEnd {
		context = "at end"
	}
	return Diagnostic{
		Stage:   StageParse,
		Line:    err.Location.Line,
		Context: context,
		Message: err.Message,
	}
}

func fromRuntimeError(err *interpreter.RuntimeError) Diagnostic {
	return Diagnostic{
		Stage:   StageRuntime,
		Line:    err.Line,
		Message: err.Message,
	}
}
