package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
)

// ErrorKind classifies runtime failures for hosts that want to react
// differently per category. The message already carries the detail.
type ErrorKind int

const (
	TypeError ErrorKind = iota
	UndefinedVariable
	UndefinedAssignmentTarget
	ArityMismatch
	NotCallable
	InvalidReturn
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case UndefinedVariable:
		return "UndefinedVariable"
	case UndefinedAssignmentTarget:
		return "UndefinedAssignmentTarget"
	case ArityMismatch:
		return "ArityMismatch"
	case NotCallable:
		return "NotCallable"
	case InvalidReturn:
		return "InvalidReturn"
	default:
		return "RuntimeError"
	}
}

// RuntimeError is the single error type produced during evaluation.
// Line refers to the source line of the node that failed.
type RuntimeError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Render formats the error the way the CLI reports it.
func (e *RuntimeError) Render() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

func runtimeError(kind ErrorKind, node ast.Node, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Line:    node.Span().Start.Line,
		Message: fmt.Sprintf(format, args...),
	}
}
