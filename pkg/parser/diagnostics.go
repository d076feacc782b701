package parser

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
)

// SourceLocation captures a source position for parser diagnostics.
type SourceLocation struct {
	Line   int
	Column int
}

// ParseError includes a message plus the token the parser stopped on.
// AtEnd marks errors raised at the end of input, where no lexeme exists.
type ParseError struct {
	Message  string
	Location SourceLocation
	Lexeme   string
	AtEnd    bool
}

func (e *ParseError) Error() string {
	return e.Message
}

// Render formats the error the way the CLI reports it.
func (e *ParseError) Render() string {
	if e.AtEnd {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Location.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Location.Line, e.Lexeme, e.Message)
}

func errorAtToken(tok ast.Token, message string) *ParseError {
	return &ParseError{
		Message:  message,
		Location: SourceLocation{Line: tok.Line, Column: tok.Column},
		Lexeme:   tok.Lexeme,
		AtEnd:    tok.Type == ast.EOF,
	}
}
