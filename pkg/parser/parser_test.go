package parser_test

import (
	"strings"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/parser"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, lexErrs, parseErrs := parser.ParseSource(source)
	if len(lexErrs) > 0 {
		t.Fatalf("unexpected lexical errors: %v", lexErrs)
	}
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected syntax errors: %v", parseErrs)
	}
	return program
}

func parseExpression(t *testing.T, source string) ast.Expression {
	t.Helper()
	program := parseProgram(t, source+";")
	if len(program.Statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected expression statement, got %s", program.Statements[0].NodeType())
	}
	return stmt.Expression
}

func TestParserPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2 + 3 * 4", "2 + 3 * 4"},
		{"(2 + 3) * 4", "(2 + 3) * 4"},
		{"1 < 2 == true", "1 < 2 == true"},
		{"!true == false", "!true == false"},
		{"a or b and c", "a or b and c"},
		{"-1 * 2", "-1 * 2"},
	}
	for _, tc := range cases {
		expr := parseExpression(t, tc.input)
		if got := ast.Print(expr); got != tc.want {
			t.Errorf("%q: printed form %q, want %q", tc.input, got, tc.want)
		}
	}

	// The multiplication must bind tighter than the addition.
	expr := parseExpression(t, "2 + 3 * 4")
	add, ok := expr.(*ast.BinaryExpression)
	if !ok || add.Operator != "+" {
		t.Fatalf("root of '2 + 3 * 4' should be '+', got %#v", expr)
	}
	if mul, ok := add.Right.(*ast.BinaryExpression); !ok || mul.Operator != "*" {
		t.Fatalf("right operand should be the multiplication, got %#v", add.Right)
	}
}

func TestParserLeftAssociativity(t *testing.T) {
	expr := parseExpression(t, "10 - 2 - 3")
	outer, ok := expr.(*ast.BinaryExpression)
	if !ok || outer.Operator != "-" {
		t.Fatalf("expected '-' at root, got %#v", expr)
	}
	inner, ok := outer.Left.(*ast.BinaryExpression)
	if !ok || inner.Operator != "-" {
		t.Fatalf("subtraction should nest to the left, got %#v", outer.Left)
	}
	if lit, ok := outer.Right.(*ast.NumberLiteral); !ok || lit.Value != 3 {
		t.Fatalf("rightmost operand should be 3, got %#v", outer.Right)
	}
}

func TestParserAssignmentIsRightAssociative(t *testing.T) {
	expr := parseExpression(t, "a = b = 1")
	outer, ok := expr.(*ast.AssignmentExpression)
	if !ok || outer.Target.Name != "a" {
		t.Fatalf("expected assignment to a, got %#v", expr)
	}
	inner, ok := outer.Value.(*ast.AssignmentExpression)
	if !ok || inner.Target.Name != "b" {
		t.Fatalf("expected nested assignment to b, got %#v", outer.Value)
	}
}

func TestParserInvalidAssignmentTarget(t *testing.T) {
	_, _, parseErrs := parser.ParseSource("a + b = 1;")
	if len(parseErrs) != 1 {
		t.Fatalf("expected one syntax error, got %v", parseErrs)
	}
	if parseErrs[0].Message != "Invalid assignment target." {
		t.Errorf("unexpected message: %q", parseErrs[0].Message)
	}
}

func TestParserChainedCalls(t *testing.T) {
	expr := parseExpression(t, "f(1)(2, 3)")
	outer, ok := expr.(*ast.FunctionCall)
	if !ok || len(outer.Arguments) != 2 {
		t.Fatalf("expected outer call with two arguments, got %#v", expr)
	}
	inner, ok := outer.Callee.(*ast.FunctionCall)
	if !ok || len(inner.Arguments) != 1 {
		t.Fatalf("expected inner call with one argument, got %#v", outer.Callee)
	}
	if id, ok := inner.Callee.(*ast.Identifier); !ok || id.Name != "f" {
		t.Fatalf("expected callee f, got %#v", inner.Callee)
	}
}

func TestParserElseBindsToNearestIf(t *testing.T) {
	program := parseProgram(t, "if (a) if (b) print 1; else print 2;")
	outer, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected if statement, got %s", program.Statements[0].NodeType())
	}
	if outer.Else != nil {
		t.Fatalf("outer if must not own the else branch")
	}
	inner, ok := outer.Then.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected nested if, got %s", outer.Then.NodeType())
	}
	if inner.Else == nil {
		t.Fatalf("inner if must own the else branch")
	}
}

func TestParserForDesugarsToWhile(t *testing.T) {
	program := parseProgram(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block, ok := program.Statements[0].(*ast.BlockStatement)
	if !ok {
		t.Fatalf("for with initializer should desugar to a block, got %s", program.Statements[0].NodeType())
	}
	if len(block.Body) != 2 {
		t.Fatalf("desugared block should hold initializer + loop, got %d statements", len(block.Body))
	}
	if _, ok := block.Body[0].(*ast.VariableDeclaration); !ok {
		t.Fatalf("first statement should be the initializer, got %s", block.Body[0].NodeType())
	}
	loop, ok := block.Body[1].(*ast.WhileLoop)
	if !ok {
		t.Fatalf("second statement should be the while loop, got %s", block.Body[1].NodeType())
	}
	loopBody, ok := loop.Body.(*ast.BlockStatement)
	if !ok || len(loopBody.Body) != 2 {
		t.Fatalf("loop body should wrap original body + increment, got %#v", loop.Body)
	}
	if _, ok := loopBody.Body[1].(*ast.ExpressionStatement); !ok {
		t.Fatalf("increment should be the final statement of the loop body")
	}
}

func TestParserForWithoutConditionUsesTrue(t *testing.T) {
	program := parseProgram(t, "for (;;) print 1;")
	loop, ok := program.Statements[0].(*ast.WhileLoop)
	if !ok {
		t.Fatalf("bare for should desugar to a plain while, got %s", program.Statements[0].NodeType())
	}
	if lit, ok := loop.Condition.(*ast.BooleanLiteral); !ok || !lit.Value {
		t.Fatalf("missing condition should become literal true, got %#v", loop.Condition)
	}
}

func TestParserSynchronizationCollectsMultipleErrors(t *testing.T) {
	// Line 1 is missing the variable name, line 3 the initializer
	// expression; the prints on lines 2 and 4 are healthy.
	source := strings.Join([]string{
		"var = 1;",
		"print 2;",
		"var b = ;",
		"print 3;",
	}, "\n")
	program, _, parseErrs := parser.ParseSource(source)
	if len(parseErrs) != 2 {
		t.Fatalf("expected two syntax errors, got %d: %v", len(parseErrs), parseErrs)
	}
	if parseErrs[0].Location.Line != 1 || parseErrs[1].Location.Line != 3 {
		t.Errorf("error lines: got %d and %d, want 1 and 3", parseErrs[0].Location.Line, parseErrs[1].Location.Line)
	}
	// Both healthy statements survive the recovery.
	if len(program.Statements) != 2 {
		t.Fatalf("expected the two print statements to parse, got %d statements", len(program.Statements))
	}
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.PrintStatement); !ok {
			t.Errorf("expected print statement, got %s", stmt.NodeType())
		}
	}
}

func TestParserErrorRendering(t *testing.T) {
	_, _, parseErrs := parser.ParseSource("print 1")
	if len(parseErrs) != 1 {
		t.Fatalf("expected one syntax error, got %v", parseErrs)
	}
	rendered := parseErrs[0].Render()
	if rendered != "[line 1] Error at end: Expected ';' after value." {
		t.Errorf("unexpected rendering: %q", rendered)
	}
}
