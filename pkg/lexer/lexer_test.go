package lexer_test

import (
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/lexer"
)

type tokenCase struct {
	expectedType   ast.TokenType
	expectedLexeme string
}

func runCases(t *testing.T, input string, want []tokenCase) {
	t.Helper()
	l := lexer.New(input)
	for i, tc := range want {
		tok := l.NextToken()
		if tok.Type != tc.expectedType {
			t.Errorf("case %d: type mismatch: got %s, want %s (lexeme %q)", i, tok.Type, tc.expectedType, tok.Lexeme)
		}
		if tok.Lexeme != tc.expectedLexeme {
			t.Errorf("case %d: lexeme mismatch: got %q, want %q", i, tok.Lexeme, tc.expectedLexeme)
		}
	}
	if errs := l.Errors(); len(errs) > 0 {
		t.Errorf("unexpected lexical errors: %v", errs)
	}
}

func TestLexerKeywords(t *testing.T) {
	input := `and or if else while for fun var print return true false nil andale`
	runCases(t, input, []tokenCase{
		{ast.AND, "and"},
		{ast.OR, "or"},
		{ast.IF, "if"},
		{ast.ELSE, "else"},
		{ast.WHILE, "while"},
		{ast.FOR, "for"},
		{ast.FUN, "fun"},
		{ast.VAR, "var"},
		{ast.PRINT, "print"},
		{ast.RETURN, "return"},
		{ast.TRUE, "true"},
		{ast.FALSE, "false"},
		{ast.NIL, "nil"},
		{ast.IDENT, "andale"},
		{ast.EOF, ""},
	})
}

func TestLexerOperatorsMaximalMunch(t *testing.T) {
	input := `! != = == < <= > >= + - * / ( ) { } , ;`
	runCases(t, input, []tokenCase{
		{ast.BANG, "!"},
		{ast.BANG_EQ, "!="},
		{ast.ASSIGN, "="},
		{ast.EQ, "=="},
		{ast.LT, "<"},
		{ast.LT_EQ, "<="},
		{ast.GT, ">"},
		{ast.GT_EQ, ">="},
		{ast.PLUS, "+"},
		{ast.MINUS, "-"},
		{ast.STAR, "*"},
		{ast.SLASH, "/"},
		{ast.LPAREN, "("},
		{ast.RPAREN, ")"},
		{ast.LBRACE, "{"},
		{ast.RBRACE, "}"},
		{ast.COMMA, ","},
		{ast.SEMICOLON, ";"},
		{ast.EOF, ""},
	})
}

func TestLexerNumberLiterals(t *testing.T) {
	l := lexer.New("0 42 3.14 1.")
	for _, want := range []float64{0, 42, 3.14, 1} {
		tok := l.NextToken()
		if tok.Type != ast.NUMBER {
			t.Fatalf("expected NUMBER, got %s (%q)", tok.Type, tok.Lexeme)
		}
		if tok.Number != want {
			t.Errorf("parsed value mismatch: got %v, want %v", tok.Number, want)
		}
	}
	// "1." scans as the number 1 followed by a stray dot, which is not a
	// valid token on its own.
	tok := l.NextToken()
	if tok.Type != ast.EOF {
		t.Fatalf("expected EOF after stray dot skipped, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error for the stray dot, got %v", l.Errors())
	}
}

func TestLexerStringLiterals(t *testing.T) {
	l := lexer.New(`"hello" "multi
line"`)
	tok := l.NextToken()
	if tok.Type != ast.STRING || tok.Text != "hello" {
		t.Fatalf("unexpected string token: %#v", tok)
	}
	if tok.Line != 1 {
		t.Errorf("string line: got %d, want 1", tok.Line)
	}
	tok = l.NextToken()
	if tok.Type != ast.STRING || tok.Text != "multi\nline" {
		t.Fatalf("unexpected multi-line string token: %#v", tok)
	}
	next := l.NextToken()
	if next.Type != ast.EOF {
		t.Fatalf("expected EOF, got %s", next.Type)
	}
	if next.Line != 2 {
		t.Errorf("line tracking across multi-line string: got %d, want 2", next.Line)
	}
}

func TestLexerUnterminatedStringDoesNotAbortScan(t *testing.T) {
	tokens, errs := lexer.ScanTokens("var a = \"oops;\nprint a;")
	if len(errs) != 1 {
		t.Fatalf("expected one lexical error, got %v", errs)
	}
	if errs[0].Message != "Unterminated string literal." {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
	if errs[0].Line != 1 {
		t.Errorf("unexpected line: %d", errs[0].Line)
	}
	// Tokens before the bad literal are still delivered.
	if len(tokens) < 4 || tokens[0].Type != ast.VAR || tokens[1].Type != ast.IDENT || tokens[2].Type != ast.ASSIGN {
		t.Fatalf("expected tokens before the error to survive, got %#v", tokens)
	}
	if tokens[len(tokens)-1].Type != ast.EOF {
		t.Fatalf("token stream must end with EOF")
	}
}

func TestLexerCommentsAreSkipped(t *testing.T) {
	runCases(t, "// leading comment\nvar x; // trailing\n// another\n", []tokenCase{
		{ast.VAR, "var"},
		{ast.IDENT, "x"},
		{ast.SEMICOLON, ";"},
		{ast.EOF, ""},
	})
}

func TestLexerLineAndColumnTracking(t *testing.T) {
	l := lexer.New("var a;\n  a = 1;")
	wants := []struct {
		line, col int
	}{
		{1, 1}, // var
		{1, 5}, // a
		{1, 6}, // ;
		{2, 3}, // a
		{2, 5}, // =
		{2, 7}, // 1
		{2, 8}, // ;
	}
	for i, want := range wants {
		tok := l.NextToken()
		if tok.Line != want.line || tok.Column != want.col {
			t.Errorf("token %d (%q): got %d:%d, want %d:%d", i, tok.Lexeme, tok.Line, tok.Column, want.line, want.col)
		}
	}
}

func TestLexerUnexpectedCharacterIsCollected(t *testing.T) {
	tokens, errs := lexer.ScanTokens("var a = 1 # 2;")
	if len(errs) != 1 {
		t.Fatalf("expected one lexical error, got %v", errs)
	}
	if errs[0].Message != "Unexpected character '#'." {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
	// The '#' is skipped; scanning resumes with the next lexeme.
	var kinds []ast.TokenType
	for _, tok := range tokens {
		kinds = append(kinds, tok.Type)
	}
	want := []ast.TokenType{ast.VAR, ast.IDENT, ast.ASSIGN, ast.NUMBER, ast.NUMBER, ast.SEMICOLON, ast.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("token kinds: got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token kinds: got %v, want %v", kinds, want)
		}
	}
}
