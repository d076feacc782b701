// Package lexer converts source text into a flat stream of ast.Token
// values. Scanning never fails fast: malformed input is recorded as a
// LexError and the scan continues with the next lexeme, so one bad token
// does not hide later ones.
package lexer

import (
	"fmt"
	"strconv"

	"lox/interpreter-go/pkg/ast"
)

// LexError reports a single malformed lexeme.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return e.Message
}

// Lexer holds all state required to tokenise one source string.
type Lexer struct {
	input   string
	pos     int  // index of ch
	readPos int  // next read position (pos + 1)
	ch      byte // current character under examination

	line   int // 1-based line of ch
	col    int // 1-based column of ch
	tokCol int // column at the start of the token being scanned

	errors []*LexError
}

// New creates a Lexer positioned at the first character of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// ScanTokens materialises the whole token stream, terminated by EOF,
// alongside any lexical errors encountered.
func ScanTokens(input string) ([]ast.Token, []*LexError) {
	l := New(input)
	var tokens []ast.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == ast.EOF {
			break
		}
	}
	return tokens, l.errors
}

// Errors returns the lexical errors recorded so far.
func (l *Lexer) Errors() []*LexError {
	return l.errors
}

// NextToken returns the next token, skipping whitespace and // comments.
// Malformed input is recorded via Errors and skipped; EOF is returned
// on every call once the input is exhausted.
func (l *Lexer) NextToken() ast.Token {
	for {
		l.skipWhitespaceAndComments()
		l.tokCol = l.col

		switch l.ch {
		case 0:
			return l.makeToken(ast.EOF, "")
		case '(':
			return l.single(ast.LPAREN)
		case ')':
			return l.single(ast.RPAREN)
		case '{':
			return l.single(ast.LBRACE)
		case '}':
			return l.single(ast.RBRACE)
		case ',':
			return l.single(ast.COMMA)
		case ';':
			return l.single(ast.SEMICOLON)
		case '-':
			return l.single(ast.MINUS)
		case '+':
			return l.single(ast.PLUS)
		case '*':
			return l.single(ast.STAR)
		case '/':
			return l.single(ast.SLASH)
		case '!':
			return l.withEquals(ast.BANG, ast.BANG_EQ)
		case '=':
			return l.withEquals(ast.ASSIGN, ast.EQ)
		case '<':
			return l.withEquals(ast.LT, ast.LT_EQ)
		case '>':
			return l.withEquals(ast.GT, ast.GT_EQ)
		case '"':
			tok, ok := l.readString()
			if !ok {
				continue
			}
			return tok
		default:
			if isDigit(l.ch) {
				return l.readNumber()
			}
			if canStartIdentifier(l.ch) {
				return l.readIdentifier()
			}
			l.report("Unexpected character '%c'.", l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) single(t ast.TokenType) ast.Token {
	tok := l.makeToken(t, string(l.ch))
	l.readChar()
	return tok
}

// withEquals applies maximal munch for the two-character '=' forms.
func (l *Lexer) withEquals(plain, withEq ast.TokenType) ast.Token {
	first := l.ch
	if l.peekChar() == '=' {
		l.readChar()
		tok := l.makeToken(withEq, string(first)+"=")
		l.readChar()
		return tok
	}
	tok := l.makeToken(plain, string(first))
	l.readChar()
	return tok
}

func (l *Lexer) readString() (ast.Token, bool) {
	start := l.pos
	startLine := l.line
	l.readChar()
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		l.errors = append(l.errors, &LexError{Line: startLine, Message: "Unterminated string literal."})
		return ast.Token{}, false
	}
	lexeme := l.input[start : l.pos+1]
	tok := ast.Token{
		Type:   ast.STRING,
		Lexeme: lexeme,
		Text:   lexeme[1 : len(lexeme)-1],
		Line:   startLine,
		Column: l.tokCol,
	}
	l.readChar()
	return tok, true
}

func (l *Lexer) readNumber() ast.Token {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	// A '.' only belongs to the number when a digit follows; "1." is the
	// number 1 followed by a stray dot.
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.pos]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		l.report("Could not convert %s into a number.", lexeme)
	}
	return ast.Token{Type: ast.NUMBER, Lexeme: lexeme, Number: value, Line: l.line, Column: l.tokCol}
}

func (l *Lexer) readIdentifier() ast.Token {
	start := l.pos
	for isIdentifierPart(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.pos]
	return ast.Token{Type: ast.LookupIdent(lexeme), Lexeme: lexeme, Line: l.line, Column: l.tokCol}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			if l.peekChar() != '/' {
				return
			}
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) makeToken(t ast.TokenType, lexeme string) ast.Token {
	return ast.Token{Type: t, Lexeme: lexeme, Line: l.line, Column: l.tokCol}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) report(format string, args ...any) {
	l.errors = append(l.errors, &LexError{Line: l.line, Message: fmt.Sprintf(format, args...)})
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func canStartIdentifier(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isIdentifierPart(ch byte) bool {
	return canStartIdentifier(ch) || isDigit(ch)
}
