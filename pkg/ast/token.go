package ast

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ILLEGAL marks input the lexer could not turn into a token.
	ILLEGAL TokenType = iota
	// EOF terminates every token stream.
	EOF

	// Literals and names.
	IDENT
	NUMBER
	STRING

	// Punctuation.
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	SEMICOLON

	// Operators. Multi-character forms are produced by maximal munch:
	// the lexer prefers BANG_EQ over BANG, LT_EQ over LT, and so on.
	MINUS
	PLUS
	SLASH
	STAR
	BANG
	BANG_EQ
	ASSIGN
	EQ
	GT
	GT_EQ
	LT
	LT_EQ

	// Keywords.
	AND
	OR
	IF
	ELSE
	WHILE
	FOR
	FUN
	VAR
	PRINT
	RETURN
	TRUE
	FALSE
	NIL
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "end of input",
	IDENT:     "identifier",
	NUMBER:    "number",
	STRING:    "string",
	LPAREN:    "'('",
	RPAREN:    "')'",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	COMMA:     "','",
	SEMICOLON: "';'",
	MINUS:     "'-'",
	PLUS:      "'+'",
	SLASH:     "'/'",
	STAR:      "'*'",
	BANG:      "'!'",
	BANG_EQ:   "'!='",
	ASSIGN:    "'='",
	EQ:        "'=='",
	GT:        "'>'",
	GT_EQ:     "'>='",
	LT:        "'<'",
	LT_EQ:     "'<='",
	AND:       "'and'",
	OR:        "'or'",
	IF:        "'if'",
	ELSE:      "'else'",
	WHILE:     "'while'",
	FOR:       "'for'",
	FUN:       "'fun'",
	VAR:       "'var'",
	PRINT:     "'print'",
	RETURN:    "'return'",
	TRUE:      "'true'",
	FALSE:     "'false'",
	NIL:       "'nil'",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a single lexeme scanned from source text. Position is 1-based.
// Number carries the parsed value for NUMBER tokens and Text the unquoted
// contents for STRING tokens; both are zero otherwise.
type Token struct {
	Type   TokenType
	Lexeme string
	Number float64
	Text   string
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"and":    AND,
	"or":     OR,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"fun":    FUN,
	"var":    VAR,
	"print":  PRINT,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
	"nil":    NIL,
}

// LookupIdent reclassifies identifier text that matches a reserved word.
func LookupIdent(name string) TokenType {
	if t, ok := keywords[name]; ok {
		return t
	}
	return IDENT
}
