// Package parser turns a token stream into an ast.Program by recursive
// descent. Syntax errors are collected rather than fatal: after
// reporting, the parser discards tokens up to the next statement
// boundary and resumes, so a single pass surfaces every independent
// error it can.
package parser

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/lexer"
)

// Parser consumes a materialised token stream. The stream must be
// terminated by an EOF token, as produced by lexer.ScanTokens.
type Parser struct {
	tokens []ast.Token
	pos    int
	errors []*ParseError
}

// New creates a parser over the given tokens.
func New(tokens []ast.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource scans and parses source text in one step, returning the
// program together with all lexical and syntax errors.
func ParseSource(source string) (*ast.Program, []*lexer.LexError, []*ParseError) {
	tokens, lexErrs := lexer.ScanTokens(source)
	program, parseErrs := New(tokens).Parse()
	return program, lexErrs, parseErrs
}

// Parse consumes the whole stream and returns the top-level statement
// sequence plus every syntax error encountered. Statements that failed
// to parse are omitted from the program.
func (p *Parser) Parse() (*ast.Program, []*ParseError) {
	var statements []ast.Statement
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	program := ast.NewProgram(statements)
	if len(p.tokens) > 0 {
		p.setSpan(program, p.tokens[0])
	}
	return program, p.errors
}

// Errors returns the syntax errors collected so far.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

//-----------------------------------------------------------------------------
// Declarations and statements
//-----------------------------------------------------------------------------

func (p *Parser) declaration() ast.Statement {
	var stmt ast.Statement
	var err error
	switch {
	case p.match(ast.FUN):
		stmt, err = p.functionDefinition()
	case p.match(ast.VAR):
		stmt, err = p.variableDeclaration()
	default:
		stmt, err = p.statement()
	}
	if err != nil {
		p.record(err)
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) functionDefinition() (ast.Statement, error) {
	start := p.previous()
	nameTok, err := p.consume(ast.IDENT, "Expected function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ast.LPAREN, "Expected '(' after function name."); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	if !p.check(ast.RPAREN) {
		for {
			paramTok, err := p.consume(ast.IDENT, "Expected parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, p.identifier(paramTok))
			if !p.match(ast.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(ast.RPAREN, "Expected ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(ast.LBRACE, "Expected '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	fn := ast.NewFunctionDefinition(p.identifier(nameTok), params, body)
	p.setSpan(fn, start)
	return fn, nil
}

func (p *Parser) variableDeclaration() (ast.Statement, error) {
	start := p.previous()
	nameTok, err := p.consume(ast.IDENT, "Expected variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(ast.ASSIGN) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(ast.SEMICOLON, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	decl := ast.NewVariableDeclaration(p.identifier(nameTok), initializer)
	p.setSpan(decl, start)
	return decl, nil
}

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(ast.FOR):
		return p.forStatement()
	case p.match(ast.IF):
		return p.ifStatement()
	case p.match(ast.PRINT):
		return p.printStatement()
	case p.match(ast.RETURN):
		return p.returnStatement()
	case p.match(ast.WHILE):
		return p.whileStatement()
	case p.match(ast.LBRACE):
		return p.blockBody()
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` into the
// equivalent while loop at parse time; the interpreter never sees a
// dedicated for node.
func (p *Parser) forStatement() (ast.Statement, error) {
	start := p.previous()
	if _, err := p.consume(ast.LPAREN, "Expected '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Statement
	var err error
	switch {
	case p.match(ast.SEMICOLON):
		initializer = nil
	case p.match(ast.VAR):
		initializer, err = p.variableDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expression
	if !p.check(ast.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	} else {
		condition = ast.NewBooleanLiteral(true)
		p.setSpan(condition, start)
	}
	if _, err := p.consume(ast.SEMICOLON, "Expected ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !p.check(ast.RPAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(ast.RPAREN, "Expected ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if increment != nil {
		incr := ast.NewExpressionStatement(increment)
		p.setSpan(incr, start)
		body = ast.NewBlockStatement([]ast.Statement{body, incr})
		p.setSpan(body, start)
	}
	var loop ast.Statement = ast.NewWhileLoop(condition, body)
	p.setSpan(loop, start)
	if initializer != nil {
		loop = ast.NewBlockStatement([]ast.Statement{initializer, loop})
		p.setSpan(loop, start)
	}
	return loop, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	start := p.previous()
	if _, err := p.consume(ast.LPAREN, "Expected '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ast.RPAREN, "Expected ')' after if condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	// The else binds to the nearest preceding unmatched if.
	var els ast.Statement
	if p.match(ast.ELSE) {
		els, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	stmt := ast.NewIfStatement(condition, then, els)
	p.setSpan(stmt, start)
	return stmt, nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	start := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ast.SEMICOLON, "Expected ';' after value."); err != nil {
		return nil, err
	}
	stmt := ast.NewPrintStatement(value)
	p.setSpan(stmt, start)
	return stmt, nil
}

func (p *Parser) returnStatement() (ast.Statement, error) {
	start := p.previous()
	var value ast.Expression
	if !p.check(ast.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(ast.SEMICOLON, "Expected ';' after return value."); err != nil {
		return nil, err
	}
	stmt := ast.NewReturnStatement(value)
	p.setSpan(stmt, start)
	return stmt, nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	start := p.previous()
	if _, err := p.consume(ast.LPAREN, "Expected '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ast.RPAREN, "Expected ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	stmt := ast.NewWhileLoop(condition, body)
	p.setSpan(stmt, start)
	return stmt, nil
}

// blockBody parses declarations until the closing brace. The opening
// brace has already been consumed.
func (p *Parser) blockBody() (*ast.BlockStatement, error) {
	start := p.previous()
	var body []ast.Statement
	for !p.check(ast.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			body = append(body, stmt)
		}
	}
	if _, err := p.consume(ast.RBRACE, "Expected '}' after block."); err != nil {
		return nil, err
	}
	block := ast.NewBlockStatement(body)
	p.setSpan(block, start)
	return block, nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	start := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ast.SEMICOLON, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	stmt := ast.NewExpressionStatement(expr)
	p.setSpan(stmt, start)
	return stmt, nil
}

//-----------------------------------------------------------------------------
// Expressions, lowest to highest binding power
//-----------------------------------------------------------------------------

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

// assignment is right-associative and restricted to bare identifier
// targets; anything else on the left of '=' is a syntax error.
func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(ast.ASSIGN) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		target, ok := expr.(*ast.Identifier)
		if !ok {
			return nil, errorAtToken(equals, "Invalid assignment target.")
		}
		assign := ast.NewAssignmentExpression(target, value)
		ast.SetSpan(assign, expr.Span())
		return assign, nil
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expression, error) {
	return p.logical(p.and, ast.OR)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.logical(p.equality, ast.AND)
}

func (p *Parser) logical(operand func() (ast.Expression, error), kind ast.TokenType) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		logical := ast.NewLogicalExpression(op.Lexeme, expr, right)
		ast.SetSpan(logical, expr.Span())
		expr = logical
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(p.comparison, ast.BANG_EQ, ast.EQ)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.term, ast.GT, ast.GT_EQ, ast.LT, ast.LT_EQ)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, ast.MINUS, ast.PLUS)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binary(p.unary, ast.SLASH, ast.STAR)
}

// binary parses one left-associative precedence level.
func (p *Parser) binary(operand func() (ast.Expression, error), kinds ...ast.TokenType) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		bin := ast.NewBinaryExpression(op.Lexeme, expr, right)
		ast.SetSpan(bin, expr.Span())
		expr = bin
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(ast.BANG, ast.MINUS) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr := ast.NewUnaryExpression(op.Lexeme, operand)
		p.setSpan(expr, op)
		return expr, nil
	}
	return p.call()
}

// call parses a primary followed by any number of argument lists,
// which permits chained calls such as f()().
func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(ast.LPAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	var args []ast.Expression
	if !p.check(ast.RPAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(ast.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(ast.RPAREN, "Expected ')' after arguments."); err != nil {
		return nil, err
	}
	call := ast.NewFunctionCall(callee, args)
	ast.SetSpan(call, callee.Span())
	return call, nil
}

// primary leaves an unexpected token unconsumed so that synchronize is
// the only place that skips it.
func (p *Parser) primary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case ast.TRUE:
		p.advance()
		return p.spanned(ast.NewBooleanLiteral(true), tok), nil
	case ast.FALSE:
		p.advance()
		return p.spanned(ast.NewBooleanLiteral(false), tok), nil
	case ast.NIL:
		p.advance()
		return p.spanned(ast.NewNilLiteral(), tok), nil
	case ast.NUMBER:
		p.advance()
		return p.spanned(ast.NewNumberLiteral(tok.Number), tok), nil
	case ast.STRING:
		p.advance()
		return p.spanned(ast.NewStringLiteral(tok.Text), tok), nil
	case ast.IDENT:
		p.advance()
		return p.identifier(tok), nil
	case ast.LPAREN:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(ast.RPAREN, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return p.spanned(ast.NewGroupingExpression(inner), tok), nil
	default:
		return nil, errorAtToken(tok, fmt.Sprintf("Expected expression, found %s.", tok.Type))
	}
}

//-----------------------------------------------------------------------------
// Token helpers
//-----------------------------------------------------------------------------

func (p *Parser) match(kinds ...ast.TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind ast.TokenType) bool {
	return p.peek().Type == kind
}

func (p *Parser) advance() ast.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) peek() ast.Token {
	if p.pos >= len(p.tokens) {
		return ast.Token{Type: ast.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) previous() ast.Token {
	if p.pos == 0 {
		return p.peek()
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == ast.EOF
}

func (p *Parser) consume(kind ast.TokenType, message string) (ast.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return ast.Token{}, errorAtToken(p.peek(), message)
}

func (p *Parser) record(err error) {
	if parseErr, ok := err.(*ParseError); ok {
		p.errors = append(p.errors, parseErr)
		return
	}
	p.errors = append(p.errors, &ParseError{Message: err.Error()})
}

// synchronize discards tokens up to the next statement boundary: just
// past a semicolon, or right before a keyword that begins a new
// declaration or statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == ast.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case ast.FUN, ast.VAR, ast.FOR, ast.IF, ast.WHILE, ast.PRINT, ast.RETURN:
			return
		}
		p.advance()
	}
}

func (p *Parser) identifier(tok ast.Token) *ast.Identifier {
	id := ast.NewIdentifier(tok.Lexeme)
	p.setSpan(id, tok)
	return id
}

func (p *Parser) spanned(expr ast.Expression, tok ast.Token) ast.Expression {
	p.setSpan(expr, tok)
	return expr
}

func (p *Parser) setSpan(node ast.Node, start ast.Token) {
	prev := p.previous()
	ast.SetSpan(node, ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   ast.Position{Line: prev.Line, Column: prev.Column + len(prev.Lexeme)},
	})
}
