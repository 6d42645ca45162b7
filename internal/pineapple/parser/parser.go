package parser

import (
	"github.com/artuross/pineapple/internal/pineapple/ast"
	"github.com/artuross/pineapple/internal/pineapple/lexer"
)

type Precedence int

const (
	PrecedenceLowest Precedence = iota
	PrecedenceCall              // "(" (function call)
)

var precedences = map[lexer.TokenType]Precedence{
	lexer.TokenTypeLeftParen: PrecedenceCall,
}

type Lexer interface {
	NextToken() lexer.Token
}

// Parser builds a program from a token stream with a single token of
// lookahead. Statements that fail to parse are left out of the program.
type Parser struct {
	lexer        Lexer
	currentToken lexer.Token
	nextToken    lexer.Token
}

func NewParser(lexer Lexer) *Parser {
	p := Parser{
		lexer: lexer,
	}

	// fill current and next
	p.advance()
	p.advance()

	return &p
}

// Parse consumes the whole token stream. Every iteration advances by at least
// one token, so parsing always terminates.
func (p *Parser) Parse() ast.Program {
	program := make(ast.Program, 0)

	for !p.currentTokenIs(lexer.TokenTypeEOF) {
		if stmt, ok := p.parseStatement(); ok {
			program = append(program, stmt)
		}

		p.advance()
	}

	return program
}

func (p *Parser) advance() {
	p.currentToken = p.nextToken
	p.nextToken = p.lexer.NextToken()
}

func (p *Parser) currentTokenIs(tokenType lexer.TokenType) bool {
	return p.currentToken.Type == tokenType
}

func (p *Parser) nextTokenIs(tokenType lexer.TokenType) bool {
	return p.nextToken.Type == tokenType
}

// expectNext advances only when the next token has the given type.
func (p *Parser) expectNext(tokenType lexer.TokenType) bool {
	if !p.nextTokenIs(tokenType) {
		return false
	}

	p.advance()

	return true
}

func (p *Parser) nextPrecedence() Precedence {
	if prec, ok := precedences[p.nextToken.Type]; ok {
		return prec
	}

	return PrecedenceLowest
}

func (p *Parser) parseStatement() (ast.Stmt, bool) {
	switch p.currentToken.Type {
	case lexer.TokenTypeLet:
		return p.parseLetStatement()

	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (ast.Stmt, bool) {
	if !p.expectNext(lexer.TokenTypeIdentifier) {
		return nil, false
	}

	name := &ast.Identifier{
		Name: p.currentToken.Value,
	}

	if !p.expectNext(lexer.TokenTypeAssign) {
		return nil, false
	}

	// step over "="
	p.advance()

	value, ok := p.parseExpression(PrecedenceLowest)
	if !ok {
		return nil, false
	}

	stmt := &ast.LetStmt{
		Name:  name,
		Value: value,
	}

	return stmt, true
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, bool) {
	expr, ok := p.parseExpression(PrecedenceLowest)
	if !ok {
		return nil, false
	}

	// separator is optional
	p.expectNext(lexer.TokenTypeSemicolon)

	stmt := &ast.ExprStmt{
		Expr: expr,
	}

	return stmt, true
}

func (p *Parser) parseExpression(prec Precedence) (ast.Expr, bool) {
	left, ok := p.parsePrefixExpression()
	if !ok {
		return nil, false
	}

	for !p.nextTokenIs(lexer.TokenTypeSemicolon) && prec < p.nextPrecedence() {
		switch p.nextToken.Type {
		case lexer.TokenTypeLeftParen:
			p.advance()

			left, ok = p.parseCallExpression(left)
			if !ok {
				return nil, false
			}

		default:
			// no other operator binds tighter than PrecedenceLowest
			return left, true
		}
	}

	return left, true
}

func (p *Parser) parsePrefixExpression() (ast.Expr, bool) {
	switch p.currentToken.Type {
	case lexer.TokenTypeIdentifier:
		expr := &ast.Identifier{
			Name: p.currentToken.Value,
		}

		return expr, true

	case lexer.TokenTypeString:
		expr := &ast.StringLiteral{
			Value: p.currentToken.Value,
		}

		return expr, true

	default:
		return nil, false
	}
}

// parseCallExpression expects the current token to be the opening paren.
func (p *Parser) parseCallExpression(callee ast.Expr) (ast.Expr, bool) {
	args, ok := p.parseExpressionList(lexer.TokenTypeRightParen)
	if !ok {
		return nil, false
	}

	expr := &ast.FunctionCall{
		Callee:    callee,
		Arguments: args,
	}

	return expr, true
}

// parseExpressionList reads at most one expression followed by the closing
// token. There is no argument separator, so a second argument fails the list.
func (p *Parser) parseExpressionList(end lexer.TokenType) ([]ast.Expr, bool) {
	list := make([]ast.Expr, 0)

	if p.nextTokenIs(end) {
		p.advance()

		return list, true
	}

	p.advance()

	expr, ok := p.parseExpression(PrecedenceLowest)
	if !ok {
		return nil, false
	}

	list = append(list, expr)

	if !p.expectNext(end) {
		return nil, false
	}

	return list, true
}
