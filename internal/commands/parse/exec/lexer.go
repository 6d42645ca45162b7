package exec

import (
	"github.com/artuross/pineapple/internal/pineapple/lexer"
	"github.com/artuross/pineapple/internal/pineapple/parser"
)

var _ parser.Lexer = (*countingLexer)(nil)

// countingLexer counts tokens up to and including the first EOF. The parser
// reads past EOF, those reads are not counted.
type countingLexer struct {
	lexer   *lexer.Lexer
	done    bool
	tokens  int
	illegal int
}

func newCountingLexer(lexer *lexer.Lexer) *countingLexer {
	return &countingLexer{
		lexer: lexer,
	}
}

func (l *countingLexer) NextToken() lexer.Token {
	token := l.lexer.NextToken()

	if l.done {
		return token
	}

	l.tokens++

	switch token.Type {
	case lexer.TokenTypeIllegal:
		l.illegal++

	case lexer.TokenTypeEOF:
		l.done = true
	}

	return token
}
