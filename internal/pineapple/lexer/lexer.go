package lexer

import "slices"

type TokenType string

const (
	TokenTypeAssign     TokenType = "ASSIGN"
	TokenTypeBlank      TokenType = "BLANK"
	TokenTypeEOF        TokenType = "EOF"
	TokenTypeIdentifier TokenType = "IDENTIFIER"
	TokenTypeIllegal    TokenType = "ILLEGAL"
	TokenTypeLeftParen  TokenType = "LEFT_PAREN"
	TokenTypeLet        TokenType = "LET"
	TokenTypeRightParen TokenType = "RIGHT_PAREN"
	TokenTypeString     TokenType = "STRING"

	// Statement separator. Reserved: no input currently produces it.
	TokenTypeSemicolon TokenType = "SEMICOLON"
)

// eof is the byte reported once the cursor has moved past the input.
const eof byte = 0

var keywords = map[string]TokenType{
	"let": TokenTypeLet,
}

type Token struct {
	Type  TokenType
	Value string
}

func (t Token) String() string {
	switch t.Type {
	case TokenTypeIdentifier, TokenTypeString, TokenTypeIllegal:
		return string(t.Type) + "(" + t.Value + ")"

	default:
		return string(t.Type)
	}
}

// Lexer reads tokens from source on demand. Nothing is buffered: the current
// byte and the byte after it are always derived from the cursor.
type Lexer struct {
	input    string
	position int
}

func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
	}
}

// NextToken returns the next token. After the input is exhausted it keeps
// returning EOF without moving the cursor.
func (l *Lexer) NextToken() Token {
	for {
		l.advanceWhitespace()

		ch := l.peek()

		switch {
		case l.atEOF():
			return Token{Type: TokenTypeEOF}

		case ch == '=':
			return l.readSingle(TokenTypeAssign)

		case ch == '(':
			return l.readSingle(TokenTypeLeftParen)

		case ch == ')':
			return l.readSingle(TokenTypeRightParen)

		case isIdentifierCharacter(ch):
			return l.readIdentifier()

		case isStringOpeningCharacter(ch):
			return l.readString()

		case ch == '\n':
			if l.peekNext() == '\n' {
				// only the first newline is consumed, the second one is
				// looked at again on the next call
				l.read()

				return Token{Type: TokenTypeBlank}
			}

			l.read()

		default:
			return l.readSingle(TokenTypeIllegal)
		}
	}
}

func (l *Lexer) advanceWhitespace() {
	for slices.Contains([]byte{' ', '\t'}, l.peek()) {
		l.read()
	}
}

func (l *Lexer) readSingle(tokenType TokenType) Token {
	startPos := l.position

	l.read()

	return Token{
		Type:  tokenType,
		Value: l.input[startPos:l.position],
	}
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.position

	ch := l.read()
	invariant(!isIdentifierCharacter(ch), "readIdentifier: first character is not valid")

	for !l.atEOF() && isIdentifierCharacter(l.peek()) {
		l.read()
	}

	value := l.input[startPos:l.position]

	if tokenType, isKeyword := keywords[value]; isKeyword {
		return Token{Type: tokenType, Value: value}
	}

	return Token{Type: TokenTypeIdentifier, Value: value}
}

// readString consumes a double quoted string. There are no escape sequences
// and a missing closing quote ends the string at the end of input.
func (l *Lexer) readString() Token {
	// discard the opening quote
	ch := l.read()
	invariant(!isStringOpeningCharacter(ch), "readString: first character is not valid")

	startPos := l.position

	for !l.atEOF() && !isStringOpeningCharacter(l.peek()) {
		l.read()
	}

	value := l.input[startPos:l.position]

	// closing quote, no-op at the end of input
	l.read()

	return Token{
		Type:  TokenTypeString,
		Value: value,
	}
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.position >= len(l.input) {
		return eof
	}

	return l.input[l.position]
}

func (l *Lexer) peekNext() byte {
	if l.position+1 >= len(l.input) {
		return eof
	}

	return l.input[l.position+1]
}

func (l *Lexer) read() byte {
	ch := l.peek()

	if l.position < len(l.input) {
		l.position++
	}

	return ch
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentifierCharacter(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isStringOpeningCharacter(ch byte) bool {
	return ch == '"'
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}
