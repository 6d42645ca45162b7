package tokens

import (
	"fmt"
	"io"
	"strconv"

	"github.com/artuross/pineapple/internal/pineapple/lexer"
)

// writeTokens prints one token per line. Values are quoted so that blank
// and whitespace-only strings stay visible.
func writeTokens(w io.Writer, tokens []lexer.Token, styled bool) error {
	for _, token := range tokens {
		line := formatToken(token, styled)

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func formatToken(token lexer.Token, styled bool) string {
	tokenType := string(token.Type)

	if token.Value == "" && token.Type != lexer.TokenTypeString {
		if styled {
			return typeStyle.Render(tokenType)
		}

		return tokenType
	}

	value := strconv.Quote(token.Value)

	if !styled {
		return tokenType + " " + value
	}

	return typeStyle.Render(tokenType) + " " + valueStyle(token.Type).Render(value)
}
