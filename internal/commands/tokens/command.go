package tokens

import (
	"fmt"
	"os"

	"github.com/artuross/pineapple/internal/pineapple/lexer"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Prints the token stream of a source file.",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Source code to tokenize instead of a file.",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Disable colors and alignment.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	source, err := readSource(cliCtx.String("expr"), cliCtx.Args().Slice(), os.ReadFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	tokens := collect(lexer.New(source))

	if err := writeTokens(cliCtx.App.Writer, tokens, !cliCtx.Bool("plain")); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func readSource(expr string, args []string, readFile func(string) ([]byte, error)) (string, error) {
	if expr != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("flag --expr cannot be combined with a source file")
		}

		return expr, nil
	}

	if len(args) != 1 {
		return "", fmt.Errorf("exactly one source file or flag --expr is required")
	}

	data, err := readFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}

	return string(data), nil
}

// collect reads tokens up to and including the first EOF.
func collect(lex *lexer.Lexer) []lexer.Token {
	tokens := make([]lexer.Token, 0)

	for {
		token := lex.NextToken()
		tokens = append(tokens, token)

		if token.Type == lexer.TokenTypeEOF {
			return tokens
		}
	}
}
