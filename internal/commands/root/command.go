package root

import (
	"github.com/artuross/pineapple/internal/commands/initialize"
	"github.com/artuross/pineapple/internal/commands/parse"
	"github.com/artuross/pineapple/internal/commands/tokens"
	"github.com/artuross/pineapple/internal/meta/version"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:    "pineapple",
		Usage:   "Tokenizes and parses pineapple source code.",
		Version: version.Version,
		Commands: []*cli.Command{
			initialize.NewCommand(),
			parse.NewCommand(),
			tokens.NewCommand(),
		},
	}
}
