package initialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/artuross/pineapple/internal/projectconfig"
	cli "github.com/urfave/cli/v2"
)

const defaultProjectFile = "pineapple.toml"

var ErrProjectFileExists = errors.New("project file already exists")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Writes a default project file.",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing project file.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	path := cliCtx.Args().First()
	if path == "" {
		path = defaultProjectFile
	}

	if err := writeProjectFile(path, cliCtx.Bool("force")); err != nil {
		return fmt.Errorf("init project: %w", err)
	}

	fmt.Fprintf(cliCtx.App.Writer, "Wrote %s\n", path)

	return nil
}

func writeProjectFile(path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s: %w", path, ErrProjectFileExists)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat project file: %w", err)
		}
	}

	return projectconfig.SaveConfigFile(path, projectconfig.Default())
}
