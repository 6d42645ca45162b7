package parse

import (
	"errors"
	"fmt"
	"os"

	"github.com/artuross/pineapple/internal/commandinit"
	"github.com/artuross/pineapple/internal/commands/parse/config"
	"github.com/artuross/pineapple/internal/commands/parse/exec"
	cli "github.com/urfave/cli/v2"
)

var ErrCommandFailed = errors.New("command failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parses source files and prints the syntax tree.",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Source code to parse instead of files.",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: pretty, json or source. Defaults to $PINEAPPLE_FORMAT or pretty.",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level. Defaults to $PINEAPPLE_LOG_LEVEL or info.",
			},
			&cli.StringFlag{
				Name:  "project",
				Usage: "Project file (.json, .toml, .yaml) listing sources to parse.",
			},
			&cli.BoolFlag{
				Name:  "otel",
				Usage: "Export traces to the OTLP endpoint from the OTEL_EXPORTER_OTLP_* env vars.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := commandinit.NewLogger(cliCtx.App.ErrWriter, cfg.LogLevel, "parse")
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Debug().
		Str("format", string(cfg.Format)).
		Strs("files", cfg.Files).
		Str("project", cfg.ProjectFile).
		Bool("otel", cfg.OpenTelemetry).
		Msg("running with config")

	tracerProvider, tpShutdown, err := commandinit.NewOpenTelemetry(ctx, "pineapple", cfg.OpenTelemetry)
	if err != nil {
		logger.Error().Err(err).Msg("init OTEL provider")
		return ErrCommandFailed
	}
	defer tpShutdown(ctx)

	ctx = logger.WithContext(ctx)

	executor := exec.NewExecutor(exec.WithTracerProvider(tracerProvider))

	results, err := executor.Run(ctx, exec.Config{Inputs: inputs(cfg)})
	if err != nil {
		logger.Error().Err(err).Msg("parse sources")
		return ErrCommandFailed
	}

	if err := writeResults(cliCtx.App.Writer, cfg.Format, results); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func inputs(cfg *config.Config) []exec.Input {
	if cfg.Expr != "" {
		return []exec.Input{
			{
				Name: exec.ExprInputName,
				Text: cfg.Expr,
			},
		}
	}

	inputs := make([]exec.Input, 0, len(cfg.Files))
	for _, file := range cfg.Files {
		inputs = append(inputs, exec.Input{
			Name: file,
			Path: file,
		})
	}

	return inputs
}
