package config

import (
	"fmt"
	"slices"

	"github.com/artuross/pineapple/internal/projectconfig"
)

type Flagger interface {
	String(name string) string
	Bool(name string) bool
}

type Format string

const (
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatSource Format = "source"
)

var formats = []Format{FormatJSON, FormatPretty, FormatSource}

type Config struct {
	Expr          string
	Files         []string
	Format        Format
	LogLevel      string
	OpenTelemetry bool
	ProjectFile   string
}

// Read merges flags, env vars and the optional project file, in that order of
// priority.
func Read(flags Flagger, args []string, getEnv func(string) string) (*Config, error) {
	// flags - optional
	expr := flags.String("expr")
	format := flags.String("format")
	logLevel := flags.String("log-level")
	projectFile := flags.String("project")
	openTelemetry := flags.Bool("otel")

	// envs - optional
	if format == "" {
		format = getEnv("PINEAPPLE_FORMAT")
	}

	if logLevel == "" {
		logLevel = getEnv("PINEAPPLE_LOG_LEVEL")
	}

	files := slices.Clone(args)

	if projectFile != "" {
		project, err := projectconfig.ReadConfigFile(projectFile)
		if err != nil {
			return nil, fmt.Errorf("flag --project: %w", err)
		}

		files = append(files, project.SourcePaths(projectFile)...)

		if format == "" {
			format = project.Format
		}

		if logLevel == "" {
			logLevel = project.LogLevel
		}
	}

	if format == "" {
		format = string(FormatPretty)
	}

	if !slices.Contains(formats, Format(format)) {
		return nil, fmt.Errorf("unsupported format %q, expected one of %v", format, formats)
	}

	if expr != "" && len(files) > 0 {
		return nil, fmt.Errorf("flag --expr cannot be combined with source files")
	}

	if expr == "" && len(files) == 0 {
		return nil, fmt.Errorf("at least one source file or flag --expr is required")
	}

	cfg := Config{
		Expr:          expr,
		Files:         files,
		Format:        Format(format),
		LogLevel:      logLevel,
		OpenTelemetry: openTelemetry,
		ProjectFile:   projectFile,
	}

	return &cfg, nil
}
