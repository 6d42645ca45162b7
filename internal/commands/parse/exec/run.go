package exec

import (
	"context"
	"fmt"
	"os"

	"github.com/artuross/pineapple/internal/defaults"
	"github.com/artuross/pineapple/internal/log/semconv"
	"github.com/artuross/pineapple/internal/pineapple/ast"
	"github.com/artuross/pineapple/internal/pineapple/lexer"
	"github.com/artuross/pineapple/internal/pineapple/parser"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/artuross/pineapple/internal/commands/parse/exec"

	// ExprInputName is the display name of inline source.
	ExprInputName = "<expr>"

	defaultConcurrency = 4
)

type Input struct {
	// Name is used in logs and output headers.
	Name string

	// Path is read when Text is empty.
	Path string
	Text string
}

type Config struct {
	Inputs      []Input
	Concurrency int
}

type Result struct {
	Input         Input
	Program       ast.Program
	Tokens        int
	IllegalTokens int
}

type Executor struct {
	readFile func(string) ([]byte, error)
	tracer   trace.Tracer
}

func NewExecutor(options ...func(*Executor)) *Executor {
	executor := Executor{
		readFile: os.ReadFile,
		tracer:   defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

// Run parses every input concurrently. Each input gets its own lexer and
// parser; results are returned in input order.
func (e *Executor) Run(ctx context.Context, config Config) ([]Result, error) {
	ctx, span := e.tracer.Start(ctx, "run")
	defer span.End()

	runID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate run ID: %w", err)
	}

	span.SetAttributes(attribute.String(semconv.RunID, runID.String()))

	logger := zerolog.Ctx(ctx).With().Str(semconv.RunID, runID.String()).Logger()
	ctx = logger.WithContext(ctx)

	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]Result, len(config.Inputs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for index, input := range config.Inputs {
		group.Go(func() error {
			result, err := e.parseInput(ctx, input)
			if err != nil {
				return fmt.Errorf("parse %s: %w", input.Name, err)
			}

			results[index] = *result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (e *Executor) parseInput(ctx context.Context, input Input) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "parse input", trace.WithAttributes(attribute.String(semconv.Source, input.Name)))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str(semconv.Source, input.Name).Logger()

	source := input.Text
	if source == "" && input.Path != "" {
		data, err := e.readFile(input.Path)
		if err != nil {
			logger.Error().Err(err).Msg("read source file")
			return nil, fmt.Errorf("read source file: %w", err)
		}

		source = string(data)
	}

	logger.Debug().Int(semconv.SourceBytes, len(source)).Msg("parsing source")

	lex := newCountingLexer(lexer.New(source))
	program := parser.NewParser(lex).Parse()

	span.SetAttributes(
		attribute.Int(semconv.Statements, len(program)),
		attribute.Int(semconv.Tokens, lex.tokens),
		attribute.Int(semconv.IllegalTokens, lex.illegal),
	)

	event := logger.Info()
	if lex.illegal > 0 {
		event = logger.Warn()
	}

	event.
		Int(semconv.Statements, len(program)).
		Int(semconv.Tokens, lex.tokens).
		Int(semconv.IllegalTokens, lex.illegal).
		Msg("parsed source")

	result := Result{
		Input:         input,
		Program:       program,
		Tokens:        lex.tokens,
		IllegalTokens: lex.illegal,
	}

	return &result, nil
}

func WithReadFile(readFile func(string) ([]byte, error)) func(*Executor) {
	return func(e *Executor) {
		e.readFile = readFile
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}
