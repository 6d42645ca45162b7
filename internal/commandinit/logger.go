package commandinit

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const DefaultLogLevel = "info"

// NewLogger creates the console logger shared by a command. An empty level
// means DefaultLogLevel.
func NewLogger(w io.Writer, level string, command string) (zerolog.Logger, error) {
	if level == "" {
		level = DefaultLogLevel
	}

	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(parsedLevel).
		With().
		Timestamp().
		Str("command", command).
		Logger()

	return logger, nil
}
