package commandinit_test

import (
	"bytes"
	"testing"

	"github.com/artuross/pineapple/internal/commandinit"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("default level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := commandinit.NewLogger(&buf, "", "parse")
		require.NoError(t, err)

		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

		logger.Debug().Msg("hidden")
		logger.Info().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "parse")
	})

	t.Run("explicit level", func(t *testing.T) {
		logger, err := commandinit.NewLogger(&bytes.Buffer{}, "debug", "parse")
		require.NoError(t, err)

		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := commandinit.NewLogger(&bytes.Buffer{}, "loud", "parse")
		require.Error(t, err)
	})
}
