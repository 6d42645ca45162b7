package commandinit_test

import (
	"context"
	"testing"

	"github.com/artuross/pineapple/internal/commandinit"
	"github.com/artuross/pineapple/internal/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenTelemetryDisabled(t *testing.T) {
	ctx := context.Background()

	provider, shutdown, err := commandinit.NewOpenTelemetry(ctx, "pineapple", false)
	require.NoError(t, err)

	assert.Equal(t, defaults.TracerProvider, provider)
	assert.NoError(t, shutdown(ctx))
}
