package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	log, err := New(Config{})
	require.NoError(t, err)
	assert.NotNil(t, log)
	log.Info("smoke")
}

func TestNewJSONDebug(t *testing.T) {
	t.Parallel()

	log, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewBadLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Level: "shouting"})
	assert.Error(t, err)
}
