package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestNew(t *testing.T) {
	t.Run("default level", func(t *testing.T) {
		l, err := New(Options{})
		require.NoError(t, err)
		assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug level", func(t *testing.T) {
		l, err := New(Options{Level: "debug"})
		require.NoError(t, err)
		assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		l, err := New(Options{Level: "loud"})
		assert.Error(t, err)
		assert.Nil(t, l)
	})
}

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithSink(Options{JSON: true}, zapcore.InfoLevel, zapcore.AddSync(&buf), false)

	l.Infow("episode search sent", "episode_id", 42)
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "episode search sent", entry["msg"])
	assert.Equal(t, float64(42), entry["episode_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestFromCtx(t *testing.T) {
	ctx := WithCtx(context.Background(), Get())

	loggerFromCtx := FromCtx(ctx)

	assert.Same(t, Get(), loggerFromCtx)

	customLogger := Get().With("custom", "value")
	ctxWithCustomLogger := WithCtx(ctx, customLogger)

	loggerFromCustomCtx := FromCtx(ctxWithCustomLogger)

	assert.Same(t, customLogger, loggerFromCustomCtx)
	assert.NotSame(t, customLogger, FromCtx(ctxWithCustomLogger, "run_id", "abc"))
}

func TestFromCtx_NoLogger(t *testing.T) {
	assert.Same(t, Get(), FromCtx(context.Background()))
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Equal(t, newCtx, WithCtx(newCtx, logger))
}
