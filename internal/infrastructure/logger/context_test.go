package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Equal(t, logger, got)
}

func TestFromContext_NotFound(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
	assert.NotPanics(t, func() {
		got.Info("should not panic")
	})
}

func TestWithRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "req-123", logs[0].ContextMap()["request_id"])
}

func TestGetRequestID_NotFound(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestWithTraceContext_NoSpan(t *testing.T) {
	logger := zap.NewNop()
	got := WithTraceContext(context.Background(), logger)
	// Without a recording span the logger passes through unchanged.
	assert.Equal(t, logger, got)
}

func TestContextLogger(t *testing.T) {
	t.Run("L extracts logger from context", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		ctx := WithContext(context.Background(), zap.New(core))

		L(ctx).Info("from context")
		require.Len(t, recorded.All(), 1)
		assert.Equal(t, "from context", recorded.All()[0].Message)
	})

	t.Run("WithLogger uses the provided logger", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)

		WithLogger(context.Background(), zap.New(core)).Info("direct")
		require.Len(t, recorded.All(), 1)
	})

	t.Run("includes request ID from context", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-abc")

		WithLogger(ctx, zap.New(core)).Info("tagged")
		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "req-abc", logs[0].ContextMap()["request_id"])
	})

	t.Run("With adds fields to child logger", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)

		WithLogger(context.Background(), zap.New(core)).
			With(zap.String("field1", "value1")).
			With(zap.String("field2", "value2")).
			Info("chained")
		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "value1", logs[0].ContextMap()["field1"])
		assert.Equal(t, "value2", logs[0].ContextMap()["field2"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		cl := &ContextLogger{ctx: context.Background()}
		assert.NotPanics(t, func() {
			cl.Debug("debug")
			cl.Info("info")
			cl.Warn("warn")
			cl.Error("error")
		})
	})

	t.Run("Zap returns usable logger", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		z := WithLogger(context.Background(), zap.New(core)).Zap()
		z.Info("via zap")
		require.Len(t, recorded.All(), 1)
	})
}
