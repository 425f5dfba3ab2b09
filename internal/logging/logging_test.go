package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelWarn, cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestInit(t *testing.T) {
	t.Run("default_config", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := Config{
			Level:  slog.LevelInfo,
			JSON:   false,
			Output: &buf,
		}
		Init(cfg)

		logger := Logger()
		assert.NotNil(t, logger)
	})

	t.Run("json_config", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := Config{
			Level:  slog.LevelDebug,
			JSON:   true,
			Output: &buf,
		}
		Init(cfg)
		assert.True(t, Debug)
	})

	t.Run("nil_output_uses_stderr", func(t *testing.T) {
		cfg := Config{
			Level:  slog.LevelInfo,
			Output: nil,
		}
		Init(cfg)
		assert.NotNil(t, Logger())
	})
}

func TestInitDebug(t *testing.T) {
	InitDebug()
	assert.True(t, Debug)
}

func TestLogger(t *testing.T) {
	logger := Logger()
	assert.NotNil(t, logger)
}

func TestWith(t *testing.T) {
	logger := With("key", "value")
	assert.NotNil(t, logger)
}

func TestWithGroup(t *testing.T) {
	logger := WithGroup("test-group")
	assert.NotNil(t, logger)
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		Info("test message", "key", "value")
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("debug", func(t *testing.T) {
		buf.Reset()
		DebugLog("debug message", "key", "value")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("warn", func(t *testing.T) {
		buf.Reset()
		Warn("warn message", "key", "value")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		Error("error message", "key", "value")
		assert.Contains(t, buf.String(), "error message")
	})
}

func TestContextLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})

	ctx := context.Background()

	t.Run("info_context", func(t *testing.T) {
		buf.Reset()
		InfoContext(ctx, "test message", "key", "value")
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("debug_context", func(t *testing.T) {
		buf.Reset()
		DebugContext(ctx, "debug message", "key", "value")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("warn_context", func(t *testing.T) {
		buf.Reset()
		WarnContext(ctx, "warn message", "key", "value")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("error_context", func(t *testing.T) {
		buf.Reset()
		ErrorContext(ctx, "error message", "key", "value")
		assert.Contains(t, buf.String(), "error message")
	})
}

func TestLogOperation(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})

	buf.Reset()
	LogOperation("test-op", time.Now(), "extra", "data")
	assert.Contains(t, buf.String(), "test-op")
	assert.Contains(t, buf.String(), KeyDuration)
	assert.Contains(t, buf.String(), "extra")
}

func TestKeyConstants(t *testing.T) {
	assert.Equal(t, "request_id", KeyRequestID)
	assert.Equal(t, "op", KeyOperation)
	assert.Equal(t, "duration_ms", KeyDuration)
	assert.Equal(t, "error", KeyError)
	assert.Equal(t, "slot", KeySlot)
	assert.Equal(t, "level", KeyLevel)
	assert.Equal(t, "text", KeyText)
	assert.Equal(t, "score", KeyScore)
	assert.Equal(t, "path", KeyPath)
	assert.Equal(t, "status", KeyStatus)
	assert.Equal(t, "count", KeyCount)
}

// =============================================================================
// Context Tests
// =============================================================================

func TestGenerateRequestID(t *testing.T) {
	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.Len(t, id1, 16) // 8 bytes = 16 hex chars
	assert.NotEqual(t, id1, id2)
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-request-123")
	id := RequestIDFromContext(ctx)
	assert.Equal(t, "test-request-123", id)
}

func TestNewRequestContext(t *testing.T) {
	ctx := NewRequestContext()
	id := RequestIDFromContext(ctx)
	assert.NotEmpty(t, id)
	assert.Len(t, id, 16)
}

func TestRequestIDFromContext(t *testing.T) {
	t.Run("nil_context", func(t *testing.T) {
		id := RequestIDFromContext(nil)
		assert.Empty(t, id)
	})

	t.Run("no_request_id", func(t *testing.T) {
		id := RequestIDFromContext(context.Background())
		assert.Empty(t, id)
	})

	t.Run("with_request_id", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abc123")
		id := RequestIDFromContext(ctx)
		assert.Equal(t, "abc123", id)
	})
}

func TestLoggerFromContext(t *testing.T) {
	t.Run("without_request_id", func(t *testing.T) {
		logger := LoggerFromContext(context.Background())
		assert.NotNil(t, logger)
	})

	t.Run("with_request_id", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "test-123")
		logger := LoggerFromContext(ctx)
		assert.NotNil(t, logger)
	})
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{
		Level:  slog.LevelDebug,
		JSON:   true,
		Output: &buf,
	})

	ctx := WithRequestID(context.Background(), "test-ctx-123")

	t.Run("from_context", func(t *testing.T) {
		cl := FromContext(ctx)
		assert.NotNil(t, cl)
	})

	t.Run("with", func(t *testing.T) {
		cl := FromContext(ctx)
		cl2 := cl.With("key", "value")
		assert.NotNil(t, cl2)
	})

	t.Run("request_id", func(t *testing.T) {
		cl := FromContext(ctx)
		assert.Equal(t, "test-ctx-123", cl.RequestID())
	})

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		cl := FromContext(ctx)
		cl.Info("info message", "key", "value")
		assert.Contains(t, buf.String(), "info message")
	})

	t.Run("debug", func(t *testing.T) {
		buf.Reset()
		cl := FromContext(ctx)
		cl.Debug("debug message", "key", "value")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("warn", func(t *testing.T) {
		buf.Reset()
		cl := FromContext(ctx)
		cl.Warn("warn message", "key", "value")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		cl := FromContext(ctx)
		cl.Error("error message", "key", "value")
		assert.Contains(t, buf.String(), "error message")
	})
}

// =============================================================================
// Redact Tests
// =============================================================================

func TestMaskText(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", MaskText(""))
	})

	t.Run("short_is_fully_masked", func(t *testing.T) {
		assert.Equal(t, "***", MaskText("gym"))
	})

	t.Run("long_keeps_prefix_and_length", func(t *testing.T) {
		assert.Equal(t, "wri*** (13 chars)", MaskText("writing specs"))
	})

	t.Run("counts_runes", func(t *testing.T) {
		assert.Equal(t, "caf*** (6 chars)", MaskText("café ☕"))
	})
}

func TestIsPrivateField(t *testing.T) {
	assert.True(t, IsPrivateField("text"))
	assert.True(t, IsPrivateField("Label"))
	assert.True(t, IsPrivateField("entry"))
	assert.False(t, IsPrivateField("slot"))
	assert.False(t, IsPrivateField("path"))
}

func TestMaskArgs(t *testing.T) {
	t.Run("too_short", func(t *testing.T) {
		args := []any{"text"}
		assert.Equal(t, args, MaskArgs(args))
	})

	t.Run("masks_private_values", func(t *testing.T) {
		args := []any{KeySlot, 540, KeyText, "standup meeting"}
		result := MaskArgs(args)
		assert.Equal(t, 540, result[1])
		assert.Equal(t, "sta*** (15 chars)", result[3])
		// Original slice untouched
		assert.Equal(t, "standup meeting", args[3])
	})
}

func TestReplaceAttrInHandler(t *testing.T) {
	t.Run("masks_by_default", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})

		Info("slot edited", KeySlot, 540, KeyText, "dentist appointment")
		assert.NotContains(t, buf.String(), "dentist appointment")
		assert.Contains(t, buf.String(), "den***")
	})

	t.Run("show_text_disables_masking", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf, ShowText: true})

		Info("slot edited", KeyText, "dentist appointment")
		assert.Contains(t, buf.String(), "dentist appointment")
	})
}
