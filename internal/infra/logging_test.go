package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var entries []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "traffic-advisory-service")

	logger.Printf(context.Background(), "loop started, interval=%s", "1s")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "loop started, interval=1s", entries[0].Message)
	assert.Equal(t, "traffic-advisory-service", entries[0].Service)
	assert.NotEmpty(t, entries[0].Timestamp)
}

func TestLoggerSuppressesDebugByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Debugf(context.Background(), "noisy detail")
	logger.Errorf(context.Background(), "boom")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
}

func TestLoggerDebugLevelOptIn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test").WithMinLevel(LevelDebug)

	logger.Debugf(context.Background(), "vehicle %d entered", 7)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0].Level)
	assert.Equal(t, "vehicle 7 entered", entries[0].Message)
}

func TestLoggerCarriesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	ctx := WithCorrelationID(context.Background(), "req-42")
	logger.Println(ctx, "state set to ACTIVE")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].TraceID)
}

func TestCorrelationIDRoundTrip(t *testing.T) {
	assert.Empty(t, CorrelationIDFromContext(context.Background()))

	ctx := WithCorrelationID(context.Background(), "  abc  ")
	assert.Equal(t, "abc", CorrelationIDFromContext(ctx))
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger

	logger.Printf(context.Background(), "ignored")
	logger.Debugf(context.Background(), "ignored")
	logger.Errorf(context.Background(), "ignored")
}
