package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogger_RedactsSensitiveKeys(t *testing.T) {
	log, logs := Observed(zapcore.DebugLevel)

	log.Info("customer saved", "id", 1, "email", "jane@example.com", "postgres_dsn", "host=db password=x")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 1, fields["id"])
	assert.Equal(t, "[REDACTED]", fields["email"])
	assert.Equal(t, "[REDACTED]", fields["postgres_dsn"])
}

func TestLogger_WithKeepsFields(t *testing.T) {
	log, logs := Observed(zapcore.InfoLevel)

	log.With("request_id", "abc").Warn("slow request", "latency_ms", 1200)
	log.Debug("dropped")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "abc", entries[0].ContextMap()["request_id"])
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "test", "prod"} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l)
	}
}
