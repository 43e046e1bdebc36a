package logger_test

import (
	"testing"

	"h3sed/core/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"WarnConsole", logger.Config{Level: "warn", Format: "console"}, zapcore.WarnLevel, false},
		{"InvalidLevel", logger.Config{Level: "loud", Format: "console"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestWithSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	id := logger.NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.WithSession(l, id).Info("Opened savefile")
	logger.WithSession(l, "").Info("No session")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, id, entries[0].ContextMap()["session_id"])
	assert.NotContains(t, entries[1].ContextMap(), "session_id")
}

func TestConfig_IsValidFormat(t *testing.T) {
	assert.True(t, logger.Config{Format: logger.FormatConsole}.IsValidFormat())
	assert.True(t, logger.Config{Format: logger.FormatJSON}.IsValidFormat())
	assert.False(t, logger.Config{Format: "xml"}.IsValidFormat())
}
