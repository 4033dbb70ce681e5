package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexanderramin/learnhub/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
		err  bool
	}{
		{"debug", zap.DebugLevel, false},
		{"INFO", zap.InfoLevel, false},
		{"", zap.WarnLevel, false},
		{"warning", zap.WarnLevel, false},
		{"error", zap.ErrorLevel, false},
		{"verbose", zap.WarnLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: "production", Log: config.LogConfig{Level: "info"}}

	log, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)
	log.Info("saved", zap.Int("bytes", 42))
	log.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.Equal(t, "learnhub", entry["logger"])
	assert.EqualValues(t, 42, entry["bytes"])
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: "local", Log: config.LogConfig{Level: "warn"}}

	log, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)
	log.Info("quiet")
	log.Warn("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "WARN")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}
