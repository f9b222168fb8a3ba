package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"json debug", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "console"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SEQGEN_LOG_LEVEL", "DEBUG")
	t.Setenv("SEQGEN_LOG_FORMAT", "json")
	t.Setenv("SEQGEN_LOG_DEV", "true")

	cfg := ConfigFromEnv()
	assert.Equal(t, Config{Level: "debug", Format: "json", Development: true}, cfg)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SEQGEN_LOG_LEVEL", "")
	t.Setenv("SEQGEN_LOG_FORMAT", "")
	t.Setenv("SEQGEN_LOG_DEV", "")

	assert.Equal(t, DefaultConfig(), ConfigFromEnv())
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("generated", zap.Int("count", 5))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(5), entry["count"])
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(DefaultConfig(), &buf)
	require.NoError(t, err)

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "nope", Format: "console"})
	assert.Error(t, err)
}
