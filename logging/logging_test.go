package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/grafos/config"
	"github.com/katalvlaran/grafos/logging"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		cfg := config.Default()
		cfg.LogFormat = format

		logger, err := logging.NewLogger(cfg)
		require.NoError(t, err, format)
		assert.True(t, logger.Core().Enabled(zap.WarnLevel), format)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel), format)
	}
}

// TestConfig_WarnHasNoStacktrace writes a warning with the default settings
// and checks that only the message line is emitted.
func TestConfig_WarnHasNoStacktrace(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.txt")
	zapCfg := logging.Config(config.Default())
	zapCfg.OutputPaths = []string{out}

	logger, err := zapCfg.Build()
	require.NoError(t, err)
	logger.Warn("graph is disconnected", zap.Int("components", 2))
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "WARN")
	assert.Contains(t, text, "graph is disconnected")
	assert.NotContains(t, text, "testing.tRunner")
	assert.NotContains(t, text, "goroutine")
	assert.Equal(t, 1, countLines(text))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, logging.Level("DEBUG"))
	assert.Equal(t, zap.WarnLevel, logging.Level("warn"))
	assert.Equal(t, zap.ErrorLevel, logging.Level("error"))
	assert.Equal(t, zap.InfoLevel, logging.Level("info"))
	assert.Equal(t, zap.InfoLevel, logging.Level("chatty"))
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
