package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-registry/pkg/config"
)

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	log, err := NewLogger(config.LoggerConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: path,
		MaxSize:  1,
	})
	require.NoError(t, err)

	log.Info("запись в файл")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "запись в файл")
	assert.Contains(t, string(data), `"timestamp"`)
}

func TestNewLogger_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggerConfig
	}{
		{"unknown level", config.LoggerConfig{Level: "loud", Format: "json", Output: "stdout"}},
		{"unknown format", config.LoggerConfig{Level: "info", Format: "xml", Output: "stdout"}},
		{"unknown output", config.LoggerConfig{Level: "info", Format: "json", Output: "syslog"}},
		{"file without path", config.LoggerConfig{Level: "info", Format: "json", Output: "file"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLogger(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestColorsEnabled(t *testing.T) {
	assert.False(t, colorsEnabled(config.LoggerConfig{EnableColors: true, Format: "json", Output: "stdout"}))
	assert.False(t, colorsEnabled(config.LoggerConfig{EnableColors: true, Format: "console", Output: "file"}))
	assert.False(t, colorsEnabled(config.LoggerConfig{EnableColors: false, Format: "console", Output: "stdout"}))
}
