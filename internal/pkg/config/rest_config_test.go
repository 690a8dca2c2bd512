//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRestConfig_Defaults(t *testing.T) {
	cfg, err := ParseRestConfig([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, DefaultRestPort, cfg.Port)
	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Empty(t, cfg.Database.DSN)
}

func TestParseRestConfig_Full(t *testing.T) {
	data := []byte(`
port: "9090"
logger:
  log_level: debug
  log_type: file
  file_path: /tmp/crypto-test.log
  max_size: 10
  max_backups: 3
  max_age: 28
database:
  type: postgres
  dsn: "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
  db_name: kat_runs
`)
	cfg, err := ParseRestConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeFile, cfg.Logger.LogType)
	assert.Equal(t, 3, cfg.Logger.MaxBackups)
	assert.Equal(t, PostgresDbType, cfg.Database.Type)
	assert.Equal(t, "kat_runs", cfg.Database.DBName)
}

func TestParseRestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "port: [unterminated"},
		{"non numeric port", "port: http"},
		{"bad log level", "logger:\n  log_level: loud\n"},
		{"file logger without path", "logger:\n  log_type: file\n"},
		{"postgres without dsn", "database:\n  type: postgres\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRestConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadRestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"8181\"\n"), 0600))

	cfg, err := LoadRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8181", cfg.Port)

	_, err = LoadRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
