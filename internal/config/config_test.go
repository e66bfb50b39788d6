package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		cfg, err := New(writeConfig(t, `
server:
  addr: ":9090"
sessions:
  idle_timeout: 30m
  sweep_period: 10s
log:
  development: true
`))
		require.NoError(t, err)
		require.Equal(t, ":9090", cfg.Server.Addr)
		require.Equal(t, 30*time.Minute, cfg.Sessions.IdleTimeout)
		require.Equal(t, 10*time.Second, cfg.Sessions.SweepPeriod)
		require.True(t, cfg.Log.Development)
	})
	t.Run("defaults fill missing keys", func(t *testing.T) {
		cfg, err := New(writeConfig(t, "log:\n  development: false\n"))
		require.NoError(t, err)
		require.Equal(t, defaults(), cfg)
	})
	t.Run("empty address", func(t *testing.T) {
		_, err := New(writeConfig(t, "server:\n  addr: \"  \"\n"))
		require.ErrorIs(t, err, ErrInvalidAddr)
	})
	t.Run("non-positive duration", func(t *testing.T) {
		_, err := New(writeConfig(t, "sessions:\n  sweep_period: 0s\n"))
		require.True(t, errors.Is(err, ErrInvalidDuration), "got %v", err)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := New(writeConfig(t, "server: [\n"))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})
}
