package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "file://.", cfg.Store)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "bitset", cfg.Mode)
	assert.Equal(t, "dense", cfg.Bitmap)
	assert.True(t, cfg.Sorted)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, int64(1), cfg.Seed)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("mode: naive\nlog-level: warn\nsets: 7\n"), 0o600))

	t.Setenv("SETCOVER_LOG_LEVEL", "debug")
	t.Setenv("SETCOVER_UNIVERSE", "55")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("sets", 100, "")
	flags.String("bitmap", "dense", "")
	require.NoError(t, flags.Parse([]string{"--bitmap", "roaring"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "naive", cfg.Mode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 55, cfg.Universe)
	// An unchanged flag default loses to the config file.
	assert.Equal(t, 7, cfg.Sets)
	assert.Equal(t, "roaring", cfg.Bitmap)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
