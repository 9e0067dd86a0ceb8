package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PAVE_OUTPUT", "")
	t.Setenv("PAVE_LOG_LEVEL", "")
	t.Setenv(EnvConfigFile, "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pave.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAVE_OUTPUT", "yaml")
	t.Setenv("PAVE_LOG_LEVEL", "debug")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	t.Run("Option", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, "output: json\nlog_level: error\n")

		cfg, err := Load(Options{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, OutputJSON, cfg.Output)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("EnvVar", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigFile, writeConfig(t, "output: yaml\n"))

		cfg, err := Load(Options{})
		require.NoError(t, err)
		assert.Equal(t, OutputYAML, cfg.Output)
	})

	t.Run("EnvBeatsFile", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAVE_OUTPUT", "text")

		cfg, err := Load(Options{ConfigFile: writeConfig(t, "output: json\n")})
		require.NoError(t, err)
		assert.Equal(t, OutputText, cfg.Output)
	})

	t.Run("Missing", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
		assert.Error(t, err)
	})
}

func TestLoadFlags(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAVE_OUTPUT", "yaml")

		cfg, err := Load(Options{Flags: testFlags(t, "-o", "json", "--log-level", "info")})
		require.NoError(t, err)
		assert.Equal(t, OutputJSON, cfg.Output)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("Unset_FallsThrough", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAVE_OUTPUT", "yaml")

		cfg, err := Load(Options{Flags: testFlags(t)})
		require.NoError(t, err)
		assert.Equal(t, OutputYAML, cfg.Output)
		assert.Equal(t, "warn", cfg.LogLevel)
	})
}

func TestLoadInvalidOutput(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAVE_OUTPUT", "xml")

	_, err := Load(Options{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAVE_LOG_LEVEL", "chatty")

	_, err := Load(Options{})
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
