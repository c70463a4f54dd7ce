package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterbourgon/ff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantenedor/internal/model"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestParse_Defaults(t *testing.T) {
	home := setupHome(t)

	cfg, err := Parse(os.Stderr, []string{"--skip-setup"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".mantenedor", "mantenedor.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".mantenedor.yaml"), cfg.ConfigFile)
	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, model.ScreenClients, cfg.Screen)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Seed)
	assert.DirExists(t, filepath.Join(home, ".mantenedor"))
}

func TestParse_Precedence(t *testing.T) {
	home := setupHome(t)
	configFile := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("lang: en\nscreen: productos\nseed: true\n"), 0o644))

	t.Run("config file", func(t *testing.T) {
		cfg, err := Parse(os.Stderr, []string{"--config", configFile})
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Lang)
		assert.Equal(t, model.ScreenProducts, cfg.Screen)
		assert.True(t, cfg.Seed)
	})

	t.Run("env overrides config file", func(t *testing.T) {
		t.Setenv("MANTENEDOR_SCREEN", "clientes")

		cfg, err := Parse(os.Stderr, []string{"--config", configFile})
		require.NoError(t, err)

		assert.Equal(t, model.ScreenClients, cfg.Screen)
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("MANTENEDOR_LANG", "en")

		cfg, err := Parse(os.Stderr, []string{"--config", configFile, "--lang", "es", "--log-level", "debug"})
		require.NoError(t, err)

		assert.Equal(t, "es", cfg.Lang)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})
}

func TestParse_Invalid(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown language", []string{"--skip-setup", "--lang", "fr"}},
		{"unknown screen", []string{"--skip-setup", "--screen", "proveedores"}},
		{"unknown log level", []string{"--skip-setup", "--log-level", "trace"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := Parse(&stderr, tt.args)
			assert.Error(t, err)
			assert.Contains(t, stderr.String(), "--lang")
		})
	}
}

func TestParse_Help(t *testing.T) {
	setupHome(t)

	var stderr bytes.Buffer
	_, err := Parse(&stderr, []string{"--help"})

	assert.ErrorIs(t, err, ff.ErrHelp)
	assert.Contains(t, stderr.String(), "--screen")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nMANTENEDOR_TEST_A=\"uno\"\nexport MANTENEDOR_TEST_B=dos\nMANTENEDOR_TEST_C=tres\nnot a pair\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("MANTENEDOR_TEST_A", "")
	t.Setenv("MANTENEDOR_TEST_B", "")
	// already set values win
	t.Setenv("MANTENEDOR_TEST_C", "preset")

	loadDotEnv(path)

	assert.Equal(t, "uno", os.Getenv("MANTENEDOR_TEST_A"))
	assert.Equal(t, "dos", os.Getenv("MANTENEDOR_TEST_B"))
	assert.Equal(t, "preset", os.Getenv("MANTENEDOR_TEST_C"))
}
