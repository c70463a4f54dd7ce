package cmd

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestSetupModel(t *testing.T) {
	t.Run("choose english without demo data", func(t *testing.T) {
		m := press(newSetupModel("es"), "down", "enter", "n").(setupModel)

		assert.Equal(t, stepDone, m.step)
		assert.False(t, m.canceled)
		assert.Equal(t, SetupSettings{Lang: "en", Seed: false}, m.settings())
	})

	t.Run("defaults", func(t *testing.T) {
		m := press(newSetupModel("es"), "enter", "enter").(setupModel)

		assert.Equal(t, SetupSettings{Lang: "es", Seed: true}, m.settings())
	})

	t.Run("back to language", func(t *testing.T) {
		m := press(newSetupModel("en"), "enter", "esc").(setupModel)

		assert.Equal(t, stepLang, m.step)
		assert.Equal(t, "en", m.settings().Lang)
	})

	t.Run("cancel", func(t *testing.T) {
		m := press(newSetupModel("es"), "q").(setupModel)

		assert.True(t, m.canceled)
	})
}

func TestSaveSetupSettings(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "nested", "mantenedor.yaml")

	require.NoError(t, saveSetupSettings(path, SetupSettings{Lang: "en", Seed: true}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "lang: en\nseed: true\n", string(got))

	// the written file configures the next run
	cfg, err := Parse(os.Stderr, []string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Lang)
	assert.True(t, cfg.Seed)
}

func TestShouldRunSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mantenedor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lang: es\n"), 0o644))

	assert.False(t, shouldRunSetup(path))
}
