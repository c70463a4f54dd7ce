package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"mantenedor/internal/i18n"
	"mantenedor/internal/util"
)

// SetupSettings are the answers of the first-run setup, written to the config
// file under the names of the flags they set.
type SetupSettings struct {
	Lang string `yaml:"lang"`
	Seed bool   `yaml:"seed"`
}

func saveSetupSettings(path string, settings SetupSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func shouldRunSetup(configFile string) bool {
	if _, err := os.Stat(configFile); !errors.Is(err, os.ErrNotExist) {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type setupStep int

const (
	stepLang setupStep = iota
	stepSeed
	stepDone
)

type setupModel struct {
	step     setupStep
	langs    []string
	langIdx  int
	seed     bool
	canceled bool
	width    int
	height   int
}

var (
	setupColorMuted  = lipgloss.Color("#7E8C80")
	setupColorText   = lipgloss.Color("#D6E0D3")
	setupColorAccent = lipgloss.Color("#8FA082")

	setupTitleStyle = lipgloss.NewStyle().
			Foreground(setupColorAccent).
			Bold(true)

	setupHeaderStyle = lipgloss.NewStyle().
				Foreground(setupColorAccent).
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(setupColorMuted)

	setupTabsStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(setupColorMuted)

	setupTabInactive = lipgloss.NewStyle().
				Foreground(setupColorMuted).
				Padding(0, 2)

	setupTabActive = lipgloss.NewStyle().
			Foreground(setupColorText).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	setupPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(setupColorMuted).
			Padding(1, 2)

	setupLabelStyle = lipgloss.NewStyle().
			Foreground(setupColorAccent).
			Bold(true)

	setupMutedStyle = lipgloss.NewStyle().
			Foreground(setupColorMuted)

	setupOptionStyle = lipgloss.NewStyle().
				Foreground(setupColorText)

	setupOptionSelected = lipgloss.NewStyle().
				Foreground(setupColorAccent).
				Bold(true)

	setupFooterStyle = lipgloss.NewStyle().
				Foreground(setupColorMuted).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(setupColorMuted)
)

var langNames = map[string]string{
	"es": "Español",
	"en": "English",
}

func newSetupModel(lang string) setupModel {
	m := setupModel{
		step:  stepLang,
		langs: i18n.ValidLangs(),
		seed:  true,
	}
	for i, l := range m.langs {
		if l == lang {
			m.langIdx = i
		}
	}
	return m
}

func (m setupModel) settings() SetupSettings {
	return SetupSettings{Lang: m.langs[m.langIdx], Seed: m.seed}
}

func (m setupModel) Init() tea.Cmd { return nil }

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if s := msg.String(); s == "ctrl+c" || s == "q" {
			m.canceled = true
			m.step = stepDone
			return m, tea.Quit
		}
		switch m.step {
		case stepLang:
			switch msg.String() {
			case "up", "k":
				m.langIdx = (m.langIdx - 1 + len(m.langs)) % len(m.langs)
			case "down", "j":
				m.langIdx = (m.langIdx + 1) % len(m.langs)
			case "enter":
				m.step = stepSeed
			}
			return m, nil
		case stepSeed:
			switch msg.String() {
			case "y", "Y":
				m.seed = true
				return m.finish()
			case "n", "N":
				m.seed = false
				return m.finish()
			case "up", "k", "left", "h":
				m.seed = true
			case "down", "j", "right", "l":
				m.seed = false
			case "enter":
				return m.finish()
			case "esc":
				m.step = stepLang
			}
			return m, nil
		}
	}
	return m, nil
}

func (m setupModel) finish() (tea.Model, tea.Cmd) {
	m.step = stepDone
	return m, tea.Quit
}

func (m setupModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	tabs := m.renderTabs(width)
	footer := m.renderFooter(width)

	contentHeight := max(8, height-6)
	content := m.renderContent(width, contentHeight)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, footer)

	return lipgloss.NewStyle().
		Foreground(setupColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m setupModel) renderHeader(width int) string {
	left := "  " + setupTitleStyle.Render("mantenedor") + " " + setupMutedStyle.Render("› Setup")
	right := setupMutedStyle.Render(util.FormatDate(time.Now())) + "  "
	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return setupHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m setupModel) renderTabs(width int) string {
	langTab := setupTabInactive.Render("Language")
	seedTab := setupTabInactive.Render("Demo data")
	switch m.step {
	case stepLang:
		langTab = setupTabActive.Render("Language")
	case stepSeed:
		seedTab = setupTabActive.Render("Demo data")
	}
	return setupTabsStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, "  ", langTab, seedTab))
}

func (m setupModel) renderFooter(width int) string {
	switch m.step {
	case stepLang:
		return setupFooterStyle.Width(width).Render("↑↓/jk to navigate  enter to confirm  q cancel")
	case stepSeed:
		return setupFooterStyle.Width(width).Render("y/n enter to confirm  esc back  q cancel")
	default:
		return setupFooterStyle.Width(width).Render("Setup complete")
	}
}

func option(selected bool, label string) string {
	if selected {
		return "  " + setupOptionSelected.Render("→ "+label)
	}
	return "    " + setupOptionStyle.Render(label)
}

func (m setupModel) renderContent(width, height int) string {
	cardWidth := min(92, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepLang:
		lines := []string{setupLabelStyle.Render("Language for counters and labels?"), ""}
		for i, l := range m.langs {
			lines = append(lines, option(i == m.langIdx, langNames[l]))
		}
		lines = append(lines, "", setupMutedStyle.Render("You can change this later with --lang or in the config file"))
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	case stepSeed:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			setupLabelStyle.Render("Load demo clients and products into an empty database?"),
			"",
			option(m.seed, "Load demo data"),
			option(!m.seed, "Start empty"),
		)
	default:
		body = setupLabelStyle.Render("Setup Complete")
	}

	card := setupPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

// runSetup asks for the first-run settings and writes them to the config
// file. A canceled setup writes the defaults so it is not asked again.
func runSetup(configFile, lang string) error {
	prog := tea.NewProgram(newSetupModel(lang), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return fmt.Errorf("setup tui failed: %w", err)
	}
	m, ok := finalModel.(setupModel)
	if !ok {
		return fmt.Errorf("unexpected setup model type")
	}
	settings := m.settings()
	if m.canceled {
		settings = SetupSettings{Lang: i18n.DefaultLang}
	}
	return saveSetupSettings(configFile, settings)
}
