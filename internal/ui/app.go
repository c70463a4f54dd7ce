package ui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mantenedor/internal/db"
	"mantenedor/internal/i18n"
	"mantenedor/internal/logging"
	"mantenedor/internal/model"
	"mantenedor/internal/util"
)

const logPaneHeight = 8

// infoMsg is a transient notice shown below the tabs.
type infoMsg string

// Model is the root Bubble Tea model.
type Model struct {
	db      *sql.DB
	catalog *i18n.Catalog
	logger  *logging.Logger
	screens map[model.Screen]screenDef
	lists   map[model.Screen]*ListModel
	screen  model.Screen

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	showingLogs bool

	keys KeyMap
	help help.Model
}

// New creates a new root model opening on the given screen.
func New(database *sql.DB, catalog *i18n.Catalog, logger *logging.Logger, start model.Screen) (Model, error) {
	screens, err := loadScreens()
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Styles.ShortKey = HelpKeyStyle
	h.Styles.ShortDesc = HelpDescStyle
	h.Styles.ShortSeparator = HelpDescStyle
	h.Styles.FullKey = HelpKeyStyle
	h.Styles.FullDesc = HelpDescStyle
	h.Styles.FullSeparator = HelpDescStyle

	return Model{
		db:      database,
		catalog: catalog,
		logger:  logger,
		screens: screens,
		lists:   make(map[model.Screen]*ListModel),
		screen:  start,
		keys:    DefaultKeyMap(),
		help:    h,
	}, nil
}

// Init loads the starting screen.
func (m Model) Init() tea.Cmd {
	return m.loadCmd(m.screen)
}

// List returns the list model of a screen, or nil if it is not loaded.
func (m Model) List(screen model.Screen) *ListModel {
	return m.lists[screen]
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.logger.Error("command failed", "error", msg.Err)
		return m, nil

	case infoMsg:
		m.info = string(msg)
		return m, nil

	case model.ClientsLoadedMsg:
		m.setList(model.ScreenClients, clientCells(msg.Clients, m.catalog))
		return m, nil

	case model.ProductsLoadedMsg:
		m.setList(model.ScreenProducts, productCells(msg.Products, m.catalog))
		return m, nil
	}

	return m, nil
}

// setList replaces a screen's list, discarding its previous filtering state.
func (m *Model) setList(screen model.Screen, rows [][]string) {
	def, ok := m.screens[screen]
	if !ok {
		m.error = fmt.Sprintf("no declaration for screen %q", screen.Key())
		return
	}
	list, err := NewListModel(def, rows, m.catalog, m.logger)
	if err != nil {
		delete(m.lists, screen)
		m.error = err.Error()
		m.logger.Error("initializing list", "screen", screen.Key(), "error", err)
		return
	}
	m.lists[screen] = list
	m.error = ""
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	list := m.lists[m.screen]
	// Keys go to the search box or selects while either is focused.
	if list != nil && list.Mode() != model.ModeNav {
		return m, list.Update(msg)
	}

	if m.showingHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showingHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showingHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.showingLogs = !m.showingLogs
		return m, nil
	case key.Matches(msg, m.keys.Clients):
		return m.switchTo(model.ScreenClients)
	case key.Matches(msg, m.keys.Products):
		return m.switchTo(model.ScreenProducts)
	case key.Matches(msg, m.keys.Reload):
		m.info = ""
		return m, m.loadCmd(m.screen)
	}

	if list == nil {
		return m, nil
	}
	m.info = ""
	return m, list.Update(msg)
}

func (m Model) switchTo(screen model.Screen) (tea.Model, tea.Cmd) {
	m.screen = screen
	m.info = ""
	if m.lists[screen] == nil {
		return m, m.loadCmd(screen)
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.help, m.keys, m.width, m.height)
	}

	title := m.catalog.Sprintf(m.screens[m.screen].Title)
	header := renderHeader([]string{title}, m.width)
	tabs := m.renderTabs()
	footer := FooterStyle.Width(m.width).Render(m.help.ShortHelpView(m.footerBindings()))

	top := []string{header, tabs}
	if m.error != "" {
		top = append(top, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		top = append(top, SuccessStyle.Width(m.width).Render(m.info))
	}
	topBlock := lipgloss.JoinVertical(lipgloss.Left, top...)

	contentHeight := m.height - lipgloss.Height(topBlock) - lipgloss.Height(footer)
	var logs string
	if m.showingLogs {
		logs = m.renderLogs(m.width, logPaneHeight)
		contentHeight -= lipgloss.Height(logs)
	}
	contentHeight = max(0, contentHeight)

	var content string
	if list := m.lists[m.screen]; list != nil {
		content = list.View(m.width, contentHeight)
	}
	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	parts := []string{topBlock, content}
	if logs != "" {
		parts = append(parts, logs)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) footerBindings() []key.Binding {
	list := m.lists[m.screen]
	if list == nil {
		return []key.Binding{m.keys.Clients, m.keys.Products, m.keys.Reload, m.keys.Logs, m.keys.Quit}
	}
	switch list.Mode() {
	case model.ModeSearch:
		return m.keys.searchBindings()
	case model.ModeSelect:
		return m.keys.selectBindings()
	}
	return m.keys.navBindings()
}

func (m Model) renderTabs() string {
	tabs := []model.Screen{model.ScreenClients, model.ScreenProducts}

	var tabStrings []string
	for _, screen := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == m.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(m.catalog.Sprintf(m.screens[screen].Title)))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func (m Model) renderLogs(width, height int) string {
	msgs := m.logger.Messages()
	if len(msgs) > height {
		msgs = msgs[len(msgs)-height:]
	}
	lines := []string{LabelStyle.Render(m.catalog.Sprintf(i18n.KeyLogs))}
	if len(msgs) == 0 {
		lines = append(lines, HelpDescStyle.Render(m.catalog.Sprintf(i18n.KeyNoLogs)))
	}
	for _, msg := range msgs {
		attrs := make([]string, 0, len(msg.Attributes))
		for _, a := range msg.Attributes {
			attrs = append(attrs, a.Key+"="+a.Value)
		}
		line := LogTimeStyle.Render(msg.Time.Format("15:04:05")) + " " +
			logLevelStyles[msg.Level].Render(util.PadRight(msg.Level, 5)) + " " +
			msg.Message + " " + LogAttrStyle.Render(strings.Join(attrs, " "))
		lines = append(lines, line)
	}
	return LogPaneStyle.Width(width).MaxHeight(height + 2).Render(strings.Join(lines, "\n"))
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("mantenedor")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := BreadcrumbStyle.Render(util.FormatDate(time.Now())) + "  "

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// Commands

func (m Model) loadCmd(screen model.Screen) tea.Cmd {
	switch screen {
	case model.ScreenProducts:
		return loadProductsCmd(m.db)
	default:
		return loadClientsCmd(m.db)
	}
}

func loadClientsCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		clients, err := db.ListClients(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ClientsLoadedMsg{Clients: clients}
	}
}

func loadProductsCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		products, err := db.ListProducts(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ProductsLoadedMsg{Products: products}
	}
}
