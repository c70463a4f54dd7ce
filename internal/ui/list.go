package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/maps"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mantenedor/internal/datatable"
	"mantenedor/internal/i18n"
	"mantenedor/internal/logging"
	"mantenedor/internal/model"
	"mantenedor/internal/tablefilter"
	"mantenedor/internal/util"
)

// selectControl is a filter or page size select cycling through a fixed set
// of options. The empty option stands for all values.
type selectControl struct {
	id       string
	label    string
	column   int
	options  []string
	index    int
	onChange func(value string)
}

// SetValue selects the option equal to value, adding it if missing.
func (s *selectControl) SetValue(value string) {
	for i, o := range s.options {
		if strings.EqualFold(o, value) {
			s.index = i
			return
		}
	}
	s.options = append(s.options, value)
	s.index = len(s.options) - 1
}

func (s *selectControl) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.index]
}

func (s *selectControl) cycle(delta int) {
	n := len(s.options)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
	if s.onChange != nil {
		s.onChange(s.Value())
	}
}

type searchControl struct {
	input *textinput.Model
}

func (s searchControl) SetValue(value string) { s.input.SetValue(value) }

// ListModel is a list screen: a table of rows with a search box, filter and
// page size selects and a clear action, kept in step by a table filter
// controller.
type ListModel struct {
	def     screenDef
	catalog *i18n.Catalog
	logger  logging.Interface
	keys    KeyMap

	table      *datatable.Table
	controller *tablefilter.Controller

	mode     model.Mode
	search   textinput.Model
	onSearch func(text string)
	selects  []*selectControl
	pageSize *selectControl
	focus    int
	onClear  func()

	counter   string
	cursor    int
	offset    int
	paginator paginator.Model
}

// NewListModel builds the list screen for def over already rendered rows and
// initializes its controller.
func NewListModel(def screenDef, rows [][]string, catalog *i18n.Catalog, logger logging.Interface) (*ListModel, error) {
	table := datatable.New(len(def.Columns), rows,
		datatable.WithCaseSensitive(def.Table.CaseSensitive),
		datatable.WithNumericColumns(def.numericColumns()...),
		datatable.WithPageLength(def.Table.WithDefaults().DefaultPageSize),
	)

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = catalog.Sprintf(i18n.KeySearch) + "..."
	search.CharLimit = 64
	search.Width = 24

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = ActiveDotStyle.Render("•")
	p.InactiveDot = InactiveDotStyle.Render("•")

	m := &ListModel{
		def:       def,
		catalog:   catalog,
		logger:    logger,
		keys:      DefaultKeyMap(),
		table:     table,
		search:    search,
		paginator: p,
	}

	collator := collate.New(language.Make(catalog.Lang()), collate.IgnoreCase)
	for _, f := range def.Controls.Filters {
		m.selects = append(m.selects, &selectControl{
			id:      f.ID,
			label:   catalog.Sprintf(f.Label),
			column:  f.Column,
			options: filterOptions(table, f.Column, def.matchMode(f.Column), collator),
		})
	}
	if def.Controls.PageLength != "" {
		sizes := def.Table.WithDefaults().PageSizes
		options := make([]string, 0, len(sizes))
		for _, n := range sizes {
			options = append(options, strconv.Itoa(n))
		}
		m.pageSize = &selectControl{
			id:      def.Controls.PageLength,
			label:   catalog.Sprintf(i18n.KeyPageSize),
			column:  -1,
			options: options,
		}
		m.selects = append(m.selects, m.pageSize)
	}

	cfg := def.Table
	cfg.DefaultStatusValue = catalog.Sprintf(cfg.DefaultStatusValue)
	controller, err := tablefilter.Initialize(table, m, catalog, cfg, tablefilter.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s: %w", strings.ToLower(def.Title), err)
	}
	m.controller = controller

	logger.Info("loaded list", "screen", def.Title, "rows", len(rows), "table", controller.ID())
	return m, nil
}

// filterOptions returns the distinct values of a column, sorted, preceded by
// the empty option. Substring filtered columns hold comma separated values,
// each of which is an option.
func filterOptions(table *datatable.Table, column int, mode tablefilter.MatchMode, collator *collate.Collator) []string {
	set := make(map[string]struct{})
	for _, cell := range table.Column(column) {
		values := []string{strings.TrimSpace(cell)}
		if mode == tablefilter.Substring {
			values = util.SplitCategories(cell)
		}
		for _, v := range values {
			if v != "" {
				set[v] = struct{}{}
			}
		}
	}
	options := maps.Keys(set)
	collator.SortStrings(options)
	return append([]string{""}, options...)
}

func (m *ListModel) BindSearchInput(onChange func(string)) (tablefilter.Control, error) {
	if m.def.Controls.SearchBox == "" {
		return nil, fmt.Errorf("search box: %w", tablefilter.ErrControlNotFound)
	}
	m.onSearch = onChange
	return searchControl{input: &m.search}, nil
}

func (m *ListModel) BindColumnFilter(column int, onChange func(string)) (tablefilter.Control, error) {
	for _, s := range m.selects {
		if s != m.pageSize && s.column == column {
			s.onChange = onChange
			return s, nil
		}
	}
	return nil, fmt.Errorf("filter on column %d: %w", column, tablefilter.ErrControlNotFound)
}

func (m *ListModel) BindPageSizeControl(onChange func(string)) (tablefilter.Control, error) {
	if m.pageSize == nil {
		return nil, fmt.Errorf("page length: %w", tablefilter.ErrControlNotFound)
	}
	m.pageSize.onChange = onChange
	return m.pageSize, nil
}

func (m *ListModel) BindClearAction(onClick func()) error {
	if m.def.Controls.ClearFilters == "" {
		return fmt.Errorf("clear filters: %w", tablefilter.ErrControlNotFound)
	}
	m.onClear = onClick
	return nil
}

func (m *ListModel) SetCounterText(text string) { m.counter = text }

// Counter returns the record counter text.
func (m *ListModel) Counter() string { return m.counter }

// Mode returns whether keys go to the rows, the search box or the selects.
func (m *ListModel) Mode() model.Mode { return m.mode }

// State returns the filtering state of the list.
func (m *ListModel) State() tablefilter.FilterState { return m.controller.State() }

// SelectedRow returns the cells of the row under the cursor, or nil.
func (m *ListModel) SelectedRow() []string {
	rows := m.table.PageRows()
	if m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

// Update handles a key press and returns any resulting command.
func (m *ListModel) Update(msg tea.KeyMsg) tea.Cmd {
	defer m.clampCursor()

	switch m.mode {
	case model.ModeSearch:
		return m.updateSearch(msg)
	case model.ModeSelect:
		m.updateSelect(msg)
		return nil
	}
	return m.updateNav(msg)
}

// updateSearch applies the search on every keystroke that changes it.
func (m *ListModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Back) {
		m.search.Blur()
		m.mode = model.ModeNav
		return nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.onSearch(value)
	}
	return cmd
}

func (m *ListModel) updateSelect(msg tea.KeyMsg) {
	n := len(m.selects)
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = model.ModeNav
	case key.Matches(msg, m.keys.NextControl):
		m.focus = (m.focus + 1) % n
	case key.Matches(msg, m.keys.PrevControl):
		m.focus = (m.focus - 1 + n) % n
	case key.Matches(msg, m.keys.NextOption):
		m.selects[m.focus].cycle(1)
	case key.Matches(msg, m.keys.PrevOption):
		m.selects[m.focus].cycle(-1)
	}
}

func (m *ListModel) updateNav(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.NextPage):
		if m.table.NextPage() {
			m.cursor, m.offset = 0, 0
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.table.PrevPage() {
			m.cursor, m.offset = 0, 0
		}
	case key.Matches(msg, m.keys.Sort):
		col := int(msg.String()[0] - '1')
		if m.table.ToggleOrder(col) {
			m.table.Draw()
			col, dir, _ := m.table.Ordering()
			m.logger.Debug("ordered table", "table", m.controller.ID(), "column", col, "direction", dir.String())
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = model.ModeSearch
		return m.search.Focus()
	case key.Matches(msg, m.keys.Filters):
		if len(m.selects) > 0 {
			m.mode = model.ModeSelect
		}
	case key.Matches(msg, m.keys.Clear):
		m.onClear()
		m.cursor, m.offset = 0, 0
		text := m.catalog.Sprintf(i18n.KeyCleared)
		return func() tea.Msg { return infoMsg(text) }
	case key.Matches(msg, m.keys.Copy):
		return m.copyRow()
	}
	return nil
}

func (m *ListModel) copyRow() tea.Cmd {
	row := m.SelectedRow()
	if row == nil {
		return nil
	}
	var cells []string
	for _, cell := range row {
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	text := strings.Join(cells, "\t")
	done := m.catalog.Sprintf(i18n.KeyCopied)
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to copy row: %w", err)}
		}
		return infoMsg(done)
	}
}

func (m *ListModel) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *ListModel) clampCursor() {
	n := len(m.table.PageRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

// View renders the controls, the current page and the status line.
func (m *ListModel) View(width, height int) string {
	controls := m.viewControls(width)
	status := m.viewStatus(width)
	tableHeight := max(0, height-lipgloss.Height(controls)-lipgloss.Height(status))

	table := m.viewTable(width, tableHeight)
	return lipgloss.JoinVertical(lipgloss.Left, controls, table, status)
}

func (m *ListModel) viewControls(width int) string {
	searchStyle := InputStyle
	if m.mode == model.ModeSearch {
		searchStyle = FocusedInputStyle
	}
	parts := []string{
		LabelStyle.Render(m.catalog.Sprintf(i18n.KeySearch)+":") + " " + searchStyle.Render(m.search.View()),
	}
	for i, s := range m.selects {
		value := s.Value()
		if value == "" {
			value = m.catalog.Sprintf(i18n.KeyAll)
		}
		style := InputStyle
		if m.mode == model.ModeSelect && i == m.focus {
			style = FocusedInputStyle
		}
		parts = append(parts, LabelStyle.Render(s.label+":")+" "+style.Render("‹ "+value+" ›"))
	}
	return lipgloss.NewStyle().Width(width).Padding(0, 1).Render(strings.Join(parts, "  "))
}

func (m *ListModel) columnWidths(width int) []int {
	widths := make([]int, len(m.def.Columns))
	total := 0
	for i, c := range m.def.Columns {
		widths[i] = max(c.Width, lipgloss.Width(m.catalog.Sprintf(c.Title))+2) + 2
		total += widths[i]
	}
	if extra := width - total; extra > 0 && len(widths) > 0 {
		widths[0] += extra
	}
	return widths
}

func (m *ListModel) viewTable(width, height int) string {
	widths := m.columnWidths(width)
	orderCol, orderDir, ordered := m.table.Ordering()

	headers := make([]string, len(m.def.Columns))
	for i, c := range m.def.Columns {
		label := m.catalog.Sprintf(c.Title)
		if ordered && i == orderCol {
			if orderDir == datatable.Desc {
				label += " ↓"
			} else {
				label += " ↑"
			}
		}
		headers[i] = label
	}
	lines := []string{
		renderTableRow(headers, widths, TableHeaderStyle),
		renderTableDivider(widths),
	}

	info := m.table.Info()
	noun := m.catalog.Sprintf(m.def.Noun)
	switch {
	case info.RecordsTotal == 0:
		lines = append(lines, EmptyStateStyle.Render(m.catalog.Sprintf(i18n.KeyNoneRegistered, noun)))
	case info.RecordsDisplay == 0:
		lines = append(lines, EmptyStateStyle.Render(m.catalog.Sprintf(i18n.KeyNoneFound, noun)))
	default:
		visible := max(1, height-len(lines))
		if m.cursor >= m.offset+visible {
			m.offset = m.cursor - visible + 1
		}
		rows := m.table.PageRows()
		active := m.catalog.Status(true)
		inactive := m.catalog.Status(false)
		actions := len(m.def.Columns) - 1
		for i := m.offset; i < len(rows) && i < m.offset+visible; i++ {
			style := NormalRowStyle
			if i == m.cursor {
				style = SelectedRowStyle
			}
			cells := make([]string, len(rows[i]))
			for j, cell := range rows[i] {
				cell = util.TruncateString(cell, widths[j]-2)
				if i != m.cursor {
					switch cell {
					case active:
						cell = SuccessStyle.UnsetPadding().Render(cell)
					case inactive:
						cell = ErrorStyle.UnsetPadding().Render(cell)
					}
				}
				cells[j] = cell
			}
			if i == m.cursor && rows[i][actions] == "" {
				cells[actions] = m.catalog.Sprintf(i18n.KeyCopyHint)
			}
			lines = append(lines, renderTableRow(cells, widths, style))
		}
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(lines, "\n"))
}

func (m *ListModel) viewStatus(width int) string {
	info := m.table.Info()
	noun := m.catalog.Sprintf(m.def.Noun)

	showing := m.catalog.Sprintf(i18n.KeyNoneToShow, noun)
	if info.RecordsDisplay > 0 {
		showing = m.catalog.Sprintf(i18n.KeyShowing, info.Start, info.End, info.RecordsDisplay, noun)
	}
	parts := []string{CounterStyle.Render(m.counter), showing}
	if info.Pages > 1 {
		m.paginator.PerPage = info.Length
		m.paginator.TotalPages = info.Pages
		m.paginator.Page = info.Page
		parts = append(parts, m.paginator.View())
	}
	return StatusBarStyle.Width(width).Render(strings.Join(parts, "  ·  "))
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).MaxWidth(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return DividerStyle.Render(strings.Repeat("─", total))
}
