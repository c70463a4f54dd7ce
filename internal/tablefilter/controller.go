// Package tablefilter binds the search, filter, page size and clear controls
// of a list screen to its table widget, and keeps the record counter in step
// with what the table displays.
package tablefilter

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"mantenedor/internal/logging"
)

// ColumnFilter is the current value of a column filter. An empty value means
// no constraint.
type ColumnFilter struct {
	Column int
	Value  string
	Mode   MatchMode
}

// FilterState is the filtering state of a controller.
type FilterState struct {
	GlobalSearch  string
	ColumnFilters []ColumnFilter
	PageSize      int
}

// Filter returns the filter on the column, and false if there is none.
func (s FilterState) Filter(column int) (ColumnFilter, bool) {
	for _, f := range s.ColumnFilters {
		if f.Column == column {
			return f, true
		}
	}
	return ColumnFilter{}, false
}

// Controller keeps a table in step with its controls. Each screen has its own
// controller; controllers share no state.
type Controller struct {
	id       string
	table    Table
	controls Controls
	catalog  Catalog
	cfg      Config
	logger   logging.Interface

	state FilterState

	search   Control
	filters  map[int]Control
	pageSize Control
}

// Option configures a Controller.
type Option func(c *Controller)

// WithLogger sets the logger the controller records its events to.
func WithLogger(logger logging.Interface) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Initialize validates the config, binds the handlers of every control,
// applies the default ordering, page size and status filter, draws the table
// and writes the counter.
func Initialize(table Table, controls Controls, catalog Catalog, cfg Config, opts ...Option) (*Controller, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(table.ColumnCount()); err != nil {
		return nil, err
	}
	c := &Controller{
		id:       uuid.NewString(),
		table:    table,
		controls: controls,
		catalog:  catalog,
		cfg:      cfg,
		logger:   logging.Discard,
		filters:  make(map[int]Control),
		state: FilterState{
			ColumnFilters: cfg.Filters(),
			PageSize:      cfg.DefaultPageSize,
		},
	}
	for _, fn := range opts {
		fn(c)
	}
	if err := c.bind(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	dir, _ := parseDirection(cfg.SortDirection)
	table.Order(cfg.SortColumn, dir)
	if cfg.NonSortableColumn >= 0 {
		table.SetOrderable(cfg.NonSortableColumn, false)
	}
	table.SetPageLength(cfg.DefaultPageSize)
	c.pageSize.SetValue(strconv.Itoa(cfg.DefaultPageSize))

	c.setColumnFilter(cfg.StatusColumn, cfg.DefaultStatusValue)
	c.filters[cfg.StatusColumn].SetValue(cfg.DefaultStatusValue)

	table.Draw()
	c.RefreshCounter()

	c.logger.Debug("initialized table filter",
		"table", c.id,
		"sort_column", cfg.SortColumn,
		"sort_direction", cfg.SortDirection,
		"status", cfg.DefaultStatusValue,
		"page_size", cfg.DefaultPageSize,
	)
	return c, nil
}

func (c *Controller) bind() error {
	var err error
	c.search, err = c.controls.BindSearchInput(c.OnGlobalSearch)
	if err != nil {
		return fmt.Errorf("binding search input: %w", err)
	}
	for _, f := range c.state.ColumnFilters {
		column, mode := f.Column, f.Mode
		ctl, err := c.controls.BindColumnFilter(column, func(value string) {
			c.OnColumnFilter(column, value, mode)
		})
		if err != nil {
			return fmt.Errorf("binding filter for column %d: %w", column, err)
		}
		c.filters[column] = ctl
	}
	c.pageSize, err = c.controls.BindPageSizeControl(c.OnPageSizeChange)
	if err != nil {
		return fmt.Errorf("binding page size control: %w", err)
	}
	if err := c.controls.BindClearAction(c.OnClearAll); err != nil {
		return fmt.Errorf("binding clear action: %w", err)
	}
	return nil
}

// ID uniquely identifies the controller within the process.
func (c *Controller) ID() string { return c.id }

// Config returns the effective config, defaults included.
func (c *Controller) Config() Config { return c.cfg }

// State returns a copy of the current filtering state.
func (c *Controller) State() FilterState {
	s := c.state
	s.ColumnFilters = slices.Clone(c.state.ColumnFilters)
	return s
}

// OnGlobalSearch applies text as the table's global search.
func (c *Controller) OnGlobalSearch(text string) {
	c.state.GlobalSearch = text
	c.table.Search(text)
	c.table.Draw()
	c.RefreshCounter()
	c.logger.Debug("applied global search", "table", c.id, "text", text)
}

// OnColumnFilter applies value to the filter on the column, replacing any
// previous value. An empty value removes the constraint. Only columns the
// config declares a filter for are accepted.
func (c *Controller) OnColumnFilter(column int, value string, mode MatchMode) {
	idx := slices.IndexFunc(c.state.ColumnFilters, func(f ColumnFilter) bool {
		return f.Column == column
	})
	if idx < 0 {
		c.logger.Warn("ignoring filter on unfiltered column", "table", c.id, "column", column)
		return
	}
	if !mode.valid() {
		c.logger.Warn("ignoring filter with unknown match mode", "table", c.id, "column", column, "mode", mode)
		return
	}
	c.state.ColumnFilters[idx].Mode = mode
	c.setColumnFilter(column, value)
	c.table.Draw()
	c.RefreshCounter()
	c.logger.Debug("applied column filter", "table", c.id, "column", column, "value", value, "mode", mode)
}

// setColumnFilter records the value and passes it to the table as a column
// search. The caller must draw.
func (c *Controller) setColumnFilter(column int, value string) {
	for i := range c.state.ColumnFilters {
		f := &c.state.ColumnFilters[i]
		if f.Column != column {
			continue
		}
		f.Value = value
		c.table.SearchColumn(column, pattern(value, f.Mode), f.Mode == Exact)
		return
	}
}

// pattern returns the column search for a filter value. Exact values are
// anchored and quoted, so the whole cell must equal the value literally.
func pattern(value string, mode MatchMode) string {
	if value == "" {
		return ""
	}
	if mode == Exact {
		return "^" + regexp.QuoteMeta(value) + "$"
	}
	return value
}

// OnPageSizeChange applies input as the page size. Input that is not one of
// the configured page sizes is ignored and the control is reset to the
// current size.
func (c *Controller) OnPageSizeChange(input string) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || !slices.Contains(c.cfg.PageSizes, n) {
		c.logger.Warn("ignoring invalid page size", "table", c.id, "input", input)
		c.pageSize.SetValue(strconv.Itoa(c.state.PageSize))
		return
	}
	c.state.PageSize = n
	c.table.SetPageLength(n)
	c.table.Draw()
	c.RefreshCounter()
	c.logger.Debug("changed page size", "table", c.id, "page_size", n)
}

// OnClearAll empties the search input and every filter control, the status
// filter included, restores the default page size and redraws from the first
// page.
func (c *Controller) OnClearAll() {
	c.state.GlobalSearch = ""
	for i := range c.state.ColumnFilters {
		c.state.ColumnFilters[i].Value = ""
	}
	c.state.PageSize = c.cfg.DefaultPageSize

	c.search.SetValue("")
	for _, ctl := range c.filters {
		ctl.SetValue("")
	}
	c.pageSize.SetValue(strconv.Itoa(c.cfg.DefaultPageSize))

	c.table.ClearSearches()
	c.table.SetPageLength(c.cfg.DefaultPageSize)
	c.table.FirstPage()
	c.table.Draw()
	c.RefreshCounter()
	c.logger.Debug("cleared filters", "table", c.id)
}

// RefreshCounter writes the number of displayed records, and the total when
// the two differ, to the counter element.
func (c *Controller) RefreshCounter() {
	info := c.table.Info()
	var text string
	if info.RecordsDisplay == info.RecordsTotal {
		text = c.catalog.Records(info.RecordsTotal)
	} else {
		text = c.catalog.RecordsOf(info.RecordsDisplay, info.RecordsTotal)
	}
	c.controls.SetCounterText(text)
}
