package tablefilter

import (
	"errors"
	"fmt"
	"slices"

	"mantenedor/internal/datatable"
)

// ErrInvalidConfig is returned by Initialize for a configuration that does not
// fit the table it is applied to.
var ErrInvalidConfig = errors.New("invalid table filter configuration")

// MatchMode is how a column filter value is matched against a cell.
type MatchMode string

const (
	// Exact requires the whole cell text to equal the value.
	Exact MatchMode = "exact"
	// Substring requires the cell text to contain the value.
	Substring MatchMode = "substring"
)

func (m MatchMode) valid() bool {
	return m == Exact || m == Substring
}

// DefaultPageSizes are the page sizes offered when a config names none.
var DefaultPageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 10

// ExtraFilter declares a filter control on a column besides the status one.
type ExtraFilter struct {
	Column    int       `yaml:"column"`
	MatchMode MatchMode `yaml:"matchMode"`
}

// Config is the per-screen configuration of a controller. It is plain data:
// both list screens share the controller and differ only in their Config.
type Config struct {
	SortColumn    int    `yaml:"sortColumn"`
	SortDirection string `yaml:"sortDirection"`
	// NonSortableColumn is excluded from user ordering; negative for none.
	NonSortableColumn int `yaml:"nonSortableColumn"`
	// StatusColumn is filtered by exact match, initially against
	// DefaultStatusValue. An empty DefaultStatusValue applies no default
	// constraint.
	StatusColumn       int           `yaml:"statusColumn"`
	DefaultStatusValue string        `yaml:"defaultStatusValue"`
	ExtraFilters       []ExtraFilter `yaml:"extraFilters"`
	PageSizes          []int         `yaml:"pageSizes"`
	DefaultPageSize    int           `yaml:"defaultPageSize"`
	CaseSensitive      bool          `yaml:"caseSensitive"`
}

// WithDefaults returns a copy of the config with unset optional fields
// populated.
func (c Config) WithDefaults() Config {
	if c.SortDirection == "" {
		c.SortDirection = datatable.Asc.String()
	}
	if len(c.PageSizes) == 0 {
		c.PageSizes = slices.Clone(DefaultPageSizes)
	}
	if c.DefaultPageSize == 0 {
		c.DefaultPageSize = DefaultPageSize
	}
	return c
}

// Validate checks the config against a table with the given number of
// columns.
func (c Config) Validate(columns int) error {
	inRange := func(col int) bool { return col >= 0 && col < columns }

	if !inRange(c.SortColumn) {
		return fmt.Errorf("%w: sort column %d out of range", ErrInvalidConfig, c.SortColumn)
	}
	if _, err := parseDirection(c.SortDirection); err != nil {
		return err
	}
	if c.NonSortableColumn >= columns {
		return fmt.Errorf("%w: non-sortable column %d out of range", ErrInvalidConfig, c.NonSortableColumn)
	}
	if c.NonSortableColumn == c.SortColumn {
		return fmt.Errorf("%w: default sort column %d is not sortable", ErrInvalidConfig, c.SortColumn)
	}

	seen := make(map[int]bool)
	for _, f := range c.Filters() {
		if !inRange(f.Column) {
			return fmt.Errorf("%w: filter column %d out of range", ErrInvalidConfig, f.Column)
		}
		if !f.Mode.valid() {
			return fmt.Errorf("%w: column %d: unknown match mode %q", ErrInvalidConfig, f.Column, f.Mode)
		}
		if seen[f.Column] {
			return fmt.Errorf("%w: column %d has more than one filter", ErrInvalidConfig, f.Column)
		}
		seen[f.Column] = true
	}

	for _, n := range c.PageSizes {
		if n <= 0 {
			return fmt.Errorf("%w: page size %d is not positive", ErrInvalidConfig, n)
		}
	}
	if !slices.Contains(c.PageSizes, c.DefaultPageSize) {
		return fmt.Errorf("%w: default page size %d not among %v", ErrInvalidConfig, c.DefaultPageSize, c.PageSizes)
	}
	return nil
}

// Filters returns the column filters the config declares, status first, each
// with an empty value.
func (c Config) Filters() []ColumnFilter {
	filters := make([]ColumnFilter, 0, len(c.ExtraFilters)+1)
	filters = append(filters, ColumnFilter{Column: c.StatusColumn, Mode: Exact})
	for _, f := range c.ExtraFilters {
		filters = append(filters, ColumnFilter{Column: f.Column, Mode: f.MatchMode})
	}
	return filters
}

func parseDirection(s string) (datatable.Direction, error) {
	switch s {
	case datatable.Asc.String():
		return datatable.Asc, nil
	case datatable.Desc.String():
		return datatable.Desc, nil
	}
	return datatable.Asc, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidConfig, s)
}
