// Package datatable is an in-memory table widget: it holds already rendered
// rows and derives the visible, ordered and paginated subset from a global
// search, per-column searches and an ordering.
package datatable

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Direction is the sort direction of a column.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// DefaultPageLength is the page length of a new table.
const DefaultPageLength = 10

// PageInfo describes the current page. Start and End are 1-based and
// inclusive; both are zero when nothing is displayed.
type PageInfo struct {
	Page           int
	Pages          int
	Start          int
	End            int
	Length         int
	RecordsTotal   int
	RecordsDisplay int
}

type columnSearch struct {
	pattern string
	regex   bool
	re      *regexp.Regexp
}

// Table is the table widget. The zero value is not usable; use New.
type Table struct {
	columns int
	rows    [][]string

	search        string
	columnSearch  map[int]columnSearch
	orderable     map[int]bool
	numeric       map[int]bool
	orderColumn   int
	orderDir      Direction
	ordered       bool
	caseSensitive bool

	pageLength int
	page       int

	// indexes into rows that pass all searches, in display order
	display []int
	// set when a search or page length changed since the last draw
	resetPaging bool
}

// Option configures a Table.
type Option func(t *Table)

// WithCaseSensitive makes global and column searches case sensitive.
func WithCaseSensitive(enabled bool) Option {
	return func(t *Table) {
		t.caseSensitive = enabled
	}
}

// WithPageLength sets the initial page length.
func WithPageLength(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.pageLength = n
		}
	}
}

// WithNumericColumns orders the given columns by the number their cells
// contain, ignoring any currency symbol or other text around it.
func WithNumericColumns(columns ...int) Option {
	return func(t *Table) {
		for _, col := range columns {
			t.numeric[col] = true
		}
	}
}

// New constructs a table with the given number of columns.
func New(columns int, rows [][]string, opts ...Option) *Table {
	t := &Table{
		columns:      columns,
		columnSearch: make(map[int]columnSearch),
		orderable:    make(map[int]bool),
		numeric:      make(map[int]bool),
		pageLength:   DefaultPageLength,
	}
	for _, fn := range opts {
		fn(t)
	}
	t.SetRows(rows)
	t.Draw()
	return t
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return t.columns }

// SetRows replaces the rows. Searches and ordering are kept and re-applied on
// the next draw.
func (t *Table) SetRows(rows [][]string) {
	t.rows = make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, t.columns)
		copy(cells, row)
		t.rows[i] = cells
	}
	t.resetPaging = true
}

// Order sets the ordering column and direction.
func (t *Table) Order(column int, dir Direction) {
	if column < 0 || column >= t.columns {
		return
	}
	t.orderColumn = column
	t.orderDir = dir
	t.ordered = true
}

// Ordering returns the current ordering column and direction, and false if
// the table is unordered.
func (t *Table) Ordering() (int, Direction, bool) {
	return t.orderColumn, t.orderDir, t.ordered
}

// SetOrderable sets whether the user may order by the column. Every column is
// orderable unless disabled.
func (t *Table) SetOrderable(column int, orderable bool) {
	t.orderable[column] = orderable
}

// Orderable reports whether the user may order by the column.
func (t *Table) Orderable(column int) bool {
	if column < 0 || column >= t.columns {
		return false
	}
	o, ok := t.orderable[column]
	return !ok || o
}

// ToggleOrder orders by the column, flipping the direction if the table is
// already ordered by it. It returns false for a non-orderable column. The
// caller must draw.
func (t *Table) ToggleOrder(column int) bool {
	if !t.Orderable(column) {
		return false
	}
	if t.ordered && t.orderColumn == column {
		if t.orderDir == Asc {
			t.orderDir = Desc
		} else {
			t.orderDir = Asc
		}
		return true
	}
	t.Order(column, Asc)
	return true
}

// Search sets the global search term. Every whitespace separated word of the
// term must appear in at least one cell of a row for the row to match.
func (t *Table) Search(term string) {
	t.search = term
	t.resetPaging = true
}

// SearchColumn sets the search of a single column. With regex the pattern is
// a regular expression matched against the cell text, otherwise the cell must
// contain the pattern. An empty pattern removes the column's constraint. An
// invalid regular expression matches nothing.
func (t *Table) SearchColumn(column int, pattern string, regex bool) {
	t.resetPaging = true
	if pattern == "" {
		delete(t.columnSearch, column)
		return
	}
	cs := columnSearch{pattern: pattern, regex: regex}
	if regex {
		expr := pattern
		if !t.caseSensitive {
			expr = "(?i)" + expr
		}
		cs.re, _ = regexp.Compile(expr)
	}
	t.columnSearch[column] = cs
}

// ColumnSearch returns the search pattern of a column.
func (t *Table) ColumnSearch(column int) string {
	return t.columnSearch[column].pattern
}

// ClearSearches removes the global search and every column search.
func (t *Table) ClearSearches() {
	t.search = ""
	t.columnSearch = make(map[int]columnSearch)
	t.resetPaging = true
}

// SetPageLength sets the number of rows per page. Non-positive lengths are
// ignored.
func (t *Table) SetPageLength(n int) {
	if n <= 0 {
		return
	}
	t.pageLength = n
	t.resetPaging = true
}

// PageLength returns the number of rows per page.
func (t *Table) PageLength() int { return t.pageLength }

// NextPage moves to the next page, if any.
func (t *Table) NextPage() bool {
	if t.page+1 >= t.pages() {
		return false
	}
	t.page++
	return true
}

// PrevPage moves to the previous page, if any.
func (t *Table) PrevPage() bool {
	if t.page == 0 {
		return false
	}
	t.page--
	return true
}

// FirstPage moves to the first page.
func (t *Table) FirstPage() { t.page = 0 }

// Draw recomputes the displayed rows. A draw following a search or page
// length change starts again at the first page.
func (t *Table) Draw() {
	display := make([]int, 0, len(t.rows))
	words := t.searchWords()
	for i, row := range t.rows {
		if t.matchGlobal(row, words) && t.matchColumns(row) {
			display = append(display, i)
		}
	}

	if t.ordered {
		col, desc := t.orderColumn, t.orderDir == Desc
		sort.SliceStable(display, func(i, j int) bool {
			c := t.compare(col, t.rows[display[i]][col], t.rows[display[j]][col])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	t.display = display

	if t.resetPaging {
		t.page = 0
		t.resetPaging = false
	}
	if last := t.pages() - 1; t.page > last {
		t.page = max(0, last)
	}
}

// Info returns the paging information of the last draw.
func (t *Table) Info() PageInfo {
	info := PageInfo{
		Page:           t.page,
		Pages:          t.pages(),
		Length:         t.pageLength,
		RecordsTotal:   len(t.rows),
		RecordsDisplay: len(t.display),
	}
	if len(t.display) > 0 {
		start, end := t.bounds()
		info.Start = start + 1
		info.End = end
	}
	return info
}

// PageRows returns the rows of the current page.
func (t *Table) PageRows() [][]string {
	start, end := t.bounds()
	rows := make([][]string, 0, end-start)
	for _, idx := range t.display[start:end] {
		rows = append(rows, t.rows[idx])
	}
	return rows
}

// DisplayedRows returns every row passing the searches, in display order.
func (t *Table) DisplayedRows() [][]string {
	rows := make([][]string, 0, len(t.display))
	for _, idx := range t.display {
		rows = append(rows, t.rows[idx])
	}
	return rows
}

// Column returns every value of a column, across all rows.
func (t *Table) Column(column int) []string {
	values := make([]string, 0, len(t.rows))
	if column < 0 || column >= t.columns {
		return values
	}
	for _, row := range t.rows {
		values = append(values, row[column])
	}
	return values
}

func (t *Table) pages() int {
	if len(t.display) == 0 {
		return 1
	}
	return (len(t.display) + t.pageLength - 1) / t.pageLength
}

func (t *Table) bounds() (int, int) {
	start := t.page * t.pageLength
	if start > len(t.display) {
		start = len(t.display)
	}
	end := min(start+t.pageLength, len(t.display))
	return start, end
}

func (t *Table) compare(col int, a, b string) int {
	if t.numeric[col] {
		x, xok := numericValue(a)
		y, yok := numericValue(b)
		switch {
		case xok && yok:
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		case xok:
			return 1
		case yok:
			return -1
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// numericValue parses the number in a cell such as "S/ 1,299.00". Cells
// without digits are not numeric.
func numericValue(cell string) (float64, bool) {
	var b strings.Builder
	for _, r := range cell {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	return v, err == nil
}

func (t *Table) fold(s string) string {
	if t.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func (t *Table) searchWords() []string {
	return strings.Fields(t.fold(t.search))
}

func (t *Table) matchGlobal(row []string, words []string) bool {
	if len(words) == 0 {
		return true
	}
	text := t.fold(strings.Join(row, " "))
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func (t *Table) matchColumns(row []string) bool {
	for col, cs := range t.columnSearch {
		if col < 0 || col >= t.columns {
			continue
		}
		cell := row[col]
		if cs.regex {
			if cs.re == nil || !cs.re.MatchString(cell) {
				return false
			}
			continue
		}
		if !strings.Contains(t.fold(cell), t.fold(cs.pattern)) {
			return false
		}
	}
	return true
}
