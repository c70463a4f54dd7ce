package tablefilter

import (
	"errors"

	"mantenedor/internal/datatable"
)

// ErrControlNotFound is returned by a Controls implementation asked to bind a
// control it does not have.
var ErrControlNotFound = errors.New("control not found")

// Table is the table widget the controller drives.
type Table interface {
	ColumnCount() int
	Order(column int, dir datatable.Direction)
	SetOrderable(column int, orderable bool)
	Search(term string)
	SearchColumn(column int, pattern string, regex bool)
	ClearSearches()
	SetPageLength(n int)
	FirstPage()
	Draw()
	Info() datatable.PageInfo
}

// Control is a bound control whose displayed value the controller can set.
type Control interface {
	SetValue(value string)
}

// Controls is the set of control elements of one screen. Each Bind method
// registers the handler to call when the user changes the control, and
// returns ErrControlNotFound if the screen lacks it.
type Controls interface {
	BindSearchInput(onChange func(text string)) (Control, error)
	BindColumnFilter(column int, onChange func(value string)) (Control, error)
	BindPageSizeControl(onChange func(input string)) (Control, error)
	BindClearAction(onClick func()) error
	SetCounterText(text string)
}

// Catalog supplies the counter texts.
type Catalog interface {
	Records(total int) string
	RecordsOf(filtered, total int) string
}
