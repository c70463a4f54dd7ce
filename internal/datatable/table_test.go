package datatable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTest returns a table of fruit rows: name, colour, tags.
func setupTest(opts ...Option) *Table {
	rows := [][]string{
		{"banana", "Yellow", "sweet, tropical"},
		{"apple", "Red", "sweet"},
		{"lemon", "Yellow", "sour"},
		{"cherry", "Red", "sweet, small"},
		{"lime", "Green", "sour, tropical"},
	}
	return New(3, rows, opts...)
}

func names(rows [][]string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r[0])
	}
	return out
}

func TestTable_Defaults(t *testing.T) {
	tbl := setupTest()

	info := tbl.Info()
	assert.Equal(t, 5, info.RecordsTotal)
	assert.Equal(t, 5, info.RecordsDisplay)
	assert.Equal(t, DefaultPageLength, info.Length)
	assert.Equal(t, 1, info.Pages)
	assert.Equal(t, 1, info.Start)
	assert.Equal(t, 5, info.End)
	assert.Equal(t, []string{"banana", "apple", "lemon", "cherry", "lime"}, names(tbl.PageRows()))
}

func TestTable_Search(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty matches everything", "", []string{"banana", "apple", "lemon", "cherry", "lime"}},
		{"case insensitive", "YELLOW", []string{"banana", "lemon"}},
		{"every word must match", "sweet red", []string{"apple", "cherry"}},
		{"words may match different cells", "lime tropical", []string{"lime"}},
		{"no match", "purple", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := setupTest()
			tbl.Search(tt.term)
			tbl.Draw()
			assert.Equal(t, tt.want, names(tbl.PageRows()))
			assert.Equal(t, 5, tbl.Info().RecordsTotal)
		})
	}
}

func TestTable_SearchColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  int
		pattern string
		regex   bool
		want    []string
	}{
		{"anchored regex is exact", 1, "^red$", true, []string{"apple", "cherry"}},
		{"anchored regex does not match substrings", 2, "^sweet$", true, []string{"apple"}},
		{"substring", 2, "tropical", false, []string{"banana", "lime"}},
		{"invalid regex matches nothing", 0, "(", true, []string{}},
		{"empty pattern removes constraint", 0, "", true, []string{"banana", "apple", "lemon", "cherry", "lime"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := setupTest()
			tbl.SearchColumn(tt.column, tt.pattern, tt.regex)
			tbl.Draw()
			assert.Equal(t, tt.want, names(tbl.PageRows()))
		})
	}
}

func TestTable_SearchColumnsCombineWithAnd(t *testing.T) {
	tbl := setupTest()
	tbl.SearchColumn(1, "^Yellow$", true)
	tbl.SearchColumn(2, "sour", false)
	tbl.Draw()

	assert.Equal(t, []string{"lemon"}, names(tbl.PageRows()))
	assert.Equal(t, 1, tbl.Info().RecordsDisplay)
}

func TestTable_CaseSensitive(t *testing.T) {
	tbl := setupTest(WithCaseSensitive(true))
	tbl.SearchColumn(1, "^red$", true)
	tbl.Draw()
	assert.Empty(t, tbl.PageRows())

	tbl.SearchColumn(1, "^Red$", true)
	tbl.Draw()
	assert.Equal(t, []string{"apple", "cherry"}, names(tbl.PageRows()))
}

func TestTable_ClearSearches(t *testing.T) {
	tbl := setupTest()
	tbl.Search("sweet")
	tbl.SearchColumn(1, "^Red$", true)
	tbl.Draw()
	require.Equal(t, 2, tbl.Info().RecordsDisplay)

	tbl.ClearSearches()
	tbl.Draw()
	assert.Equal(t, 5, tbl.Info().RecordsDisplay)
	assert.Equal(t, "", tbl.ColumnSearch(1))
}

func TestTable_Order(t *testing.T) {
	tbl := setupTest()
	tbl.Order(0, Asc)
	tbl.Draw()
	assert.Equal(t, []string{"apple", "banana", "cherry", "lemon", "lime"}, names(tbl.PageRows()))

	tbl.Order(0, Desc)
	tbl.Draw()
	assert.Equal(t, []string{"lime", "lemon", "cherry", "banana", "apple"}, names(tbl.PageRows()))
}

func TestTable_ToggleOrder(t *testing.T) {
	tbl := setupTest()
	tbl.SetOrderable(2, false)

	assert.False(t, tbl.ToggleOrder(2))
	assert.False(t, tbl.ToggleOrder(7))

	require.True(t, tbl.ToggleOrder(0))
	col, dir, ok := tbl.Ordering()
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, Asc, dir)

	require.True(t, tbl.ToggleOrder(0))
	_, dir, _ = tbl.Ordering()
	assert.Equal(t, Desc, dir)

	require.True(t, tbl.ToggleOrder(1))
	col, dir, _ = tbl.Ordering()
	assert.Equal(t, 1, col)
	assert.Equal(t, Asc, dir)
}

func TestTable_Paging(t *testing.T) {
	rows := make([][]string, 0, 23)
	for i := 0; i < 23; i++ {
		rows = append(rows, []string{fmt.Sprintf("row-%02d", i)})
	}
	tbl := New(1, rows)

	info := tbl.Info()
	assert.Equal(t, 3, info.Pages)
	assert.Len(t, tbl.PageRows(), 10)

	assert.True(t, tbl.NextPage())
	assert.True(t, tbl.NextPage())
	assert.False(t, tbl.NextPage())
	tbl.Draw()

	info = tbl.Info()
	assert.Equal(t, 2, info.Page)
	assert.Equal(t, 21, info.Start)
	assert.Equal(t, 23, info.End)
	assert.Len(t, tbl.PageRows(), 3)

	t.Run("page length change returns to first page", func(t *testing.T) {
		tbl.SetPageLength(25)
		tbl.Draw()
		info := tbl.Info()
		assert.Equal(t, 0, info.Page)
		assert.Equal(t, 1, info.Pages)
		assert.Len(t, tbl.PageRows(), 23)
	})

	t.Run("non-positive page length is ignored", func(t *testing.T) {
		tbl.SetPageLength(0)
		assert.Equal(t, 25, tbl.PageLength())
	})

	t.Run("empty result", func(t *testing.T) {
		tbl.Search("nothing")
		tbl.Draw()
		info := tbl.Info()
		assert.Equal(t, 0, info.RecordsDisplay)
		assert.Equal(t, 23, info.RecordsTotal)
		assert.Equal(t, 0, info.Start)
		assert.Equal(t, 0, info.End)
		assert.Empty(t, tbl.PageRows())
		assert.False(t, tbl.PrevPage())
	})
}

func TestTable_SetRowsReappliesSearches(t *testing.T) {
	tbl := setupTest()
	tbl.SearchColumn(1, "^Yellow$", true)
	tbl.Draw()
	require.Equal(t, 2, tbl.Info().RecordsDisplay)

	tbl.SetRows([][]string{
		{"mango", "Yellow", ""},
		{"kiwi", "Green", ""},
	})
	tbl.Draw()

	assert.Equal(t, []string{"mango"}, names(tbl.PageRows()))
	assert.Equal(t, 2, tbl.Info().RecordsTotal)
}

func TestTable_NumericOrder(t *testing.T) {
	rows := [][]string{
		{"Televisor", "S/ 2499.00"},
		{"Licuadora", "S/ 259.90"},
		{"Lavadora", "S/ 1,899.00"},
		{"Regalo", ""},
	}

	t.Run("numeric", func(t *testing.T) {
		tbl := New(2, rows, WithNumericColumns(1))
		tbl.Order(1, Asc)
		tbl.Draw()
		assert.Equal(t, []string{"Regalo", "Licuadora", "Lavadora", "Televisor"}, names(tbl.PageRows()))

		tbl.Order(1, Desc)
		tbl.Draw()
		assert.Equal(t, []string{"Televisor", "Lavadora", "Licuadora", "Regalo"}, names(tbl.PageRows()))
	})

	t.Run("text", func(t *testing.T) {
		tbl := New(2, rows)
		tbl.Order(1, Asc)
		tbl.Draw()
		assert.Equal(t, []string{"Regalo", "Lavadora", "Televisor", "Licuadora"}, names(tbl.PageRows()))
	})
}
