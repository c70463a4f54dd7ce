package ui

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"mantenedor/internal/i18n"
	"mantenedor/internal/model"
	"mantenedor/internal/tablefilter"
	"mantenedor/internal/util"
)

//go:embed screens.yaml
var screensYAML []byte

type columnDef struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Numeric bool   `yaml:"numeric"`
}

type filterDef struct {
	ID     string `yaml:"id"`
	Column int    `yaml:"column"`
	Label  string `yaml:"label"`
}

// controlsDef names the controls a screen has. A screen without an id for a
// control lacks it.
type controlsDef struct {
	SearchBox    string      `yaml:"searchBox"`
	PageLength   string      `yaml:"pageLength"`
	ClearFilters string      `yaml:"clearFilters"`
	Filters      []filterDef `yaml:"filters"`
}

// screenDef declares one list screen: its columns, how its table is filtered
// and which controls it has.
type screenDef struct {
	Title    string             `yaml:"title"`
	Noun     string             `yaml:"noun"`
	Columns  []columnDef        `yaml:"columns"`
	Table    tablefilter.Config `yaml:"table"`
	Controls controlsDef        `yaml:"controls"`
}

func (d screenDef) numericColumns() []int {
	var cols []int
	for i, c := range d.Columns {
		if c.Numeric {
			cols = append(cols, i)
		}
	}
	return cols
}

// matchMode returns how the filter on the column matches.
func (d screenDef) matchMode(column int) tablefilter.MatchMode {
	for _, f := range d.Table.ExtraFilters {
		if f.Column == column {
			return f.MatchMode
		}
	}
	return tablefilter.Exact
}

// loadScreens decodes the screen declarations embedded in the binary.
func loadScreens() (map[model.Screen]screenDef, error) {
	return parseScreens(screensYAML)
}

func parseScreens(data []byte) (map[model.Screen]screenDef, error) {
	var raw map[string]screenDef
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode screens: %w", err)
	}
	screens := make(map[model.Screen]screenDef, len(raw))
	for key, def := range raw {
		screen, ok := model.ParseScreen(key)
		if !ok {
			return nil, fmt.Errorf("unknown screen %q", key)
		}
		if len(def.Columns) == 0 {
			return nil, fmt.Errorf("screen %q declares no columns", key)
		}
		screens[screen] = def
	}
	return screens, nil
}

func clientCells(rows []model.ClientRow, catalog *i18n.Catalog) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.RazonSocial,
			util.FormatDocument(r.TipoDocumento, r.NumeroDocumento),
			r.Telefono,
			r.TipoPersona,
			catalog.Status(r.Active()),
			"",
		})
	}
	return cells
}

func productCells(rows []model.ProductRow, catalog *i18n.Catalog) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Codigo,
			r.Nombre,
			util.FormatPrice(r.Precio),
			strconv.Itoa(r.Stock),
			r.Marca,
			r.Presentacion,
			util.FormatCategories(r.Categorias),
			catalog.Status(r.Active()),
			"",
		})
	}
	return cells
}
