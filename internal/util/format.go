package util

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes formatted prices.
const CurrencySymbol = "S/"

// FormatPrice formats a price with two decimals, e.g. "S/ 2499.90".
func FormatPrice(price decimal.Decimal) string {
	return CurrencySymbol + " " + price.StringFixed(2)
}

// FormatDocument joins a document type and number, e.g. "RUC 20100070970".
func FormatDocument(tipo, numero string) string {
	tipo, numero = strings.TrimSpace(tipo), strings.TrimSpace(numero)
	switch {
	case tipo == "":
		return numero
	case numero == "":
		return tipo
	}
	return tipo + " " + numero
}

// FormatCategories joins category names for a single cell.
func FormatCategories(categorias []string) string {
	return strings.Join(categorias, ", ")
}

// SplitCategories is the inverse of FormatCategories.
func SplitCategories(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FormatDate formats a timestamp as dd/mm/yyyy, or "—" if unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

// TruncateString truncates a string to maxWidth terminal cells and adds "..."
// if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
