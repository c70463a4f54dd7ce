// Package i18n holds the message catalog for counter and status texts.
package i18n

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English catalog uses the keys verbatim.
const (
	KeyRecords        = "%d records"
	KeyRecordsOf      = "%d of %d records"
	KeyActive         = "Active"
	KeyInactive       = "Inactive"
	KeyShowing        = "Showing %d to %d of %d %s"
	KeyNoneToShow     = "No %s to show"
	KeyNoneFound      = "No %s found"
	KeyNoneRegistered = "No %s registered"
	KeyAll            = "All"
	KeySearch         = "Search"
	KeyPageSize       = "Show"
	KeyCopied         = "Row copied to clipboard"
	KeyCleared        = "Filters cleared"
	KeyCopyHint       = "y copy"
	KeyLogs           = "Logs"
	KeyNoLogs         = "No log messages"
)

const DefaultLang = "es"

var tags = map[string]language.Tag{
	"es": language.Spanish,
	"en": language.English,
}

// ValidLangs returns the supported languages, default first.
func ValidLangs() []string {
	langs := make([]string, 0, len(tags))
	for k := range tags {
		if k != DefaultLang {
			langs = append(langs, k)
		}
	}
	slices.Sort(langs)
	return append([]string{DefaultLang}, langs...)
}

var spanish = map[string]string{
	KeyRecords:        "%d registros",
	KeyRecordsOf:      "%d de %d registros",
	KeyActive:         "Activo",
	KeyInactive:       "Inactivo",
	KeyShowing:        "Mostrando %d a %d de %d %s",
	KeyNoneToShow:     "No hay %s para mostrar",
	KeyNoneFound:      "No se encontraron %s",
	KeyNoneRegistered: "No hay %s registrados",
	KeyAll:            "Todos",
	KeySearch:         "Buscar",
	KeyPageSize:       "Mostrar",
	KeyCopied:         "Fila copiada al portapapeles",
	KeyCleared:        "Filtros limpiados",
	KeyCopyHint:       "y copiar",
	KeyLogs:           "Registros de eventos",
	KeyNoLogs:         "Sin mensajes",

	// screen, column and filter labels
	"Clients":      "Clientes",
	"Products":     "Productos",
	"clients":      "clientes",
	"products":     "productos",
	"Name":         "Nombre",
	"Document":     "Documento",
	"Phone":        "Teléfono",
	"Type":         "Tipo",
	"Status":       "Estado",
	"Actions":      "Acciones",
	"Code":         "Código",
	"Price":        "Precio",
	"Brand":        "Marca",
	"Presentation": "Presentación",
	"Categories":   "Categorías",
	"Category":     "Categoría",
}

// Catalog translates message keys for one language.
type Catalog struct {
	printer *message.Printer
	lang    string
}

// New constructs the catalog for lang, one of ValidLangs.
func New(lang string) (*Catalog, error) {
	tag, ok := tags[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language: %q", lang)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range spanish {
		if err := b.SetString(language.Spanish, key, msg); err != nil {
			return nil, fmt.Errorf("building catalog: %w", err)
		}
	}
	return &Catalog{
		printer: message.NewPrinter(tag, message.Catalog(b)),
		lang:    lang,
	}, nil
}

// Lang returns the catalog's language.
func (c *Catalog) Lang() string { return c.lang }

// Sprintf translates key and formats it with args.
func (c *Catalog) Sprintf(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Records is the counter text when nothing is filtered out.
func (c *Catalog) Records(total int) string {
	return c.Sprintf(KeyRecords, total)
}

// RecordsOf is the counter text when some rows are filtered out.
func (c *Catalog) RecordsOf(filtered, total int) string {
	return c.Sprintf(KeyRecordsOf, filtered, total)
}

// Status translates an estado flag into its label.
func (c *Catalog) Status(active bool) string {
	if active {
		return c.Sprintf(KeyActive)
	}
	return c.Sprintf(KeyInactive)
}
