package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	tests := []struct {
		lang      string
		records   string
		recordsOf string
		active    string
		inactive  string
	}{
		{"es", "12 registros", "9 de 12 registros", "Activo", "Inactivo"},
		{"en", "12 records", "9 of 12 records", "Active", "Inactive"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			c, err := New(tt.lang)
			require.NoError(t, err)

			assert.Equal(t, tt.records, c.Records(12))
			assert.Equal(t, tt.recordsOf, c.RecordsOf(9, 12))
			assert.Equal(t, tt.active, c.Status(true))
			assert.Equal(t, tt.inactive, c.Status(false))
		})
	}
}

func TestCatalog_Showing(t *testing.T) {
	c, err := New("es")
	require.NoError(t, err)

	assert.Equal(t, "Mostrando 1 a 9 de 9 clientes", c.Sprintf(KeyShowing, 1, 9, 9, "clientes"))
	assert.Equal(t, "No se encontraron productos", c.Sprintf(KeyNoneFound, "productos"))
}

func TestCatalog_Labels(t *testing.T) {
	es, err := New("es")
	require.NoError(t, err)
	en, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Categorías", es.Sprintf("Categories"))
	assert.Equal(t, "Categories", en.Sprintf("Categories"))
	// unknown labels pass through untranslated
	assert.Equal(t, "Stock", es.Sprintf("Stock"))
}

func TestCatalog_UnsupportedLanguage(t *testing.T) {
	_, err := New("fr")
	assert.Error(t, err)
}

func TestValidLangs(t *testing.T) {
	assert.Equal(t, []string{"es", "en"}, ValidLangs())
}
