package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantenedor/internal/model"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSeed(t *testing.T) {
	database := setupDB(t)

	seeded, err := Seed(database)
	require.NoError(t, err)
	assert.True(t, seeded)

	clients, err := ListClients(database)
	require.NoError(t, err)
	assert.Len(t, clients, len(DemoClients))

	active := 0
	for _, c := range clients {
		if c.Active() {
			active++
		}
	}
	assert.Equal(t, 9, active)

	products, err := ListProducts(database)
	require.NoError(t, err)
	assert.Len(t, products, len(DemoProducts))

	t.Run("second seed is a no-op", func(t *testing.T) {
		seeded, err := Seed(database)
		require.NoError(t, err)
		assert.False(t, seeded)
	})
}

func TestListClients(t *testing.T) {
	database := setupDB(t)

	_, err := InsertClient(database, model.NewClient{
		RazonSocial:     "Zoila Ramos",
		TipoPersona:     model.PersonaNatural,
		Estado:          model.EstadoActivo,
		TipoDocumento:   "DNI",
		NumeroDocumento: "12345678",
	})
	require.NoError(t, err)
	_, err = InsertClient(database, model.NewClient{
		RazonSocial:     "Abarrotes Rosita S.A.C.",
		TipoPersona:     model.PersonaJuridica,
		Estado:          model.EstadoInactivo,
		TipoDocumento:   "RUC",
		NumeroDocumento: "20123456789",
	})
	require.NoError(t, err)

	clients, err := ListClients(database)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	// ordered by razon social
	assert.Equal(t, "Abarrotes Rosita S.A.C.", clients[0].RazonSocial)
	assert.Equal(t, "RUC", clients[0].TipoDocumento)
	assert.False(t, clients[0].Active())
	assert.Equal(t, "Zoila Ramos", clients[1].RazonSocial)
	assert.True(t, clients[1].Active())
	assert.False(t, clients[1].CreatedAt.IsZero())
}

func TestListProducts(t *testing.T) {
	database := setupDB(t)

	_, err := InsertProduct(database, model.NewProduct{
		Codigo:       "X-1",
		Nombre:       "Teclado",
		Precio:       decimal.RequireFromString("120.5"),
		Stock:        3,
		Estado:       model.EstadoActivo,
		Marca:        "Logitech",
		Presentacion: "Caja",
		Categorias:   []string{"Electrónica", "Accesorios"},
	})
	require.NoError(t, err)
	_, err = InsertProduct(database, model.NewProduct{
		Codigo:       "X-2",
		Nombre:       "Agua",
		Precio:       decimal.RequireFromString("1"),
		Estado:       model.EstadoActivo,
		Marca:        "San Luis",
		Presentacion: "Botella",
	})
	require.NoError(t, err)

	products, err := ListProducts(database)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Agua", products[0].Nombre)
	assert.Empty(t, products[0].Categorias)

	teclado := products[1]
	assert.Equal(t, "Logitech", teclado.Marca)
	assert.Equal(t, "Caja", teclado.Presentacion)
	assert.Equal(t, []string{"Accesorios", "Electrónica"}, teclado.Categorias)
	assert.True(t, decimal.RequireFromString("120.50").Equal(teclado.Precio))
}

func TestInsertProduct_ReusesCatalogRows(t *testing.T) {
	database := setupDB(t)

	for _, code := range []string{"A", "B"} {
		_, err := InsertProduct(database, model.NewProduct{
			Codigo:       code,
			Nombre:       "Producto " + code,
			Marca:        "Gloria",
			Presentacion: "Lata",
			Categorias:   []string{"Lácteos"},
		})
		require.NoError(t, err)
	}

	var marcas, categorias int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM marcas").Scan(&marcas))
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM categorias").Scan(&categorias))
	assert.Equal(t, 1, marcas)
	assert.Equal(t, 1, categorias)
}
