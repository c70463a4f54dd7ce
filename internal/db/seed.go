package db

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"mantenedor/internal/model"
)

// DemoClients are inserted by Seed. Nine of the twelve are active.
var DemoClients = []model.NewClient{
	{RazonSocial: "Ana Torres Vega", Direccion: "Av. Arequipa 1234", Telefono: "987654321", TipoPersona: model.PersonaNatural, Estado: model.EstadoActivo, TipoDocumento: "DNI", NumeroDocumento: "45879632"},
	{RazonSocial: "Bodega San Martín S.A.C.", Direccion: "Jr. Junín 455", Telefono: "014567890", TipoPersona: model.PersonaJuridica, Estado: model.EstadoActivo, TipoDocumento: "RUC", NumeroDocumento: "20512345678"},
	{RazonSocial: "Carlos Quispe Mamani", Direccion: "Calle Lima 88", Telefono: "956112233", TipoPersona: model.PersonaNatural, Estado: model.EstadoActivo, TipoDocumento: "DNI", NumeroDocumento: "70123456"},
	{RazonSocial: "Distribuidora El Sol E.I.R.L.", Direccion: "Av. Grau 1020", Telefono: "014443322", TipoPersona: model.PersonaJuridica, Estado: model.EstadoInactivo, TipoDocumento: "RUC", NumeroDocumento: "20600011122"},
	{RazonSocial: "Elena Ríos Paredes", Direccion: "Psje. Las Flores 12", Telefono: "912345678", TipoPersona: model.PersonaNatural, Estado: model.EstadoActivo, TipoDocumento: "DNI", NumeroDocumento: "41236987"},
	{RazonSocial: "Farmacia Central S.A.", Direccion: "Av. Brasil 300", Telefono: "017778899", TipoPersona: model.PersonaJuridica, Estado: model.EstadoActivo, TipoDocumento: "RUC", NumeroDocumento: "20100200300"},
	{RazonSocial: "Gustavo Huamán León", Direccion: "Jr. Puno 742", Telefono: "934567812", TipoPersona: model.PersonaNatural, Estado: model.EstadoInactivo, TipoDocumento: "DNI", NumeroDocumento: "08765432"},
	{RazonSocial: "Hostal Los Andes S.R.L.", Direccion: "Av. Cusco 56", Telefono: "084223344", TipoPersona: model.PersonaJuridica, Estado: model.EstadoActivo, TipoDocumento: "RUC", NumeroDocumento: "20455667788"},
	{RazonSocial: "Isabel Chávez Soto", Direccion: "Calle Real 901", Telefono: "945678123", TipoPersona: model.PersonaNatural, Estado: model.EstadoActivo, TipoDocumento: "CE", NumeroDocumento: "001234567"},
	{RazonSocial: "Jorge Salas Pinto", Direccion: "Av. Tacna 610", Telefono: "967812345", TipoPersona: model.PersonaNatural, Estado: model.EstadoInactivo, TipoDocumento: "DNI", NumeroDocumento: "46781234"},
	{RazonSocial: "Kiosko La Esquina", Direccion: "Jr. Ayacucho 33", Telefono: "978123456", TipoPersona: model.PersonaJuridica, Estado: model.EstadoActivo, TipoDocumento: "RUC", NumeroDocumento: "10467812345"},
	{RazonSocial: "Lucía Fernández Díaz", Direccion: "Av. Sucre 1500", Telefono: "989123456", TipoPersona: model.PersonaNatural, Estado: model.EstadoActivo, TipoDocumento: "DNI", NumeroDocumento: "72345678"},
}

// DemoProducts are inserted by Seed.
var DemoProducts = []model.NewProduct{
	{Codigo: "P-0001", Nombre: "Gaseosa Inca Kola 500ml", Precio: decimal.RequireFromString("3.50"), Stock: 120, Estado: model.EstadoActivo, Marca: "Inca Kola", Presentacion: "Botella", Categorias: []string{"Bebidas"}},
	{Codigo: "P-0002", Nombre: "Agua San Luis 625ml", Precio: decimal.RequireFromString("2.00"), Stock: 200, Estado: model.EstadoActivo, Marca: "San Luis", Presentacion: "Botella", Categorias: []string{"Bebidas"}},
	{Codigo: "P-0003", Nombre: "Papas Lays Clásicas", Precio: decimal.RequireFromString("2.80"), Stock: 75, Estado: model.EstadoActivo, Marca: "Lays", Presentacion: "Bolsa", Categorias: []string{"Snacks"}},
	{Codigo: "P-0004", Nombre: "Leche Gloria Entera", Precio: decimal.RequireFromString("4.20"), Stock: 60, Estado: model.EstadoActivo, Marca: "Gloria", Presentacion: "Lata", Categorias: []string{"Lácteos"}},
	{Codigo: "P-0005", Nombre: "Yogurt Gloria Fresa 1L", Precio: decimal.RequireFromString("6.90"), Stock: 0, Estado: model.EstadoInactivo, Marca: "Gloria", Presentacion: "Botella", Categorias: []string{"Lácteos"}},
	{Codigo: "P-0006", Nombre: "Audífonos Inalámbricos", Precio: decimal.RequireFromString("89.90"), Stock: 12, Estado: model.EstadoActivo, Marca: "Sony", Presentacion: "Caja", Categorias: []string{"Electrónica", "Accesorios"}},
	{Codigo: "P-0007", Nombre: "Cargador USB-C 20W", Precio: decimal.RequireFromString("45.00"), Stock: 0, Estado: model.EstadoInactivo, Marca: "Samsung", Presentacion: "Caja", Categorias: []string{"Electrónica"}},
	{Codigo: "P-0008", Nombre: "Pilas AA x4", Precio: decimal.RequireFromString("12.50"), Stock: 40, Estado: model.EstadoActivo, Marca: "Duracell", Presentacion: "Blíster", Categorias: []string{"Electrónica", "Hogar"}},
	{Codigo: "P-0009", Nombre: "Detergente Ariel 800g", Precio: decimal.RequireFromString("14.30"), Stock: 35, Estado: model.EstadoActivo, Marca: "Ariel", Presentacion: "Bolsa", Categorias: []string{"Limpieza", "Hogar"}},
	{Codigo: "P-0010", Nombre: "Lejía Clorox 1L", Precio: decimal.RequireFromString("5.60"), Stock: 0, Estado: model.EstadoInactivo, Marca: "Clorox", Presentacion: "Botella", Categorias: []string{"Limpieza"}},
	{Codigo: "P-0011", Nombre: "Galletas Oreo", Precio: decimal.RequireFromString("1.50"), Stock: 150, Estado: model.EstadoActivo, Marca: "Oreo", Presentacion: "Paquete", Categorias: []string{"Snacks"}},
	{Codigo: "P-0012", Nombre: "Cable HDMI 2m", Precio: decimal.RequireFromString("19.90"), Stock: 8, Estado: model.EstadoActivo, Marca: "Samsung", Presentacion: "Bolsa", Categorias: []string{"Electrónica", "Accesorios"}},
	{Codigo: "P-0013", Nombre: "Cerveza Cusqueña 620ml", Precio: decimal.RequireFromString("7.50"), Stock: 48, Estado: model.EstadoActivo, Marca: "Cusqueña", Presentacion: "Botella", Categorias: []string{"Bebidas", "Licores"}},
	{Codigo: "P-0014", Nombre: "Mantequilla Laive 200g", Precio: decimal.RequireFromString("8.40"), Stock: 22, Estado: model.EstadoActivo, Marca: "Laive", Presentacion: "Paquete", Categorias: []string{"Lácteos"}},
}

// Seed inserts the demo clients and products when the database has no
// clients yet. It reports whether anything was inserted.
func Seed(db *sql.DB) (bool, error) {
	n, err := CountClients(db)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	for _, c := range DemoClients {
		if _, err := InsertClient(db, c); err != nil {
			return false, fmt.Errorf("failed to seed client %q: %w", c.RazonSocial, err)
		}
	}
	for _, p := range DemoProducts {
		if _, err := InsertProduct(db, p); err != nil {
			return false, fmt.Errorf("failed to seed product %q: %w", p.Codigo, err)
		}
	}
	return true, nil
}
