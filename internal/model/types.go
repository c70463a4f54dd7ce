package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado values stored in personas.estado and productos.estado.
const (
	EstadoInactivo = 0
	EstadoActivo   = 1
)

// Person types accepted by personas.tipo_persona.
const (
	PersonaNatural  = "Natural"
	PersonaJuridica = "Jurídica"
)

// ClientRow represents a client with its persona data for list display.
type ClientRow struct {
	ID              int64
	RazonSocial     string
	TipoDocumento   string
	NumeroDocumento string
	Telefono        string
	Direccion       string
	TipoPersona     string
	Estado          int
	CreatedAt       time.Time
}

// Active reports whether the client's persona is active.
func (r ClientRow) Active() bool { return r.Estado == EstadoActivo }

// ProductRow represents a product with joined brand, presentation and
// categories for list display.
type ProductRow struct {
	ID           int64
	Codigo       string
	Nombre       string
	Precio       decimal.Decimal
	Stock        int
	Marca        string
	Presentacion string
	Categorias   []string
	Estado       int
}

// Active reports whether the product is active.
func (r ProductRow) Active() bool { return r.Estado == EstadoActivo }

// NewClient represents data for creating a client together with its persona.
type NewClient struct {
	RazonSocial     string
	Direccion       string
	Telefono        string
	TipoPersona     string
	Estado          int
	TipoDocumento   string
	NumeroDocumento string
}

// NewProduct represents data for creating a product.
type NewProduct struct {
	Codigo       string
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	Stock        int
	Estado       int
	Marca        string
	Presentacion string
	Categorias   []string
}
