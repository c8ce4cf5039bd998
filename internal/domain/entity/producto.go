package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto distribuido en las rutas.
// Los precios son moneda con 2 decimales (NUMERIC en PostgreSQL).
type Producto struct {
	ID           int64
	Nombre       string
	PrecioCompra decimal.Decimal
	PrecioVenta  decimal.Decimal
	Cantidad     int // existencias
	CategoriaID  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
