package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido representa un pedido de un cliente. ClienteID y PulperiaID son
// referencias blandas (sin FOREIGN KEY): el pedido sobrevive aunque el cliente
// o la pulpería se eliminen después. Total es derivado: suma de
// cantidad × precio de los detalles no borrados.
type Pedido struct {
	ID         int64
	ClienteID  int64
	PulperiaID *int64
	Fecha      time.Time
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// DetallePedido representa una línea del pedido. ProductoID es referencia
// blanda; Precio es el precio unitario capturado al momento del pedido,
// independiente del precio actual del producto.
type DetallePedido struct {
	ID         int64
	PedidoID   int64
	ProductoID int64
	Cantidad   int
	Precio     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
