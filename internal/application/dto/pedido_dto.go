package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// DetallePedidoRequest línea de pedido en la petición. ID viene presente solo
// al actualizar un detalle existente.
type DetallePedidoRequest struct {
	ID         *int64          `json:"id"`
	ProductoID int64           `json:"productoId"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}

// PedidoRequest body para POST/PUT /api/pedidos.
type PedidoRequest struct {
	ClienteID  int64                  `json:"clienteId"`
	PulperiaID *int64                 `json:"pulperiaId"`
	Fecha      string                 `json:"fecha"`
	Detalles   []DetallePedidoRequest `json:"detalles"`
}

// Validate valida el pedido completo antes de abrir la transacción.
func (r *PedidoRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if r.ClienteID <= 0 {
		msgs.Add("clienteId", "El campo clienteId es obligatorio.")
	}
	if r.Fecha == "" {
		msgs.Add("fecha", "El campo fecha es obligatorio.")
	} else if _, err := ParseFecha(r.Fecha); err != nil {
		msgs.Add("fecha", "El campo fecha no es una fecha válida.")
	}
	if len(r.Detalles) == 0 {
		msgs.Add("detalles", "El pedido debe tener al menos un detalle.")
	}
	for i, d := range r.Detalles {
		if d.ProductoID <= 0 {
			msgs.Add("detalles."+strconv.Itoa(i)+".productoId", "El campo productoId es obligatorio.")
		}
		if d.Cantidad < 1 {
			msgs.Add("detalles."+strconv.Itoa(i)+".cantidad", "La cantidad debe ser al menos 1.")
		}
		if d.Precio.IsNegative() {
			msgs.Add("detalles."+strconv.Itoa(i)+".precio", "El precio no puede ser negativo.")
		}
	}
	return msgs
}

// DetallePedidoDTO línea de pedido en respuestas. nombreProducto es null si
// el producto referenciado ya no existe.
type DetallePedidoDTO struct {
	ID             int64     `json:"id"`
	PedidoID       int64     `json:"pedidoId"`
	ProductoID     int64     `json:"productoId"`
	NombreProducto *string   `json:"nombreProducto"`
	Cantidad       int       `json:"cantidad"`
	Precio         string    `json:"precio"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PedidoDTO representación JSON de un pedido con sus detalles.
type PedidoDTO struct {
	ID             int64              `json:"id"`
	ClienteID      int64              `json:"clienteId"`
	NombreCliente  *string            `json:"nombreCliente"`
	PulperiaID     *int64             `json:"pulperiaId"`
	NombrePulperia *string            `json:"nombrePulperia"`
	Fecha          string             `json:"fecha"`
	Total          string             `json:"total"`
	Detalles       []DetallePedidoDTO `json:"detalles"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ToDetallePedidoDTO convierte una línea.
func ToDetallePedidoDTO(d *entity.DetallePedido, nombreProducto *string) DetallePedidoDTO {
	return DetallePedidoDTO{
		ID:             d.ID,
		PedidoID:       d.PedidoID,
		ProductoID:     d.ProductoID,
		NombreProducto: nombreProducto,
		Cantidad:       d.Cantidad,
		Precio:         d.Precio.StringFixed(2),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToPedidoDTO convierte el pedido. Los nombres mostrados son null cuando la
// referencia quedó colgando.
func ToPedidoDTO(p *entity.Pedido, nombreCliente, nombrePulperia *string, detalles []DetallePedidoDTO) PedidoDTO {
	if detalles == nil {
		detalles = []DetallePedidoDTO{}
	}
	return PedidoDTO{
		ID:             p.ID,
		ClienteID:      p.ClienteID,
		NombreCliente:  nombreCliente,
		PulperiaID:     p.PulperiaID,
		NombrePulperia: nombrePulperia,
		Fecha:          FormatFecha(p.Fecha),
		Total:          p.Total.StringFixed(2),
		Detalles:       detalles,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
