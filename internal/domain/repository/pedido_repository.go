package repository

import (
	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// PedidoRepository puerto de persistencia para pedidos y sus detalles.
// El mismo repositorio maneja ambas tablas porque siempre se escriben juntas
// dentro de una transacción.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	GetByID(id int64) (*entity.Pedido, error)
	// List devuelve pedidos no borrados ordenados por fecha descendente,
	// filtrables por cliente y/o pulpería.
	List(clienteID, pulperiaID *int64) ([]*entity.Pedido, error)
	Update(p *entity.Pedido) error
	Delete(id int64) error

	CreateDetalle(d *entity.DetallePedido) error
	UpdateDetalle(d *entity.DetallePedido) error
	GetDetalleByID(id int64) (*entity.DetallePedido, error)
	GetDetallesByPedidoID(pedidoID int64) ([]*entity.DetallePedido, error)
	// DeleteDetallesExcept borra (soft) los detalles del pedido cuyo id no está
	// en keep. Con keep vacío borra todos.
	DeleteDetallesExcept(pedidoID int64, keep []int64) error
	DeleteDetallesByPedido(pedidoID int64) error

	// SumDetalles devuelve Σ(cantidad × precio) sobre detalles no borrados.
	SumDetalles(pedidoID int64) (decimal.Decimal, error)
	// UpdateTotal persiste solo el total derivado (no dispara más propagación).
	UpdateTotal(id int64, total decimal.Decimal) error
}
