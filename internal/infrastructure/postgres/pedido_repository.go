package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository sobre PostgreSQL (usable con pool o tx).
// cliente_id, pulperia_id y producto_id son referencias blandas: no hay FOREIGN
// KEY en esas columnas, los pedidos sobreviven a sus referencias.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (cliente_id, pulperia_id, fecha, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.ClienteID, p.PulperiaID, p.Fecha, p.Total, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID (excluye borrados).
func (r *PedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	query := `
		SELECT id, cliente_id, pulperia_id, fecha, total, created_at, updated_at
		FROM pedidos WHERE id = $1 AND deleted_at IS NULL`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClienteID, &p.PulperiaID, &p.Fecha, &p.Total, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List lista pedidos no borrados por fecha descendente, filtrables por cliente y/o pulpería.
func (r *PedidoRepo) List(clienteID, pulperiaID *int64) ([]*entity.Pedido, error) {
	query := `
		SELECT id, cliente_id, pulperia_id, fecha, total, created_at, updated_at
		FROM pedidos
		WHERE deleted_at IS NULL
		  AND ($1::bigint IS NULL OR cliente_id = $1)
		  AND ($2::bigint IS NULL OR pulperia_id = $2)
		ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, clienteID, pulperiaID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.ClienteID, &p.PulperiaID, &p.Fecha, &p.Total,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos escalares del pedido. Total se maneja vía UpdateTotal.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	query := `
		UPDATE pedidos SET cliente_id = $2, pulperia_id = $3, fecha = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClienteID, p.PulperiaID, p.Fecha, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// Delete marca el pedido como borrado (soft delete).
func (r *PedidoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea del pedido.
func (r *PedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	query := `
		INSERT INTO detalles_pedido (pedido_id, producto_id, cantidad, precio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		d.PedidoID, d.ProductoID, d.Cantidad, d.Precio, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// UpdateDetalle actualiza una línea existente.
func (r *PedidoRepo) UpdateDetalle(d *entity.DetallePedido) error {
	query := `
		UPDATE detalles_pedido SET producto_id = $2, cantidad = $3, precio = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.ProductoID, d.Cantidad, d.Precio, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update detalle: %w", err)
	}
	return nil
}

// GetDetalleByID obtiene una línea por ID (excluye borradas).
func (r *PedidoRepo) GetDetalleByID(id int64) (*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, precio, created_at, updated_at
		FROM detalles_pedido WHERE id = $1 AND deleted_at IS NULL`
	var d entity.DetallePedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.PedidoID, &d.ProductoID, &d.Cantidad, &d.Precio, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return &d, nil
}

// GetDetallesByPedidoID obtiene todas las líneas no borradas de un pedido.
func (r *PedidoRepo) GetDetallesByPedidoID(pedidoID int64) ([]*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, precio, created_at, updated_at
		FROM detalles_pedido WHERE pedido_id = $1 AND deleted_at IS NULL ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.Cantidad, &d.Precio,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// DeleteDetallesExcept borra (soft) los detalles del pedido cuyo id no está en keep.
func (r *PedidoRepo) DeleteDetallesExcept(pedidoID int64, keep []int64) error {
	query := `
		UPDATE detalles_pedido SET deleted_at = now()
		WHERE pedido_id = $1 AND deleted_at IS NULL AND NOT (id = ANY($2))`
	if keep == nil {
		keep = []int64{}
	}
	_, err := r.q.Exec(context.Background(), query, pedidoID, keep)
	if err != nil {
		return fmt.Errorf("delete detalles except: %w", err)
	}
	return nil
}

// DeleteDetallesByPedido borra (soft) todas las líneas del pedido.
func (r *PedidoRepo) DeleteDetallesByPedido(pedidoID int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE detalles_pedido SET deleted_at = now() WHERE pedido_id = $1 AND deleted_at IS NULL`, pedidoID)
	if err != nil {
		return fmt.Errorf("delete detalles by pedido: %w", err)
	}
	return nil
}

// SumDetalles devuelve Σ(cantidad × precio) sobre las líneas no borradas del pedido.
func (r *PedidoRepo) SumDetalles(pedidoID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad * precio), 0) FROM detalles_pedido WHERE pedido_id = $1 AND deleted_at IS NULL`,
		pedidoID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum detalles: %w", err)
	}
	return total, nil
}

// UpdateTotal persiste solo el total derivado del pedido.
func (r *PedidoRepo) UpdateTotal(id int64, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET total = $2, updated_at = now() WHERE id = $1`,
		id, total)
	if err != nil {
		return fmt.Errorf("update pedido total: %w", err)
	}
	return nil
}
