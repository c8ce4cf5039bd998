package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, precio_compra, precio_venta, cantidad, categoria_id, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, precio_compra, precio_venta, cantidad, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.PrecioCompra, p.PrecioVenta, p.Cantidad, p.CategoriaID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (excluye borrados).
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 AND deleted_at IS NULL`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.PrecioCompra, &p.PrecioVenta, &p.Cantidad, &p.CategoriaID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista productos no borrados ordenados por nombre.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE deleted_at IS NULL ORDER BY nombre ASC`
	return r.queryList(query)
}

// ListByCategoria lista los productos de una categoría.
func (r *ProductoRepo) ListByCategoria(categoriaID int64) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos
		WHERE categoria_id = $1 AND deleted_at IS NULL ORDER BY nombre ASC`
	return r.queryList(query, categoriaID)
}

func (r *ProductoRepo) queryList(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.PrecioCompra, &p.PrecioVenta, &p.Cantidad,
			&p.CategoriaID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, precio_compra = $3, precio_venta = $4, cantidad = $5, categoria_id = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.PrecioCompra, p.PrecioVenta, p.Cantidad, p.CategoriaID, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo las existencias del producto.
func (r *ProductoRepo) UpdateStock(id int64, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, cantidad)
	if err != nil {
		return fmt.Errorf("update producto stock: %w", err)
	}
	return nil
}

// Delete marca el producto como borrado (soft delete).
func (r *ProductoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
