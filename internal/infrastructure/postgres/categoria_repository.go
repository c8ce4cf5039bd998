package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (nombre, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.Nombre, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID (excluye borradas).
func (r *CategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	query := `SELECT id, nombre, created_at, updated_at FROM categorias WHERE id = $1 AND deleted_at IS NULL`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista categorías no borradas ordenadas por nombre.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	query := `SELECT id, nombre, created_at, updated_at FROM categorias WHERE deleted_at IS NULL ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `UPDATE categorias SET nombre = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nombre, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete marca la categoría como borrada (soft delete).
func (r *CategoriaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
