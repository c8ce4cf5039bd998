package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.RutaRepository = (*RutaRepo)(nil)

// RutaRepo implementación de RutaRepository sobre PostgreSQL (usable con pool o tx).
type RutaRepo struct {
	q Querier
}

// NewRutaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRutaRepository(q Querier) *RutaRepo {
	return &RutaRepo{q: q}
}

// Create persiste una nueva ruta. Los contadores inician en 0.
func (r *RutaRepo) Create(ruta *entity.Ruta) error {
	query := `
		INSERT INTO rutas (nombre, cantidad_pulperias, cantidad_clientes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ruta.Nombre, ruta.CantidadPulperias, ruta.CantidadClientes, ruta.CreatedAt, ruta.UpdatedAt,
	).Scan(&ruta.ID)
	if err != nil {
		return fmt.Errorf("insert ruta: %w", err)
	}
	return nil
}

// GetByID obtiene una ruta por ID (excluye borradas).
func (r *RutaRepo) GetByID(id int64) (*entity.Ruta, error) {
	query := `
		SELECT id, nombre, cantidad_pulperias, cantidad_clientes, created_at, updated_at
		FROM rutas WHERE id = $1 AND deleted_at IS NULL`
	var ruta entity.Ruta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ruta.ID, &ruta.Nombre, &ruta.CantidadPulperias, &ruta.CantidadClientes,
		&ruta.CreatedAt, &ruta.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ruta: %w", err)
	}
	return &ruta, nil
}

// List lista rutas no borradas ordenadas por nombre.
func (r *RutaRepo) List() ([]*entity.Ruta, error) {
	query := `
		SELECT id, nombre, cantidad_pulperias, cantidad_clientes, created_at, updated_at
		FROM rutas WHERE deleted_at IS NULL ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list rutas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ruta
	for rows.Next() {
		var ruta entity.Ruta
		if err := rows.Scan(&ruta.ID, &ruta.Nombre, &ruta.CantidadPulperias, &ruta.CantidadClientes,
			&ruta.CreatedAt, &ruta.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ruta: %w", err)
		}
		list = append(list, &ruta)
	}
	return list, rows.Err()
}

// Update actualiza el nombre de la ruta. Los contadores se manejan vía UpdateCounts.
func (r *RutaRepo) Update(ruta *entity.Ruta) error {
	query := `UPDATE rutas SET nombre = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, ruta.ID, ruta.Nombre, ruta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update ruta: %w", err)
	}
	return nil
}

// Delete marca la ruta como borrada (soft delete).
func (r *RutaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE rutas SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete ruta: %w", err)
	}
	return nil
}

// UpdateCounts persiste solo los contadores derivados (usado por el recálculo de agregados).
func (r *RutaRepo) UpdateCounts(id int64, cantidadPulperias, cantidadClientes int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE rutas SET cantidad_pulperias = $2, cantidad_clientes = $3, updated_at = now() WHERE id = $1`,
		id, cantidadPulperias, cantidadClientes)
	if err != nil {
		return fmt.Errorf("update ruta counts: %w", err)
	}
	return nil
}
