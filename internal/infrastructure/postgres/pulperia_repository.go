package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.PulperiaRepository = (*PulperiaRepo)(nil)

// PulperiaRepo implementación de PulperiaRepository sobre PostgreSQL (usable con pool o tx).
type PulperiaRepo struct {
	q Querier
}

// NewPulperiaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPulperiaRepository(q Querier) *PulperiaRepo {
	return &PulperiaRepo{q: q}
}

// Create persiste una nueva pulpería.
func (r *PulperiaRepo) Create(p *entity.Pulperia) error {
	query := `
		INSERT INTO pulperias (nombre, direccion, telefono, ruta_id, orden, cantidad_clientes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.Direccion, p.Telefono, p.RutaID, p.Orden, p.CantidadClientes,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert pulperia: %w", err)
	}
	return nil
}

// GetByID obtiene una pulpería por ID (excluye borradas).
func (r *PulperiaRepo) GetByID(id int64) (*entity.Pulperia, error) {
	query := `
		SELECT id, nombre, direccion, telefono, ruta_id, orden, cantidad_clientes, created_at, updated_at
		FROM pulperias WHERE id = $1 AND deleted_at IS NULL`
	var p entity.Pulperia
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Direccion, &p.Telefono, &p.RutaID, &p.Orden,
		&p.CantidadClientes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pulperia: %w", err)
	}
	return &p, nil
}

// List lista pulperías no borradas ordenadas por ruta y posición.
func (r *PulperiaRepo) List() ([]*entity.Pulperia, error) {
	query := `
		SELECT id, nombre, direccion, telefono, ruta_id, orden, cantidad_clientes, created_at, updated_at
		FROM pulperias WHERE deleted_at IS NULL
		ORDER BY ruta_id ASC NULLS LAST, orden ASC`
	return r.queryList(query)
}

// ListByRuta lista las pulperías de una ruta ordenadas por posición.
func (r *PulperiaRepo) ListByRuta(rutaID int64) ([]*entity.Pulperia, error) {
	query := `
		SELECT id, nombre, direccion, telefono, ruta_id, orden, cantidad_clientes, created_at, updated_at
		FROM pulperias WHERE ruta_id = $1 AND deleted_at IS NULL
		ORDER BY orden ASC`
	return r.queryList(query, rutaID)
}

func (r *PulperiaRepo) queryList(query string, args ...any) ([]*entity.Pulperia, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pulperias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pulperia
	for rows.Next() {
		var p entity.Pulperia
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Direccion, &p.Telefono, &p.RutaID, &p.Orden,
			&p.CantidadClientes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pulperia: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos de negocio de la pulpería. CantidadClientes se
// maneja vía UpdateCantidadClientes.
func (r *PulperiaRepo) Update(p *entity.Pulperia) error {
	query := `
		UPDATE pulperias SET nombre = $2, direccion = $3, telefono = $4, ruta_id = $5, orden = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Direccion, p.Telefono, p.RutaID, p.Orden, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pulperia: %w", err)
	}
	return nil
}

// Delete marca la pulpería como borrada (soft delete).
func (r *PulperiaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pulperias SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete pulperia: %w", err)
	}
	return nil
}

// CountByRuta cuenta pulperías no borradas de la ruta.
func (r *PulperiaRepo) CountByRuta(rutaID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM pulperias WHERE ruta_id = $1 AND deleted_at IS NULL`, rutaID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pulperias by ruta: %w", err)
	}
	return count, nil
}

// SumClientesByRuta suma los contadores de clientes de las pulperías no borradas de la ruta.
func (r *PulperiaRepo) SumClientesByRuta(rutaID int64) (int, error) {
	var sum int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad_clientes), 0) FROM pulperias WHERE ruta_id = $1 AND deleted_at IS NULL`, rutaID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum clientes by ruta: %w", err)
	}
	return sum, nil
}

// UpdateCantidadClientes persiste solo el contador derivado (usado por el recálculo de agregados).
func (r *PulperiaRepo) UpdateCantidadClientes(id int64, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pulperias SET cantidad_clientes = $2, updated_at = now() WHERE id = $1`,
		id, cantidad)
	if err != nil {
		return fmt.Errorf("update pulperia cantidad_clientes: %w", err)
	}
	return nil
}
