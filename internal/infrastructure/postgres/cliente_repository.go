package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nombre, direccion, telefono, pulperia_id, latitude, longitude, usuario_id, orden, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, direccion, telefono, pulperia_id, latitude, longitude, usuario_id, orden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nombre, c.Direccion, c.Telefono, c.PulperiaID, c.Latitude, c.Longitude,
		c.UsuarioID, c.Orden, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert cliente: la pulpería o el usuario no existe: %w", err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID (excluye borrados).
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1 AND deleted_at IS NULL`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Direccion, &c.Telefono, &c.PulperiaID,
		&c.Latitude, &c.Longitude, &c.UsuarioID, &c.Orden, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes no borrados ordenados por nombre, filtrables por pulpería.
func (r *ClienteRepo) List(pulperiaID *int64) ([]*entity.Cliente, error) {
	if pulperiaID != nil {
		query := `SELECT ` + clienteColumns + ` FROM clientes
			WHERE pulperia_id = $1 AND deleted_at IS NULL ORDER BY nombre ASC`
		return r.queryList(query, *pulperiaID)
	}
	query := `SELECT ` + clienteColumns + ` FROM clientes
		WHERE deleted_at IS NULL ORDER BY nombre ASC`
	return r.queryList(query)
}

// ListByRuta lista los clientes de todas las pulperías no borradas de la ruta.
func (r *ClienteRepo) ListByRuta(rutaID int64) ([]*entity.Cliente, error) {
	query := `
		SELECT c.id, c.nombre, c.direccion, c.telefono, c.pulperia_id, c.latitude, c.longitude,
		       c.usuario_id, c.orden, c.created_at, c.updated_at
		FROM clientes c
		JOIN pulperias p ON p.id = c.pulperia_id AND p.deleted_at IS NULL
		WHERE p.ruta_id = $1 AND c.deleted_at IS NULL
		ORDER BY p.orden ASC, c.nombre ASC`
	return r.queryList(query, rutaID)
}

func (r *ClienteRepo) queryList(query string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Direccion, &c.Telefono, &c.PulperiaID,
			&c.Latitude, &c.Longitude, &c.UsuarioID, &c.Orden, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, direccion = $3, telefono = $4, pulperia_id = $5, latitude = $6,
		    longitude = $7, usuario_id = $8, orden = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Direccion, c.Telefono, c.PulperiaID, c.Latitude,
		c.Longitude, c.UsuarioID, c.Orden, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete marca el cliente como borrado (soft delete).
func (r *ClienteRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// CountByPulperia cuenta clientes no borrados de la pulpería.
func (r *ClienteRepo) CountByPulperia(pulperiaID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM clientes WHERE pulperia_id = $1 AND deleted_at IS NULL`, pulperiaID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count clientes by pulperia: %w", err)
	}
	return count, nil
}
