package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

var _ repository.CronogramaRepository = (*CronogramaRepo)(nil)
var _ repository.VisitaRepository = (*VisitaRepo)(nil)

// CronogramaRepo implementación de CronogramaRepository sobre PostgreSQL.
type CronogramaRepo struct {
	q Querier
}

// NewCronogramaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCronogramaRepository(q Querier) *CronogramaRepo {
	return &CronogramaRepo{q: q}
}

// Create persiste un día de cronograma. La pareja (cliente, día) es única:
// una violación del índice devuelve domain.ErrDuplicate.
func (r *CronogramaRepo) Create(c *entity.CronogramaVisita) error {
	query := `
		INSERT INTO cronograma_visitas (cliente_id, dia_semana, orden, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.ClienteID, c.DiaSemana, c.Orden, c.Activo, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert cronograma: %w", err)
	}
	return nil
}

// GetByID obtiene un cronograma por ID (excluye borrados).
func (r *CronogramaRepo) GetByID(id int64) (*entity.CronogramaVisita, error) {
	query := `
		SELECT id, cliente_id, dia_semana, orden, activo, created_at, updated_at
		FROM cronograma_visitas WHERE id = $1 AND deleted_at IS NULL`
	var c entity.CronogramaVisita
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClienteID, &c.DiaSemana, &c.Orden, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cronograma: %w", err)
	}
	return &c, nil
}

// List lista cronogramas ordenados por día, filtrables por cliente.
func (r *CronogramaRepo) List(clienteID *int64) ([]*entity.CronogramaVisita, error) {
	query := `
		SELECT id, cliente_id, dia_semana, orden, activo, created_at, updated_at
		FROM cronograma_visitas
		WHERE deleted_at IS NULL AND ($1::bigint IS NULL OR cliente_id = $1)
		ORDER BY dia_semana ASC`
	return r.queryList(query, clienteID)
}

// ListByCliente lista el cronograma de un cliente ordenado por posición.
func (r *CronogramaRepo) ListByCliente(clienteID int64) ([]*entity.CronogramaVisita, error) {
	query := `
		SELECT id, cliente_id, dia_semana, orden, activo, created_at, updated_at
		FROM cronograma_visitas
		WHERE cliente_id = $1 AND deleted_at IS NULL
		ORDER BY orden ASC NULLS LAST`
	return r.queryList(query, clienteID)
}

func (r *CronogramaRepo) queryList(query string, args ...any) ([]*entity.CronogramaVisita, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cronogramas: %w", err)
	}
	defer rows.Close()
	var list []*entity.CronogramaVisita
	for rows.Next() {
		var c entity.CronogramaVisita
		if err := rows.Scan(&c.ID, &c.ClienteID, &c.DiaSemana, &c.Orden, &c.Activo,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cronograma: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cronograma existente.
func (r *CronogramaRepo) Update(c *entity.CronogramaVisita) error {
	query := `
		UPDATE cronograma_visitas SET dia_semana = $2, orden = $3, activo = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.DiaSemana, c.Orden, c.Activo, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cronograma: %w", err)
	}
	return nil
}

// Delete marca el cronograma como borrado (soft delete).
func (r *CronogramaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cronograma_visitas SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete cronograma: %w", err)
	}
	return nil
}

// VisitaRepo implementación de VisitaRepository sobre PostgreSQL.
type VisitaRepo struct {
	q Querier
}

// NewVisitaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitaRepository(q Querier) *VisitaRepo {
	return &VisitaRepo{q: q}
}

// Create persiste una visita.
func (r *VisitaRepo) Create(v *entity.VisitaCliente) error {
	query := `
		INSERT INTO visitas_clientes (cliente_id, fecha, realizada, notas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.ClienteID, v.Fecha, v.Realizada, v.Notas, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert visita: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID (excluye borradas).
func (r *VisitaRepo) GetByID(id int64) (*entity.VisitaCliente, error) {
	query := `
		SELECT id, cliente_id, fecha, realizada, notas, created_at, updated_at
		FROM visitas_clientes WHERE id = $1 AND deleted_at IS NULL`
	var v entity.VisitaCliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.Fecha, &v.Realizada, &v.Notas, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visita: %w", err)
	}
	return &v, nil
}

// List lista visitas por fecha descendente, filtrables por cliente y rango de fechas.
func (r *VisitaRepo) List(clienteID *int64, desde, hasta *time.Time) ([]*entity.VisitaCliente, error) {
	query := `
		SELECT id, cliente_id, fecha, realizada, notas, created_at, updated_at
		FROM visitas_clientes
		WHERE deleted_at IS NULL
		  AND ($1::bigint IS NULL OR cliente_id = $1)
		  AND ($2::timestamptz IS NULL OR fecha >= $2)
		  AND ($3::timestamptz IS NULL OR fecha <= $3)
		ORDER BY fecha DESC`
	return r.queryList(query, clienteID, desde, hasta)
}

// ListByCliente lista las visitas de un cliente por fecha descendente.
func (r *VisitaRepo) ListByCliente(clienteID int64) ([]*entity.VisitaCliente, error) {
	query := `
		SELECT id, cliente_id, fecha, realizada, notas, created_at, updated_at
		FROM visitas_clientes
		WHERE cliente_id = $1 AND deleted_at IS NULL
		ORDER BY fecha DESC`
	return r.queryList(query, clienteID)
}

func (r *VisitaRepo) queryList(query string, args ...any) ([]*entity.VisitaCliente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visitas: %w", err)
	}
	defer rows.Close()
	var list []*entity.VisitaCliente
	for rows.Next() {
		var v entity.VisitaCliente
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Fecha, &v.Realizada, &v.Notas,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan visita: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza una visita existente.
func (r *VisitaRepo) Update(v *entity.VisitaCliente) error {
	query := `
		UPDATE visitas_clientes SET fecha = $2, realizada = $3, notas = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Fecha, v.Realizada, v.Notas, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update visita: %w", err)
	}
	return nil
}

// Delete marca la visita como borrada (soft delete).
func (r *VisitaRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE visitas_clientes SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete visita: %w", err)
	}
	return nil
}
