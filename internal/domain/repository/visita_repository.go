package repository

import (
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// CronogramaRepository puerto de persistencia para el cronograma de visitas.
// Create devuelve domain.ErrDuplicate si el cliente ya tiene ese día asignado.
type CronogramaRepository interface {
	Create(c *entity.CronogramaVisita) error
	GetByID(id int64) (*entity.CronogramaVisita, error)
	List(clienteID *int64) ([]*entity.CronogramaVisita, error)
	ListByCliente(clienteID int64) ([]*entity.CronogramaVisita, error)
	Update(c *entity.CronogramaVisita) error
	Delete(id int64) error
}

// VisitaRepository puerto de persistencia para visitas realizadas.
type VisitaRepository interface {
	Create(v *entity.VisitaCliente) error
	GetByID(id int64) (*entity.VisitaCliente, error)
	// List filtra por cliente y/o rango de fechas; ordena por fecha descendente.
	List(clienteID *int64, desde, hasta *time.Time) ([]*entity.VisitaCliente, error)
	ListByCliente(clienteID int64) ([]*entity.VisitaCliente, error)
	Update(v *entity.VisitaCliente) error
	Delete(id int64) error
}
