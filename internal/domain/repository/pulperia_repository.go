package repository

import "github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"

// PulperiaRepository puerto de persistencia para pulperías.
type PulperiaRepository interface {
	Create(p *entity.Pulperia) error
	GetByID(id int64) (*entity.Pulperia, error)
	List() ([]*entity.Pulperia, error)
	ListByRuta(rutaID int64) ([]*entity.Pulperia, error)
	Update(p *entity.Pulperia) error
	Delete(id int64) error

	// Lecturas de agregación sobre pulperías no borradas de una ruta.
	CountByRuta(rutaID int64) (int, error)
	SumClientesByRuta(rutaID int64) (int, error)

	// UpdateCantidadClientes persiste solo el contador derivado (no dispara
	// más propagación sobre la pulpería).
	UpdateCantidadClientes(id int64, cantidad int) error
}
