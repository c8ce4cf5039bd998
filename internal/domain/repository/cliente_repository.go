package repository

import "github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id int64) (*entity.Cliente, error)
	// List devuelve clientes no borrados ordenados por nombre; si pulperiaID
	// no es nil, filtra por esa pulpería.
	List(pulperiaID *int64) ([]*entity.Cliente, error)
	// ListByRuta devuelve los clientes de todas las pulperías de la ruta.
	ListByRuta(rutaID int64) ([]*entity.Cliente, error)
	Update(c *entity.Cliente) error
	Delete(id int64) error

	// CountByPulperia cuenta clientes no borrados de la pulpería (lectura de
	// agregación para el recálculo de cantidad_clientes).
	CountByPulperia(pulperiaID int64) (int, error)
}
