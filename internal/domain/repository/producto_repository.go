package repository

import "github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"

// ProductoRepository puerto de persistencia para productos.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	ListByCategoria(categoriaID int64) ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	// UpdateStock actualiza solo las existencias (endpoint /productos/:id/stock).
	UpdateStock(id int64, cantidad int) error
	Delete(id int64) error
}
