package repository

import "github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"

// RutaRepository puerto de persistencia para rutas.
// GetByID devuelve nil (sin error) si la ruta no existe o está borrada.
type RutaRepository interface {
	Create(r *entity.Ruta) error
	GetByID(id int64) (*entity.Ruta, error)
	List() ([]*entity.Ruta, error)
	Update(r *entity.Ruta) error
	Delete(id int64) error

	// UpdateCounts persiste solo los contadores derivados. Es el camino de
	// escritura del recálculo de agregados: no toca updated_at de negocio ni
	// dispara más propagación.
	UpdateCounts(id int64, cantidadPulperias, cantidadClientes int) error
}
