package usecase

import (
	"context"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// RutaUseCase casos de uso CRUD para rutas. Los contadores de la ruta los
// mantienen los casos de uso de pulperías y clientes, aquí solo se leen.
type RutaUseCase struct {
	rutas     repository.RutaRepository
	pulperias repository.PulperiaRepository
	clientes  repository.ClienteRepository
}

// NewRutaUseCase construye el caso de uso.
func NewRutaUseCase(rutas repository.RutaRepository, pulperias repository.PulperiaRepository, clientes repository.ClienteRepository) *RutaUseCase {
	return &RutaUseCase{rutas: rutas, pulperias: pulperias, clientes: clientes}
}

// Create crea una ruta con contadores en cero.
func (uc *RutaUseCase) Create(_ context.Context, req dto.RutaRequest) (*dto.RutaDTO, error) {
	now := time.Now()
	ruta := &entity.Ruta{Nombre: req.Nombre, CreatedAt: now, UpdatedAt: now}
	if err := uc.rutas.Create(ruta); err != nil {
		return nil, err
	}
	out := dto.ToRutaDTO(ruta)
	return &out, nil
}

// GetByID devuelve la ruta o nil si no existe.
func (uc *RutaUseCase) GetByID(id int64) (*dto.RutaDTO, error) {
	ruta, err := uc.rutas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ruta == nil {
		return nil, nil
	}
	out := dto.ToRutaDTO(ruta)
	return &out, nil
}

// List lista todas las rutas.
func (uc *RutaUseCase) List() ([]dto.RutaDTO, error) {
	list, err := uc.rutas.List()
	if err != nil {
		return nil, err
	}
	return dto.ToRutaDTOs(list), nil
}

// Update actualiza el nombre de la ruta.
func (uc *RutaUseCase) Update(_ context.Context, id int64, req dto.RutaRequest) (*dto.RutaDTO, error) {
	ruta, err := uc.rutas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ruta == nil {
		return nil, nil
	}
	ruta.Nombre = req.Nombre
	ruta.UpdatedAt = time.Now()
	if err := uc.rutas.Update(ruta); err != nil {
		return nil, err
	}
	out := dto.ToRutaDTO(ruta)
	return &out, nil
}

// Delete elimina la ruta. Las pulperías conservan su rutaId, que queda
// apuntando a una ruta borrada.
func (uc *RutaUseCase) Delete(_ context.Context, id int64) (bool, error) {
	ruta, err := uc.rutas.GetByID(id)
	if err != nil {
		return false, err
	}
	if ruta == nil {
		return false, nil
	}
	return true, uc.rutas.Delete(id)
}

// Pulperias devuelve las pulperías de la ruta ordenadas por orden.
func (uc *RutaUseCase) Pulperias(rutaID int64) ([]dto.PulperiaDTO, error) {
	ruta, err := uc.rutas.GetByID(rutaID)
	if err != nil || ruta == nil {
		return nil, err
	}
	list, err := uc.pulperias.ListByRuta(rutaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PulperiaDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPulperiaDTO(p, &ruta.Nombre))
	}
	return out, nil
}

// Clientes devuelve los clientes de todas las pulperías de la ruta.
func (uc *RutaUseCase) Clientes(rutaID int64) ([]dto.ClienteDTO, error) {
	ruta, err := uc.rutas.GetByID(rutaID)
	if err != nil || ruta == nil {
		return nil, err
	}
	list, err := uc.clientes.ListByRuta(rutaID)
	if err != nil {
		return nil, err
	}
	nombres := map[int64]*string{}
	out := make([]dto.ClienteDTO, 0, len(list))
	for _, c := range list {
		var nombrePulperia *string
		if c.PulperiaID != nil {
			cached, ok := nombres[*c.PulperiaID]
			if !ok {
				if p, err := uc.pulperias.GetByID(*c.PulperiaID); err == nil && p != nil {
					cached = &p.Nombre
				}
				nombres[*c.PulperiaID] = cached
			}
			nombrePulperia = cached
		}
		out = append(out, dto.ToClienteDTO(c, nombrePulperia))
	}
	return out, nil
}
