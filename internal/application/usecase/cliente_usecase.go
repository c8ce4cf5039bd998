package usecase

import (
	"context"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/counters"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/ports"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes. Cada escritura corre en
// transacción con el recálculo de cantidad_clientes de la pulpería afectada
// (y de las dos si el cliente se movió de pulpería), que a su vez propaga a la
// ruta.
type ClienteUseCase struct {
	tx        ports.TxRunner
	clientes  repository.ClienteRepository
	pulperias repository.PulperiaRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(tx ports.TxRunner, clientes repository.ClienteRepository, pulperias repository.PulperiaRepository) *ClienteUseCase {
	return &ClienteUseCase{tx: tx, clientes: clientes, pulperias: pulperias}
}

// Create crea el cliente y refresca el contador de su pulpería.
func (uc *ClienteUseCase) Create(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteDTO, error) {
	var id int64
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		now := time.Now()
		c := &entity.Cliente{
			Nombre:     req.Nombre,
			Direccion:  req.Direccion,
			Telefono:   req.Telefono,
			PulperiaID: req.PulperiaID,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			UsuarioID:  req.UsuarioID,
			Orden:      req.Orden,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Clientes.Create(c); err != nil {
			return err
		}
		id = c.ID
		if c.PulperiaID != nil {
			return counters.RefreshPulperia(r.Clientes, r.Pulperias, r.Rutas, *c.PulperiaID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// GetByID devuelve el cliente hidratado o nil si no existe.
func (uc *ClienteUseCase) GetByID(id int64) (*dto.ClienteDTO, error) {
	c, err := uc.clientes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := dto.ToClienteDTO(c, uc.nombrePulperia(c.PulperiaID))
	return &out, nil
}

// List lista clientes, filtrables por pulpería.
func (uc *ClienteUseCase) List(pulperiaID *int64) ([]dto.ClienteDTO, error) {
	list, err := uc.clientes.List(pulperiaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToClienteDTO(c, uc.nombrePulperia(c.PulperiaID)))
	}
	return out, nil
}

// Update actualiza el cliente. Si cambió de pulpería se refrescan los
// contadores de la anterior y de la nueva.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, req dto.ClienteRequest) (*dto.ClienteDTO, error) {
	found := false
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		c, err := r.Clientes.GetByID(id)
		if err != nil {
			return err
		}
		if c == nil {
			return nil
		}
		found = true
		pulperiaAnterior := c.PulperiaID

		c.Nombre = req.Nombre
		c.Direccion = req.Direccion
		c.Telefono = req.Telefono
		c.PulperiaID = req.PulperiaID
		c.Latitude = req.Latitude
		c.Longitude = req.Longitude
		c.UsuarioID = req.UsuarioID
		c.Orden = req.Orden
		c.UpdatedAt = time.Now()
		if err := r.Clientes.Update(c); err != nil {
			return err
		}

		for _, pulperiaID := range idsCambiados(pulperiaAnterior, c.PulperiaID) {
			if err := counters.RefreshPulperia(r.Clientes, r.Pulperias, r.Rutas, pulperiaID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return uc.GetByID(id)
}

// Delete elimina el cliente y refresca el contador de su pulpería.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	found := false
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		c, err := r.Clientes.GetByID(id)
		if err != nil {
			return err
		}
		if c == nil {
			return nil
		}
		found = true
		if err := r.Clientes.Delete(id); err != nil {
			return err
		}
		if c.PulperiaID != nil {
			return counters.RefreshPulperia(r.Clientes, r.Pulperias, r.Rutas, *c.PulperiaID)
		}
		return nil
	})
	return found, err
}

func (uc *ClienteUseCase) nombrePulperia(pulperiaID *int64) *string {
	if pulperiaID == nil {
		return nil
	}
	p, err := uc.pulperias.GetByID(*pulperiaID)
	if err != nil || p == nil {
		return nil
	}
	return &p.Nombre
}
