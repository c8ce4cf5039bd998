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

// PulperiaUseCase casos de uso CRUD para pulperías. Toda escritura que cambia
// la pertenencia a una ruta corre en transacción junto con el recálculo de los
// contadores de la ruta afectada (o de las dos, si la pulpería cambió de ruta).
type PulperiaUseCase struct {
	tx        ports.TxRunner
	pulperias repository.PulperiaRepository
	rutas     repository.RutaRepository
}

// NewPulperiaUseCase construye el caso de uso.
func NewPulperiaUseCase(tx ports.TxRunner, pulperias repository.PulperiaRepository, rutas repository.RutaRepository) *PulperiaUseCase {
	return &PulperiaUseCase{tx: tx, pulperias: pulperias, rutas: rutas}
}

// Create crea la pulpería y refresca los contadores de su ruta.
func (uc *PulperiaUseCase) Create(ctx context.Context, req dto.PulperiaRequest) (*dto.PulperiaDTO, error) {
	var id int64
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		now := time.Now()
		orden := 0
		if req.Orden != nil {
			orden = *req.Orden
		}
		p := &entity.Pulperia{
			Nombre:    req.Nombre,
			Direccion: req.Direccion,
			Telefono:  req.Telefono,
			RutaID:    req.RutaID,
			Orden:     orden,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Pulperias.Create(p); err != nil {
			return err
		}
		id = p.ID
		if p.RutaID != nil {
			return counters.RefreshRuta(r.Pulperias, r.Rutas, *p.RutaID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// GetByID devuelve la pulpería hidratada o nil si no existe.
func (uc *PulperiaUseCase) GetByID(id int64) (*dto.PulperiaDTO, error) {
	p, err := uc.pulperias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := dto.ToPulperiaDTO(p, uc.nombreRuta(p.RutaID))
	return &out, nil
}

// List lista todas las pulperías.
func (uc *PulperiaUseCase) List() ([]dto.PulperiaDTO, error) {
	list, err := uc.pulperias.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PulperiaDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPulperiaDTO(p, uc.nombreRuta(p.RutaID)))
	}
	return out, nil
}

// Update actualiza la pulpería. Si cambió de ruta se refrescan los contadores
// de la ruta anterior y de la nueva.
func (uc *PulperiaUseCase) Update(ctx context.Context, id int64, req dto.PulperiaRequest) (*dto.PulperiaDTO, error) {
	found := false
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		p, err := r.Pulperias.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		found = true
		rutaAnterior := p.RutaID

		p.Nombre = req.Nombre
		p.Direccion = req.Direccion
		p.Telefono = req.Telefono
		p.RutaID = req.RutaID
		if req.Orden != nil {
			p.Orden = *req.Orden
		}
		p.UpdatedAt = time.Now()
		if err := r.Pulperias.Update(p); err != nil {
			return err
		}

		for _, rutaID := range idsCambiados(rutaAnterior, p.RutaID) {
			if err := counters.RefreshRuta(r.Pulperias, r.Rutas, rutaID); err != nil {
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

// Delete elimina la pulpería y refresca los contadores de su ruta.
func (uc *PulperiaUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	found := false
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		p, err := r.Pulperias.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		found = true
		if err := r.Pulperias.Delete(id); err != nil {
			return err
		}
		if p.RutaID != nil {
			return counters.RefreshRuta(r.Pulperias, r.Rutas, *p.RutaID)
		}
		return nil
	})
	return found, err
}

func (uc *PulperiaUseCase) nombreRuta(rutaID *int64) *string {
	if rutaID == nil {
		return nil
	}
	r, err := uc.rutas.GetByID(*rutaID)
	if err != nil || r == nil {
		return nil
	}
	return &r.Nombre
}

// idsCambiados devuelve los ids distintos entre el valor anterior y
// el nuevo, sin repetir.
func idsCambiados(anterior, nuevo *int64) []int64 {
	var out []int64
	if anterior != nil {
		out = append(out, *anterior)
	}
	if nuevo != nil && (anterior == nil || *nuevo != *anterior) {
		out = append(out, *nuevo)
	}
	return out
}
