package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// CronogramaUseCase casos de uso para el cronograma de visitas. El cliente
// debe existir y la pareja (cliente, día) es única.
type CronogramaUseCase struct {
	cronogramas repository.CronogramaRepository
	clientes    repository.ClienteRepository
}

// NewCronogramaUseCase construye el caso de uso.
func NewCronogramaUseCase(cronogramas repository.CronogramaRepository, clientes repository.ClienteRepository) *CronogramaUseCase {
	return &CronogramaUseCase{cronogramas: cronogramas, clientes: clientes}
}

// Create crea un día de visita. Devuelve domain.ErrDuplicate si el cliente ya
// tiene ese día, domain.ErrInvalidInput si el cliente no existe.
func (uc *CronogramaUseCase) Create(_ context.Context, req dto.CronogramaRequest) (*dto.CronogramaDTO, error) {
	cliente, err := uc.clientes.GetByID(req.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	c := &entity.CronogramaVisita{
		ClienteID: req.ClienteID,
		DiaSemana: strings.ToLower(strings.TrimSpace(req.DiaSemana)),
		Orden:     req.Orden,
		Activo:    activo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.cronogramas.Create(c); err != nil {
		return nil, err
	}
	out := dto.ToCronogramaDTO(c)
	return &out, nil
}

// List lista cronogramas, filtrables por cliente, ordenados por día.
func (uc *CronogramaUseCase) List(clienteID *int64) ([]dto.CronogramaDTO, error) {
	list, err := uc.cronogramas.List(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CronogramaDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCronogramaDTO(c))
	}
	return out, nil
}

// Update actualiza día, orden y activo. Cambiar el día a uno que el cliente
// ya tiene devuelve domain.ErrDuplicate.
func (uc *CronogramaUseCase) Update(_ context.Context, id int64, req dto.CronogramaRequest) (*dto.CronogramaDTO, error) {
	c, err := uc.cronogramas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if req.DiaSemana != "" {
		c.DiaSemana = strings.ToLower(strings.TrimSpace(req.DiaSemana))
	}
	c.Orden = req.Orden
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	c.UpdatedAt = time.Now()
	if err := uc.cronogramas.Update(c); err != nil {
		return nil, err
	}
	out := dto.ToCronogramaDTO(c)
	return &out, nil
}

// Delete elimina el cronograma.
func (uc *CronogramaUseCase) Delete(_ context.Context, id int64) (bool, error) {
	c, err := uc.cronogramas.GetByID(id)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}
	return true, uc.cronogramas.Delete(id)
}

// VisitaUseCase casos de uso para visitas registradas a clientes.
type VisitaUseCase struct {
	visitas  repository.VisitaRepository
	clientes repository.ClienteRepository
}

// NewVisitaUseCase construye el caso de uso.
func NewVisitaUseCase(visitas repository.VisitaRepository, clientes repository.ClienteRepository) *VisitaUseCase {
	return &VisitaUseCase{visitas: visitas, clientes: clientes}
}

// Create registra una visita. El cliente debe existir.
func (uc *VisitaUseCase) Create(_ context.Context, req dto.VisitaRequest) (*dto.VisitaDTO, error) {
	cliente, err := uc.clientes.GetByID(req.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	realizada := false
	if req.Realizada != nil {
		realizada = *req.Realizada
	}
	v := &entity.VisitaCliente{
		ClienteID: req.ClienteID,
		Fecha:     fecha,
		Realizada: realizada,
		Notas:     req.Notas,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.visitas.Create(v); err != nil {
		return nil, err
	}
	out := dto.ToVisitaDTO(v)
	return &out, nil
}

// GetByID devuelve la visita o nil si no existe.
func (uc *VisitaUseCase) GetByID(id int64) (*dto.VisitaDTO, error) {
	v, err := uc.visitas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	out := dto.ToVisitaDTO(v)
	return &out, nil
}

// List lista visitas filtrables por cliente y rango de fechas.
func (uc *VisitaUseCase) List(clienteID *int64, desde, hasta *time.Time) ([]dto.VisitaDTO, error) {
	list, err := uc.visitas.List(clienteID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VisitaDTO, 0, len(list))
	for _, v := range list {
		out = append(out, dto.ToVisitaDTO(v))
	}
	return out, nil
}

// Update actualiza fecha, realizada y notas.
func (uc *VisitaUseCase) Update(_ context.Context, id int64, req dto.VisitaRequest) (*dto.VisitaDTO, error) {
	v, err := uc.visitas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if req.Fecha != "" {
		fecha, err := dto.ParseFecha(req.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		v.Fecha = fecha
	}
	if req.Realizada != nil {
		v.Realizada = *req.Realizada
	}
	v.Notas = req.Notas
	v.UpdatedAt = time.Now()
	if err := uc.visitas.Update(v); err != nil {
		return nil, err
	}
	out := dto.ToVisitaDTO(v)
	return &out, nil
}

// Delete elimina la visita.
func (uc *VisitaUseCase) Delete(_ context.Context, id int64) (bool, error) {
	v, err := uc.visitas.GetByID(id)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, nil
	}
	return true, uc.visitas.Delete(id)
}
