package dto

import (
	"strings"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// RutaRequest body para POST/PUT /api/rutas.
type RutaRequest struct {
	Nombre string `json:"nombre"`
}

// Validate valida el body y devuelve los mensajes por campo.
func (r *RutaRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if strings.TrimSpace(r.Nombre) == "" {
		msgs.Add("nombre", "El campo nombre es obligatorio.")
	}
	return msgs
}

// RutaDTO representación JSON de una ruta.
type RutaDTO struct {
	ID                int64     `json:"id"`
	Nombre            string    `json:"nombre"`
	CantidadPulperias int       `json:"cantidadPulperias"`
	CantidadClientes  int       `json:"cantidadClientes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToRutaDTO convierte la entidad a su representación JSON.
func ToRutaDTO(r *entity.Ruta) RutaDTO {
	return RutaDTO{
		ID:                r.ID,
		Nombre:            r.Nombre,
		CantidadPulperias: r.CantidadPulperias,
		CantidadClientes:  r.CantidadClientes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// ToRutaDTOs convierte un listado.
func ToRutaDTOs(rutas []*entity.Ruta) []RutaDTO {
	out := make([]RutaDTO, 0, len(rutas))
	for _, r := range rutas {
		out = append(out, ToRutaDTO(r))
	}
	return out
}
