package dto

import (
	"strings"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// PulperiaRequest body para POST/PUT /api/pulperias.
type PulperiaRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	RutaID    *int64 `json:"rutaId"`
	Orden     *int   `json:"orden"`
}

// Validate valida el body y devuelve los mensajes por campo.
func (r *PulperiaRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if strings.TrimSpace(r.Nombre) == "" {
		msgs.Add("nombre", "El campo nombre es obligatorio.")
	}
	return msgs
}

// PulperiaDTO representación JSON de una pulpería.
type PulperiaDTO struct {
	ID               int64     `json:"id"`
	Nombre           string    `json:"nombre"`
	Direccion        string    `json:"direccion"`
	Telefono         string    `json:"telefono"`
	RutaID           *int64    `json:"rutaId"`
	NombreRuta       *string   `json:"nombreRuta"`
	Orden            int       `json:"orden"`
	CantidadClientes int       `json:"cantidadClientes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToPulperiaDTO convierte la entidad. nombreRuta es null si la pulpería no
// tiene ruta asignada.
func ToPulperiaDTO(p *entity.Pulperia, nombreRuta *string) PulperiaDTO {
	return PulperiaDTO{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Direccion:        p.Direccion,
		Telefono:         p.Telefono,
		RutaID:           p.RutaID,
		NombreRuta:       nombreRuta,
		Orden:            p.Orden,
		CantidadClientes: p.CantidadClientes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
