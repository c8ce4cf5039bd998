package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// ClienteRequest body para POST/PUT /api/clientes.
type ClienteRequest struct {
	Nombre     string           `json:"nombre"`
	Direccion  string           `json:"direccion"`
	Telefono   string           `json:"telefono"`
	PulperiaID *int64           `json:"pulperiaId"`
	Latitude   *decimal.Decimal `json:"latitude"`
	Longitude  *decimal.Decimal `json:"longitude"`
	UsuarioID  *int64           `json:"usuarioId"`
	Orden      *int             `json:"orden"`
}

// Validate valida el body y devuelve los mensajes por campo.
func (r *ClienteRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if strings.TrimSpace(r.Nombre) == "" {
		msgs.Add("nombre", "El campo nombre es obligatorio.")
	}
	if strings.TrimSpace(r.Direccion) == "" {
		msgs.Add("direccion", "El campo direccion es obligatorio.")
	}
	if strings.TrimSpace(r.Telefono) == "" {
		msgs.Add("telefono", "El campo telefono es obligatorio.")
	}
	return msgs
}

// ClienteDTO representación JSON de un cliente.
type ClienteDTO struct {
	ID             int64            `json:"id"`
	Nombre         string           `json:"nombre"`
	Direccion      string           `json:"direccion"`
	Telefono       string           `json:"telefono"`
	PulperiaID     *int64           `json:"pulperiaId"`
	NombrePulperia *string          `json:"nombrePulperia"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`
	UsuarioID      *int64           `json:"usuarioId"`
	Orden          *int             `json:"orden"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToClienteDTO convierte la entidad. nombrePulperia es null si el cliente no
// tiene pulpería o si la referenciada ya no existe.
func ToClienteDTO(c *entity.Cliente, nombrePulperia *string) ClienteDTO {
	return ClienteDTO{
		ID:             c.ID,
		Nombre:         c.Nombre,
		Direccion:      c.Direccion,
		Telefono:       c.Telefono,
		PulperiaID:     c.PulperiaID,
		NombrePulperia: nombrePulperia,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		UsuarioID:      c.UsuarioID,
		Orden:          c.Orden,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
