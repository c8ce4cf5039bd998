package dto

import (
	"strings"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// Días válidos para cronogramas de visita.
var diasSemana = map[string]bool{
	"lunes": true, "martes": true, "miercoles": true, "miércoles": true,
	"jueves": true, "viernes": true, "sabado": true, "sábado": true,
	"domingo": true,
}

// CronogramaRequest body para POST/PUT /api/cronograma-visitas.
// dia_semana conserva el nombre histórico de la columna.
type CronogramaRequest struct {
	ClienteID int64  `json:"clienteId"`
	DiaSemana string `json:"dia_semana"`
	Orden     *int   `json:"orden"`
	Activo    *bool  `json:"activo"`
}

func (r *CronogramaRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if r.ClienteID <= 0 {
		msgs.Add("clienteId", "El campo clienteId es obligatorio.")
	}
	dia := strings.ToLower(strings.TrimSpace(r.DiaSemana))
	if dia == "" {
		msgs.Add("dia_semana", "El campo dia_semana es obligatorio.")
	} else if !diasSemana[dia] {
		msgs.Add("dia_semana", "El campo dia_semana no es un día válido.")
	}
	return msgs
}

// CronogramaDTO representación JSON de un cronograma de visita.
type CronogramaDTO struct {
	ID        int64     `json:"id"`
	ClienteID int64     `json:"clienteId"`
	DiaSemana string    `json:"dia_semana"`
	Orden     *int      `json:"orden"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCronogramaDTO(c *entity.CronogramaVisita) CronogramaDTO {
	return CronogramaDTO{
		ID:        c.ID,
		ClienteID: c.ClienteID,
		DiaSemana: c.DiaSemana,
		Orden:     c.Orden,
		Activo:    c.Activo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// VisitaRequest body para POST/PUT /api/visitas-clientes.
type VisitaRequest struct {
	ClienteID int64  `json:"clienteId"`
	Fecha     string `json:"fecha"`
	Realizada *bool  `json:"realizada"`
	Notas     string `json:"notas"`
}

func (r *VisitaRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if r.ClienteID <= 0 {
		msgs.Add("clienteId", "El campo clienteId es obligatorio.")
	}
	if r.Fecha == "" {
		msgs.Add("fecha", "El campo fecha es obligatorio.")
	} else if _, err := ParseFecha(r.Fecha); err != nil {
		msgs.Add("fecha", "El campo fecha no es una fecha válida.")
	}
	return msgs
}

// VisitaDTO representación JSON de una visita registrada.
type VisitaDTO struct {
	ID        int64     `json:"id"`
	ClienteID int64     `json:"clienteId"`
	Fecha     string    `json:"fecha"`
	Realizada bool      `json:"realizada"`
	Notas     string    `json:"notas"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToVisitaDTO(v *entity.VisitaCliente) VisitaDTO {
	return VisitaDTO{
		ID:        v.ID,
		ClienteID: v.ClienteID,
		Fecha:     FormatFecha(v.Fecha),
		Realizada: v.Realizada,
		Notas:     v.Notas,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
