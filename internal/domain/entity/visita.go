package entity

import "time"

// CronogramaVisita representa un día de visita planificado para un cliente.
// La pareja (ClienteID, DiaSemana) es única: un cliente no puede tener el
// mismo día repetido.
type CronogramaVisita struct {
	ID        int64
	ClienteID int64
	DiaSemana string // lunes, martes, miércoles, ...
	Orden     *int
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// VisitaCliente representa una visita registrada a un cliente.
type VisitaCliente struct {
	ID        int64
	ClienteID int64
	Fecha     time.Time
	Realizada bool
	Notas     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
