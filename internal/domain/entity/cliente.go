package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente representa un cliente atendido en una pulpería.
type Cliente struct {
	ID         int64
	Nombre     string
	Direccion  string
	Telefono   string
	PulperiaID *int64 // nullable
	Latitude   *decimal.Decimal
	Longitude  *decimal.Decimal
	UsuarioID  *int64 // vendedor encargado, nullable
	Orden      *int   // posición dentro de la pulpería
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
