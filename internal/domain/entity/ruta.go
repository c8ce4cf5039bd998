package entity

import "time"

// Ruta representa una ruta de venta. CantidadPulperias y CantidadClientes son
// contadores derivados: se recalculan completos desde las pulperías de la ruta
// cada vez que una pulpería o un cliente cambia, nunca con aritmética incremental.
type Ruta struct {
	ID                int64
	Nombre            string
	CantidadPulperias int
	CantidadClientes  int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}
