package entity

import "time"

// Pulperia representa un punto de venta minorista dentro de una ruta.
// CantidadClientes es un contador derivado: cuenta de clientes no borrados
// cuyo pulperia_id apunta a esta pulpería.
type Pulperia struct {
	ID               int64
	Nombre           string
	Direccion        string
	Telefono         string
	RutaID           *int64 // nullable: una pulpería puede no estar asignada a ruta
	Orden            int    // posición dentro de la ruta
	CantidadClientes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}
