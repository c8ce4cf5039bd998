package entity

import "time"

// Categoria representa una categoría de productos.
type Categoria struct {
	ID        int64
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
