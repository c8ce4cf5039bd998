package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
)

// ProductoRequest body para POST/PUT /api/productos.
// Los precios llegan como número o string; decimal.Decimal acepta ambos.
type ProductoRequest struct {
	Nombre       string          `json:"nombre"`
	PrecioCompra decimal.Decimal `json:"precioCompra"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	Cantidad     int             `json:"cantidad"`
	CategoriaID  int64           `json:"categoriaId"`
}

func (r *ProductoRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if strings.TrimSpace(r.Nombre) == "" {
		msgs.Add("nombre", "El campo nombre es obligatorio.")
	}
	if r.PrecioCompra.IsNegative() {
		msgs.Add("precioCompra", "El precio de compra no puede ser negativo.")
	}
	if r.PrecioVenta.IsNegative() {
		msgs.Add("precioVenta", "El precio de venta no puede ser negativo.")
	}
	if r.Cantidad < 0 {
		msgs.Add("cantidad", "La cantidad no puede ser negativa.")
	}
	if r.CategoriaID <= 0 {
		msgs.Add("categoriaId", "El campo categoriaId es obligatorio.")
	}
	return msgs
}

// StockRequest body para PUT/PATCH /api/productos/:id/stock.
type StockRequest struct {
	Cantidad int `json:"cantidad"`
}

func (r *StockRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	if r.Cantidad < 0 {
		msgs.Add("cantidad", "La cantidad no puede ser negativa.")
	}
	return msgs
}

// ProductoDTO representación JSON de un producto. Los precios se serializan
// con dos decimales fijos.
type ProductoDTO struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	PrecioCompra    string    `json:"precioCompra"`
	PrecioVenta     string    `json:"precioVenta"`
	Cantidad        int       `json:"cantidad"`
	CategoriaID     int64     `json:"categoriaId"`
	NombreCategoria *string   `json:"nombreCategoria"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToProductoDTO(p *entity.Producto, nombreCategoria *string) ProductoDTO {
	return ProductoDTO{
		ID:              p.ID,
		Nombre:          p.Nombre,
		PrecioCompra:    p.PrecioCompra.StringFixed(2),
		PrecioVenta:     p.PrecioVenta.StringFixed(2),
		Cantidad:        p.Cantidad,
		CategoriaID:     p.CategoriaID,
		NombreCategoria: nombreCategoria,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
