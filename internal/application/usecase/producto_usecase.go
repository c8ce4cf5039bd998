package usecase

import (
	"context"
	"time"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/entity"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. La referencia a categoría
// sí se valida contra la base: a diferencia de los pedidos, aquí la
// integridad se exige.
type ProductoUseCase struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productos repository.ProductoRepository, categorias repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{productos: productos, categorias: categorias}
}

// Create crea un producto. La categoría debe existir.
func (uc *ProductoUseCase) Create(_ context.Context, req dto.ProductoRequest) (*dto.ProductoDTO, error) {
	categoria, err := uc.categorias.GetByID(req.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		Nombre:       req.Nombre,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		Cantidad:     req.Cantidad,
		CategoriaID:  req.CategoriaID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productos.Create(p); err != nil {
		return nil, err
	}
	out := dto.ToProductoDTO(p, &categoria.Nombre)
	return &out, nil
}

// GetByID devuelve el producto hidratado o nil si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoDTO, error) {
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := dto.ToProductoDTO(p, uc.nombreCategoria(p.CategoriaID))
	return &out, nil
}

// List lista todos los productos.
func (uc *ProductoUseCase) List() ([]dto.ProductoDTO, error) {
	list, err := uc.productos.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductoDTO(p, uc.nombreCategoria(p.CategoriaID)))
	}
	return out, nil
}

// ListByCategoria lista los productos de una categoría.
func (uc *ProductoUseCase) ListByCategoria(categoriaID int64) ([]dto.ProductoDTO, error) {
	categoria, err := uc.categorias.GetByID(categoriaID)
	if err != nil || categoria == nil {
		return nil, err
	}
	list, err := uc.productos.ListByCategoria(categoriaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductoDTO(p, &categoria.Nombre))
	}
	return out, nil
}

// Update actualiza un producto. La categoría debe existir.
func (uc *ProductoUseCase) Update(_ context.Context, id int64, req dto.ProductoRequest) (*dto.ProductoDTO, error) {
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	categoria, err := uc.categorias.GetByID(req.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrInvalidInput
	}
	p.Nombre = req.Nombre
	p.PrecioCompra = req.PrecioCompra
	p.PrecioVenta = req.PrecioVenta
	p.Cantidad = req.Cantidad
	p.CategoriaID = req.CategoriaID
	p.UpdatedAt = time.Now()
	if err := uc.productos.Update(p); err != nil {
		return nil, err
	}
	out := dto.ToProductoDTO(p, &categoria.Nombre)
	return &out, nil
}

// UpdateStock actualiza solo las existencias del producto.
func (uc *ProductoUseCase) UpdateStock(_ context.Context, id int64, cantidad int) (*dto.ProductoDTO, error) {
	if cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if err := uc.productos.UpdateStock(id, cantidad); err != nil {
		return nil, err
	}
	p.Cantidad = cantidad
	out := dto.ToProductoDTO(p, uc.nombreCategoria(p.CategoriaID))
	return &out, nil
}

// Delete elimina el producto. Los detalles de pedido que lo referencian
// conservan su productoId y su precio capturado.
func (uc *ProductoUseCase) Delete(_ context.Context, id int64) (bool, error) {
	p, err := uc.productos.GetByID(id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	return true, uc.productos.Delete(id)
}

func (uc *ProductoUseCase) nombreCategoria(id int64) *string {
	c, err := uc.categorias.GetByID(id)
	if err != nil || c == nil {
		return nil
	}
	return &c.Nombre
}
