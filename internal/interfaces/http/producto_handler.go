package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP para productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener productos")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear el producto")
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *ProductoHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Producto")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el producto")
	}
	if out == nil {
		return respondNotFound(c, "Producto")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Producto")
	}
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar el producto")
	}
	if out == nil {
		return respondNotFound(c, "Producto")
	}
	return respondData(c, fiber.StatusOK, out)
}

// UpdateStock godoc
// @Summary      Actualizar existencias
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID del producto"
// @Param        body  body  dto.StockRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.DataResponse
// @Router       /api/productos/{id}/stock [put]
func (h *ProductoHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Producto")
	}
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.UpdateStock(c.Context(), id, in.Cantidad)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar existencias")
	}
	if out == nil {
		return respondNotFound(c, "Producto")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Producto")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar el producto")
	}
	if !found {
		return respondNotFound(c, "Producto")
	}
	return respondMessage(c, fiber.StatusOK, "Producto eliminado exitosamente")
}
