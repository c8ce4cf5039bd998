package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// CategoriaHandler maneja las peticiones HTTP para categorías de producto.
type CategoriaHandler struct {
	uc        *usecase.CategoriaUseCase
	productos *usecase.ProductoUseCase
}

func NewCategoriaHandler(uc *usecase.CategoriaUseCase, productos *usecase.ProductoUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc, productos: productos}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener categorías")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear la categoría")
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *CategoriaHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Categoría")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener la categoría")
	}
	if out == nil {
		return respondNotFound(c, "Categoría")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Categoría")
	}
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar la categoría")
	}
	if out == nil {
		return respondNotFound(c, "Categoría")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Categoría")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar la categoría")
	}
	if !found {
		return respondNotFound(c, "Categoría")
	}
	return respondMessage(c, fiber.StatusOK, "Categoría eliminada exitosamente")
}

// Productos devuelve los productos de la categoría.
func (h *CategoriaHandler) Productos(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Categoría")
	}
	categoria, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener la categoría")
	}
	if categoria == nil {
		return respondNotFound(c, "Categoría")
	}
	out, err := h.productos.ListByCategoria(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener productos de la categoría")
	}
	return respondData(c, fiber.StatusOK, out)
}
