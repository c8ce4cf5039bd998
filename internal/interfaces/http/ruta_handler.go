package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// RutaHandler maneja las peticiones HTTP para rutas (protegido).
type RutaHandler struct {
	uc *usecase.RutaUseCase
}

// NewRutaHandler construye el handler.
func NewRutaHandler(uc *usecase.RutaUseCase) *RutaHandler {
	return &RutaHandler{uc: uc}
}

// List godoc
// @Summary      Listar rutas
// @Tags         rutas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/rutas [get]
func (h *RutaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener rutas")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear ruta
// @Tags         rutas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RutaRequest  true  "Datos de la ruta"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/rutas [post]
func (h *RutaHandler) Create(c *fiber.Ctx) error {
	var in dto.RutaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear la ruta")
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Show godoc
// @Summary      Obtener ruta
// @Tags         rutas
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la ruta"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/rutas/{id} [get]
func (h *RutaHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Ruta")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener la ruta")
	}
	if out == nil {
		return respondNotFound(c, "Ruta")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update actualiza la ruta.
func (h *RutaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Ruta")
	}
	var in dto.RutaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar la ruta")
	}
	if out == nil {
		return respondNotFound(c, "Ruta")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete elimina la ruta.
func (h *RutaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Ruta")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar la ruta")
	}
	if !found {
		return respondNotFound(c, "Ruta")
	}
	return respondMessage(c, fiber.StatusOK, "Ruta eliminada exitosamente")
}

// Pulperias devuelve las pulperías de la ruta.
func (h *RutaHandler) Pulperias(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Ruta")
	}
	out, err := h.uc.Pulperias(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener pulperías de la ruta")
	}
	if out == nil {
		return respondNotFound(c, "Ruta")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Clientes devuelve los clientes de todas las pulperías de la ruta.
func (h *RutaHandler) Clientes(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Ruta")
	}
	out, err := h.uc.Clientes(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener clientes de la ruta")
	}
	if out == nil {
		return respondNotFound(c, "Ruta")
	}
	return respondData(c, fiber.StatusOK, out)
}
