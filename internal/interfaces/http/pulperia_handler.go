package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// PulperiaHandler maneja las peticiones HTTP para pulperías (protegido).
type PulperiaHandler struct {
	uc *usecase.PulperiaUseCase
}

// NewPulperiaHandler construye el handler.
func NewPulperiaHandler(uc *usecase.PulperiaUseCase) *PulperiaHandler {
	return &PulperiaHandler{uc: uc}
}

// List godoc
// @Summary      Listar pulperías
// @Tags         pulperias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/pulperias [get]
func (h *PulperiaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener pulperías")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear pulpería
// @Tags         pulperias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PulperiaRequest  true  "Datos de la pulpería"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/pulperias [post]
func (h *PulperiaHandler) Create(c *fiber.Ctx) error {
	var in dto.PulperiaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear la pulpería")
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Show obtiene una pulpería.
func (h *PulperiaHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pulpería")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener la pulpería")
	}
	if out == nil {
		return respondNotFound(c, "Pulpería")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update actualiza la pulpería y refresca los contadores de las rutas
// afectadas.
func (h *PulperiaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pulpería")
	}
	var in dto.PulperiaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar la pulpería")
	}
	if out == nil {
		return respondNotFound(c, "Pulpería")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete elimina la pulpería.
func (h *PulperiaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pulpería")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar la pulpería")
	}
	if !found {
		return respondNotFound(c, "Pulpería")
	}
	return respondMessage(c, fiber.StatusOK, "Pulpería eliminada exitosamente")
}
