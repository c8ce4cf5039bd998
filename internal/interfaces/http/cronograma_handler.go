package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// CronogramaHandler maneja los días de visita planificados por cliente.
type CronogramaHandler struct {
	uc *usecase.CronogramaUseCase
}

func NewCronogramaHandler(uc *usecase.CronogramaUseCase) *CronogramaHandler {
	return &CronogramaHandler{uc: uc}
}

// List godoc
// @Summary      Listar cronogramas de visita
// @Tags         cronogramas
// @Security     Bearer
// @Produce      json
// @Param        clienteId  query  int  false  "Filtrar por cliente"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/cronograma-visitas [get]
func (h *CronogramaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryInt64(c, "clienteId"))
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener cronogramas")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear cronograma de visita
// @Description  Un cliente solo puede tener un cronograma activo por día de
// @Description  la semana; el duplicado responde 409.
// @Tags         cronogramas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CronogramaRequest  true  "Cliente y día"
// @Success      201   {object}  dto.DataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/cronograma-visitas [post]
func (h *CronogramaHandler) Create(c *fiber.Ctx) error {
	var in dto.CronogramaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear el cronograma")
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *CronogramaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cronograma")
	}
	var in dto.CronogramaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar el cronograma")
	}
	if out == nil {
		return respondNotFound(c, "Cronograma")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *CronogramaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cronograma")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar el cronograma")
	}
	if !found {
		return respondNotFound(c, "Cronograma")
	}
	return respondMessage(c, fiber.StatusOK, "Cronograma eliminado exitosamente")
}
