package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// VisitaHandler maneja las visitas realizadas a clientes.
type VisitaHandler struct {
	uc *usecase.VisitaUseCase
}

func NewVisitaHandler(uc *usecase.VisitaUseCase) *VisitaHandler {
	return &VisitaHandler{uc: uc}
}

// List godoc
// @Summary      Listar visitas
// @Tags         visitas
// @Security     Bearer
// @Produce      json
// @Param        clienteId    query  int     false  "Filtrar por cliente"
// @Param        fecha_desde  query  string  false  "Fecha mínima (YYYY-MM-DD)"
// @Param        fecha_hasta  query  string  false  "Fecha máxima (YYYY-MM-DD)"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/visitas-clientes [get]
func (h *VisitaHandler) List(c *fiber.Ctx) error {
	desde, ok := queryFecha(c, "fecha_desde")
	if !ok {
		return respondValidation(c, dto.ValidationMessages{
			"fecha_desde": {"El campo fecha_desde no es una fecha válida."},
		})
	}
	hasta, ok := queryFecha(c, "fecha_hasta")
	if !ok {
		return respondValidation(c, dto.ValidationMessages{
			"fecha_hasta": {"El campo fecha_hasta no es una fecha válida."},
		})
	}
	out, err := h.uc.List(queryInt64(c, "clienteId"), desde, hasta)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener visitas")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Registrar visita
// @Tags         visitas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VisitaRequest  true  "Datos de la visita"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/visitas-clientes [post]
func (h *VisitaHandler) Create(c *fiber.Ctx) error {
	var in dto.VisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al registrar la visita")
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *VisitaHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Visita")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener la visita")
	}
	if out == nil {
		return respondNotFound(c, "Visita")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *VisitaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Visita")
	}
	var in dto.VisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar la visita")
	}
	if out == nil {
		return respondNotFound(c, "Visita")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *VisitaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Visita")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar la visita")
	}
	if !found {
		return respondNotFound(c, "Visita")
	}
	return respondMessage(c, fiber.StatusOK, "Visita eliminada exitosamente")
}

// queryFecha lee un query param opcional de fecha. ok es false solo si el
// valor está presente y no parsea.
func queryFecha(c *fiber.Ctx, nombre string) (*time.Time, bool) {
	raw := c.Query(nombre)
	if raw == "" {
		return nil, true
	}
	t, err := dto.ParseFecha(raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
