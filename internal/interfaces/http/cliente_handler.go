package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/pedidos"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP para clientes, incluidos los
// sub-recursos /clientes/:id/cronogramas, /visitas y /pedidos.
type ClienteHandler struct {
	uc          *usecase.ClienteUseCase
	cronogramas *usecase.CronogramaUseCase
	visitas     *usecase.VisitaUseCase
	pedidos     *pedidos.UseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, cronogramas *usecase.CronogramaUseCase, visitas *usecase.VisitaUseCase, pedidosUC *pedidos.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc, cronogramas: cronogramas, visitas: visitas, pedidos: pedidosUC}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        pulperiaId  query  int  false  "Filtrar por pulpería"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryInt64(c, "pulperiaId"))
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener clientes")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear el cliente")
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Show obtiene un cliente.
func (h *ClienteHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cliente")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el cliente")
	}
	if out == nil {
		return respondNotFound(c, "Cliente")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update actualiza el cliente y refresca los contadores de las pulperías
// afectadas.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cliente")
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar el cliente")
	}
	if out == nil {
		return respondNotFound(c, "Cliente")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete elimina el cliente.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cliente")
	}
	found, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar el cliente")
	}
	if !found {
		return respondNotFound(c, "Cliente")
	}
	return respondMessage(c, fiber.StatusOK, "Cliente eliminado exitosamente")
}

// Cronogramas devuelve los días de visita planificados del cliente.
func (h *ClienteHandler) Cronogramas(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cliente")
	}
	cliente, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el cliente")
	}
	if cliente == nil {
		return respondNotFound(c, "Cliente")
	}
	out, err := h.cronogramas.List(&id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener cronogramas del cliente")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Visitas devuelve las visitas registradas del cliente.
func (h *ClienteHandler) Visitas(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cliente")
	}
	cliente, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el cliente")
	}
	if cliente == nil {
		return respondNotFound(c, "Cliente")
	}
	out, err := h.visitas.List(&id, nil, nil)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener visitas del cliente")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Pedidos devuelve los pedidos del cliente.
func (h *ClienteHandler) Pedidos(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Cliente")
	}
	cliente, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el cliente")
	}
	if cliente == nil {
		return respondNotFound(c, "Cliente")
	}
	out, err := h.pedidos.List(&id, nil)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener pedidos del cliente")
	}
	return respondData(c, fiber.StatusOK, out)
}
