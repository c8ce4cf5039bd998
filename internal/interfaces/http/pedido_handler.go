package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/pedidos"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
)

// PDFGenerator produce el comprobante imprimible de un pedido.
type PDFGenerator interface {
	GeneratePedidoPDF(pedido *dto.PedidoDTO) ([]byte, error)
}

// PedidoHandler maneja las peticiones HTTP para pedidos.
type PedidoHandler struct {
	uc  *pedidos.UseCase
	pdf PDFGenerator
}

func NewPedidoHandler(uc *pedidos.UseCase, pdf PDFGenerator) *PedidoHandler {
	return &PedidoHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        clienteId   query  int  false  "Filtrar por cliente"
// @Param        pulperiaId  query  int  false  "Filtrar por pulpería"
// @Success      200  {object}  dto.DataResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(queryInt64(c, "clienteId"), queryInt64(c, "pulperiaId"))
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener pedidos")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear pedido
// @Description  Inserta el pedido con sus detalles y calcula el total en una
// @Description  sola transacción.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PedidoRequest  true  "Pedido con detalles"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear el pedido")
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *PedidoHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pedido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el pedido")
	}
	if out == nil {
		return respondNotFound(c, "Pedido")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pedido")
	}
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Pedido")
		}
		return respondUseCaseError(c, err, "Error al actualizar el pedido")
	}
	return respondData(c, fiber.StatusOK, out)
}

func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pedido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondNotFound(c, "Pedido")
		}
		return respondUseCaseError(c, err, "Error al eliminar el pedido")
	}
	return respondMessage(c, fiber.StatusOK, "Pedido eliminado exitosamente")
}

// PDF godoc
// @Summary      Comprobante PDF del pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del pedido"
// @Success      200  {file}  binary
// @Router       /api/pedidos/{id}/pdf [get]
func (h *PedidoHandler) PDF(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Pedido")
	}
	pedido, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el pedido")
	}
	if pedido == nil {
		return respondNotFound(c, "Pedido")
	}
	doc, err := h.pdf.GeneratePedidoPDF(pedido)
	if err != nil {
		return respondMessage(c, fiber.StatusInternalServerError, "Error al generar el PDF: "+err.Error())
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=pedido_%d.pdf", id))
	return c.Send(doc)
}
