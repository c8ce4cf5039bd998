package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain"
)

// respondData envuelve el recurso en {data}.
func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.DataResponse{Data: data})
}

// respondMessage responde {message}.
func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.MessageResponse{Message: message})
}

// respondValidation responde 422 con los mensajes por campo.
func respondValidation(c *fiber.Ctx, msgs dto.ValidationMessages) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
		Error:    "Datos de validación incorrectos",
		Messages: msgs,
	})
}

// respondNotFound responde 404.
func respondNotFound(c *fiber.Ctx, recurso string) error {
	return respondMessage(c, fiber.StatusNotFound, recurso+" no encontrado")
}

// respondUseCaseError traduce errores de dominio a HTTP. contexto encabeza el
// mensaje de error del 500 ("Error al crear el pedido: ...").
func respondUseCaseError(c *fiber.Ctx, err error, contexto string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respondMessage(c, fiber.StatusNotFound, "Recurso no encontrado")
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error:   "Registro duplicado",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondValidation(c, dto.ValidationMessages{
			"correoElectronico": {"El correo electrónico ya está registrado."},
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error:   "Datos de validación incorrectos",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		return respondMessage(c, fiber.StatusForbidden, "No puedes eliminar tu propia cuenta")
	case errors.Is(err, domain.ErrUnauthorized):
		return respondValidation(c, dto.ValidationMessages{
			"correoElectronico": {"Las credenciales proporcionadas son incorrectas."},
		})
	default:
		return respondMessage(c, fiber.StatusInternalServerError, contexto+": "+err.Error())
	}
}

// parseIDParam lee :id como entero positivo.
func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// queryInt64 lee un query param opcional como *int64.
func queryInt64(c *fiber.Ctx, nombre string) *int64 {
	if c.Query(nombre) == "" {
		return nil
	}
	v := int64(c.QueryInt(nombre))
	return &v
}
