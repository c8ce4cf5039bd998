package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/usecase"
)

// UsuarioHandler maneja la administración de usuarios del sistema.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener usuarios")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.UsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(true); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al crear el usuario")
	}
	return respondData(c, fiber.StatusCreated, out)
}

func (h *UsuarioHandler) Show(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Usuario")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el usuario")
	}
	if out == nil {
		return respondNotFound(c, "Usuario")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Update actualiza al usuario. La contraseña solo cambia si viene en el body.
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Usuario")
	}
	var in dto.UsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(false); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al actualizar el usuario")
	}
	if out == nil {
		return respondNotFound(c, "Usuario")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  Un usuario no puede eliminar su propia cuenta; también revoca
// @Description  todas las sesiones activas del eliminado.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.MessageResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return respondNotFound(c, "Usuario")
	}
	found, err := h.uc.Delete(c.Context(), GetUsuarioID(c), id)
	if err != nil {
		return respondUseCaseError(c, err, "Error al eliminar el usuario")
	}
	if !found {
		return respondNotFound(c, "Usuario")
	}
	return respondMessage(c, fiber.StatusOK, "Usuario eliminado exitosamente")
}
