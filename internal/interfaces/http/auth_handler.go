package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/auth"
	"github.com/joseeliezerr7/AppPandelpueblo/internal/application/dto"
)

// AuthHandler maneja login, registro, logout y perfil.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al iniciar sesión")
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.UsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if msgs := in.Validate(true); !msgs.Empty() {
		return respondValidation(c, msgs)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondUseCaseError(c, err, "Error al registrar el usuario")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), GetTokenID(c)); err != nil {
		return respondUseCaseError(c, err, "Error al cerrar sesión")
	}
	return respondMessage(c, fiber.StatusOK, "Sesión cerrada exitosamente")
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioDTO
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUsuarioID(c))
	if err != nil {
		return respondUseCaseError(c, err, "Error al obtener el perfil")
	}
	return c.JSON(out)
}
