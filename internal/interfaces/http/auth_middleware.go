package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/joseeliezerr7/AppPandelpueblo/internal/domain/repository"
	"github.com/joseeliezerr7/AppPandelpueblo/pkg/jwt"
)

// Locals keys cargados por el middleware de autenticación.
const (
	LocalUsuarioID = "usuario_id"
	LocalPermiso   = "permiso"
	LocalTokenID   = "token_id"
)

// AuthMiddleware valida el Bearer Token: firma JWT vigente Y jti todavía
// presente en access_tokens. Un token firmado pero revocado (logout, o un
// login posterior) no pasa.
func AuthMiddleware(jwtSecret string, tokens repository.TokenRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No autenticado"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No autenticado"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No autenticado"})
		}

		tokenID, usuarioID, permiso, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token inválido o expirado"})
		}
		vivo, err := tokens.Exists(tokenID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error al validar el token"})
		}
		if !vivo {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token revocado"})
		}

		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalPermiso, permiso)
		c.Locals(LocalTokenID, tokenID)
		return c.Next()
	}
}

// GetUsuarioID devuelve el id del usuario autenticado (0 si no hay sesión).
func GetUsuarioID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUsuarioID).(int64)
	return v
}

// GetPermiso devuelve el permiso del usuario autenticado.
func GetPermiso(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalPermiso).(string)
	return v
}

// GetTokenID devuelve el jti del token presentado.
func GetTokenID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalTokenID).(string)
	return v
}
