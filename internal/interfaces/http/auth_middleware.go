package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/jwt"
)

// LocalAuthUser key del usuario autenticado en c.Locals.
const LocalAuthUser = "auth_user"

// AuthMiddleware valida el Bearer Token JWT y carga el usuario desde la DB en
// cada request: un token de un usuario eliminado deja de servir de inmediato.
// Toda falla responde 401 sin distinguir causas más allá de los mensajes
// pactados, y cualquier error inesperado de lookup cierra el paso (nunca
// fail-open).
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access token required"})
		}
		userID, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Invalid or expired token"})
		}
		user, err := users.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Authentication failed"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "User not found"})
		}
		c.Locals(LocalAuthUser, user)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a usuarios con rol admin (después de AuthMiddleware).
// Predicado puro: no toca la DB ni muta estado.
func RequireAdmin(c *fiber.Ctx) error {
	user := GetAuthUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Authentication failed"})
	}
	if user.Role != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Admin access required"})
	}
	return c.Next()
}

// GetAuthUser devuelve el usuario autenticado del contexto (después del middleware).
func GetAuthUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalAuthUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado, o cadena vacía.
func GetUserID(c *fiber.Ctx) string {
	if u := GetAuthUser(c); u != nil {
		return u.ID
	}
	return ""
}
