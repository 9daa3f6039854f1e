package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// validationError responde 400 con la lista de errores de campo.
func validationError(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "Validation error",
		Errors:  errs,
	})
}

// invalidBody responde 400 cuando el cuerpo no se pudo parsear.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: "Invalid request body",
	})
}

// notFound responde 404. El mismo cuerpo cubre recurso inexistente y recurso
// ajeno: la existencia nunca se revela a quien no es dueño.
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code:    "NOT_FOUND",
		Message: message,
	})
}

// internalError loguea el detalle del lado del servidor y responde 500 genérico:
// el cliente nunca ve stack traces ni mensajes internos.
func internalError(c *fiber.Ctx, err error, where string) error {
	log.Error().Err(err).Str("handler", where).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Internal server error",
	})
}
