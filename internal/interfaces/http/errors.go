package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

const (
	msgInternal           = "Ocurrió un error"
	msgInvalidCredentials = "User not found"
)

// writeError traduce un error de dominio a la respuesta HTTP. Los errores no tipados
// se registran completos y el cliente solo recibe un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if ok, werr := writeDomainError(c, err); ok {
		return werr
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).SendString(msgInternal)
}

// writeDomainError escribe la respuesta de los errores conocidos del dominio.
// Devuelve false si err no pertenece a la taxonomía.
func writeDomainError(c *fiber.Ctx, err error) (bool, error) {
	var (
		verr     *domain.ValidationError
		notFound *domain.NotFoundError
		conflict *domain.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		return true, c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errores: verr.Fields})
	case errors.As(err, &notFound):
		return true, c.Status(fiber.StatusBadRequest).SendString(notFound.Error())
	case errors.As(err, &conflict):
		return true, c.Status(fiber.StatusBadRequest).SendString(conflict.Message)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return true, c.Status(fiber.StatusBadRequest).SendString(msgInvalidCredentials)
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
		return true, c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Mensaje: msgUnauthorized})
	}
	return false, nil
}

// ErrorHandler es el manejador de errores de la app Fiber: los *fiber.Error conservan su
// código (404 de ruta, 405, ...) y el resto pasa por el mismo mapeo que los handlers,
// incluidos los pánicos recuperados por el middleware recover.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).SendString(fe.Message)
		}
		return writeError(c, log, err)
	}
}

// parseBody decodifica el JSON del cuerpo. Un cuerpo ilegible se reporta como error de campo "body".
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &domain.ValidationError{Fields: []domain.FieldError{{
			Type: "body", Msg: "invalid.body", Path: "", Location: "body",
		}}}
	}
	return nil
}
