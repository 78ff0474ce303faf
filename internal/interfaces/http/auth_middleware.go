package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/ports"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Mensajes del gate de acceso; los clientes existentes los comparan literalmente.
const (
	msgUnauthorized = "Error unauthorized"
	msgInvalidToken = "Error de autorización: token no válido"
)

// RequireAuth valida el token del header Authorization y carga UserID y Role en c.Locals.
// El header lleva el token en crudo; un prefijo "Bearer " se acepta y se descarta.
// Los tokens rechazados se registran en debug sin incluir el token.
func RequireAuth(verifier ports.TokenVerifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if len(token) >= 7 && strings.EqualFold(token[:7], "Bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		if token == "" {
			return writeError(c, log, domain.ErrUnauthenticated)
		}
		sub, err := verifier.Verify(token)
		if err != nil {
			log.Debug().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("token rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Mensaje: msgInvalidToken})
		}
		c.Locals(LocalUserID, sub.UserID)
		c.Locals(LocalRole, sub.Role)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que permite el acceso solo si el rol del token
// está entre allowedRoles. Debe usarse DESPUÉS de RequireAuth.
// El rechazo responde 401, igual que un token ausente.
func RequireRole(allowedRoles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[GetRole(c)]; !ok {
			_, err := writeDomainError(c, domain.ErrForbidden)
			return err
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después de RequireAuth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después de RequireAuth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
