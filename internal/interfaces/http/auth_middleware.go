package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/componentes-api/internal/application/dto"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/access"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// Locals keys para la sesión en Fiber.
const (
	LocalSubjectID = "subject_id"
	LocalRole      = "role"
)

// AuthMiddleware valida la sesión (Bearer Token o cookie) y deja SubjectID y Role en c.Locals.
// El token del header tiene prioridad sobre la cookie.
func AuthMiddleware(sessions SessionVerifier, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := sessionToken(c, cookieName)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		sess, err := sessions.Verify(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrBackend) {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubjectID, sess.SubjectID)
		c.Locals(LocalRole, sess.Role)
		return c.Next()
	}
}

// RequireRole autoriza la ruta solo al rol indicado (igualdad exacta, sin jerarquía).
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(required entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no tiene rol"})
		}
		if !access.Authorize(role, required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}

// GetSubjectID devuelve el identificador de sesión del contexto (después del middleware de auth).
func GetSubjectID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubjectID).(string)
	return s
}

// GetRole devuelve el rol de la sesión (después del middleware de auth).
func GetRole(c *fiber.Ctx) entity.Role {
	r, _ := c.Locals(LocalRole).(entity.Role)
	return r
}

// sessionToken extrae el token del header Authorization o, si no hay header, de la cookie.
func sessionToken(c *fiber.Ctx, cookieName string) (string, error) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", errors.New("authorization mal formado")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if cookieName == "" {
		return "", nil
	}
	return c.Cookies(cookieName), nil
}
