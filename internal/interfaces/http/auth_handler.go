package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/componentes-api/internal/application/auth"
	"github.com/jhoicas/componentes-api/internal/application/dto"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/infrastructure/metrics"
	"github.com/jhoicas/componentes-api/pkg/password"
)

// Límites de los campos de texto de entrada.
const (
	minPasswordLen = 8
	maxNameLen     = 200
)

// SessionCookie transporte de la sesión en cookie HttpOnly.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler maneja login, logout, registro y baja de usuarios.
type AuthHandler struct {
	uc      AuthService
	cookie  SessionCookie
	metrics MetricsRecorder
}

// NewAuthHandler construye el handler de auth. rec puede ser nil.
func NewAuthHandler(uc AuthService, cookie SessionCookie, rec MetricsRecorder) *AuthHandler {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &AuthHandler{uc: uc, cookie: cookie, metrics: rec}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve nombre, rol y token. El token también se entrega en la cookie de sesión.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Email) == "" && in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	id, sess, err := h.uc.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidInput):
			h.metrics.RecordLogin(metrics.LoginInvalidCredentials)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email o contraseña incorrectos"})
		case errors.Is(err, domain.ErrBackend):
			h.metrics.RecordLogin(metrics.LoginBackendFailure)
			return backendUnavailable(c)
		default:
			h.metrics.RecordLogin(metrics.LoginBackendFailure)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo iniciar la sesión"})
		}
	}
	h.metrics.RecordLogin(metrics.LoginSuccess)
	h.setSessionCookie(c, sess.Token, sess.ExpiresAt)
	return c.JSON(dto.LoginResponse{
		Name:      id.Name,
		Role:      id.Role.String(),
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Revoca la sesión del header o de la cookie. Sin sesión también responde 200.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := sessionToken(c, h.cookie.Name)
	if err := h.uc.Logout(c.UserContext(), token); err != nil {
		return backendUnavailable(c)
	}
	h.clearSessionCookie(c)
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Registration godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrationRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/registration [post]
func (h *AuthHandler) Registration(c *fiber.Ctx) error {
	var in dto.RegistrationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || in.Role == "" {
		return badRequest(c, "VALIDATION", "email, password y role son requeridos")
	}
	if _, ok := entity.ParseRole(in.Role); !ok {
		return badRequest(c, "VALIDATION", "role debe ser admin, bodeguero o vendedor")
	}
	if len(in.Name) > maxNameLen {
		return badRequest(c, "VALIDATION", fmt.Sprintf("name admite hasta %d bytes", maxNameLen))
	}
	if len(in.Password) < minPasswordLen || len(in.Password) > password.MaxBytes {
		return badRequest(c, "VALIDATION", fmt.Sprintf("password debe tener entre %d y %d bytes", minPasswordLen, password.MaxBytes))
	}
	res := h.uc.Register(c.UserContext(), auth.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
	h.metrics.RecordMutation("register", res)
	if res == domain.ConflictOrConstraintViolation {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "registro no completado: el email ya está registrado"})
	}
	return writeResult(c, res, fiber.StatusCreated, "registro completado")
}

// Delete godoc
// @Summary      Borrar usuario
// @Description  Borra el usuario cuyas credenciales coinciden.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteUserRequest  true  "email, password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/delete [delete]
func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	res := h.uc.DeleteUser(c.UserContext(), in.Email, in.Password)
	h.metrics.RecordMutation("delete_user", res)
	if res == domain.NoRecordAffected {
		return badRequest(c, "WRONG_CREDENTIALS", "email o contraseña incorrectos")
	}
	return writeResult(c, res, fiber.StatusOK, "usuario borrado")
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	if h.cookie.Name == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	if h.cookie.Name == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
