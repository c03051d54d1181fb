package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse nombre y rol del usuario autenticado y el token de sesión.
// El token también viaja en la cookie de sesión.
type LoginResponse struct {
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegistrationRequest entrada para POST /api/registration (solo admin).
type RegistrationRequest struct {
	Name     string `json:"name" validate:"max=200"` // vacío: se usa el email
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin bodeguero vendedor"`
}

// DeleteUserRequest credenciales del usuario a borrar.
type DeleteUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
