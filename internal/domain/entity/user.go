package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Role rol de acceso de un usuario. Conjunto cerrado: ver ParseRole.
type Role string

// Roles válidos para User.
const (
	RoleAdmin     Role = "admin"
	RoleBodeguero Role = "bodeguero" // jefe de bodega: precios, componentes y stock
	RoleVendedor  Role = "vendedor"
)

// Roles devuelve todos los roles válidos.
func Roles() []Role {
	return []Role{RoleAdmin, RoleBodeguero, RoleVendedor}
}

// ParseRole convierte un string en Role. ok es false si no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleBodeguero, RoleVendedor:
		return r, true
	default:
		return "", false
	}
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string // único, normalizado con NormalizeEmail
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail recorta espacios y aplica case folding Unicode para que el email
// funcione como clave única.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}
