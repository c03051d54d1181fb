// Package access contiene la regla de autorización por rol (servicio de dominio puro).
package access

import "github.com/jhoicas/componentes-api/internal/domain/entity"

// Authorize permite la operación solo si el rol de la sesión es exactamente el requerido.
// No hay jerarquía: admin no satisface un requisito de bodeguero.
func Authorize(sessionRole, requiredRole entity.Role) bool {
	if _, ok := entity.ParseRole(string(requiredRole)); !ok {
		return false
	}
	return sessionRole == requiredRole
}
