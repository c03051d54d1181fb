package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/componentes-api/internal/domain/access"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

func TestAuthorize_MismoRolPermite(t *testing.T) {
	for _, r := range entity.Roles() {
		assert.True(t, access.Authorize(r, r), "rol %s debe satisfacerse a sí mismo", r)
	}
}

func TestAuthorize_RolesDistintosDeniegan(t *testing.T) {
	for _, a := range entity.Roles() {
		for _, b := range entity.Roles() {
			if a == b {
				continue
			}
			assert.False(t, access.Authorize(a, b), "%s no debe satisfacer %s", a, b)
		}
	}
}

// admin no hereda permisos de bodeguero.
func TestAuthorize_SinJerarquia(t *testing.T) {
	assert.False(t, access.Authorize(entity.RoleAdmin, entity.RoleBodeguero))
}

func TestAuthorize_RolDesconocidoDeniega(t *testing.T) {
	assert.False(t, access.Authorize("", ""))
	assert.False(t, access.Authorize("root", "root"))
}
