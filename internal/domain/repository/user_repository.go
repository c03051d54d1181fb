package repository

import (
	"context"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// PasswordMatcher compara el hash almacenado con la contraseña candidata.
type PasswordMatcher func(passwordHash string) bool

// UserRepository define el puerto de persistencia para User (almacén de credenciales).
type UserRepository interface {
	// Create persiste un usuario. Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// DeleteByCredentials borra la única fila cuyo email coincide y cuyo hash acepta match.
	// domain.ErrNotFound si ninguna coincide; domain.ErrAmbiguousMatch si coincide más de una
	// (en ese caso no se borra nada).
	DeleteByCredentials(ctx context.Context, email string, match PasswordMatcher) error
	// Count número total de usuarios.
	Count(ctx context.Context) (int64, error)
}
