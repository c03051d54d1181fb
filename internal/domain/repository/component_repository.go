package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// ComponentRepository define el puerto de persistencia para Component (usable con pool o tx).
type ComponentRepository interface {
	// Create inserta el componente y asigna su ID. domain.ErrDuplicate si el nombre ya existe,
	// domain.ErrConflict si viola una restricción del esquema.
	Create(ctx context.Context, component *entity.Component) error
	// UpdatePrice escritura atómica del precio. domain.ErrNotFound si el id no existe.
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.Component, error)
	// SetQuantity fija la cantidad. domain.ErrNotFound si el id no existe.
	SetQuantity(ctx context.Context, id int64, quantity int) error
	List(ctx context.Context) ([]entity.Component, error)
}
