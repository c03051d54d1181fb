package repository

import (
	"context"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// StackRepository consultas de solo lectura sobre el stock disponible.
type StackRepository interface {
	ListStack(ctx context.Context) ([]entity.StackItem, error)
}
