package inventory

import (
	"context"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Los bloqueos de fila tomados dentro de fn se liberan al hacer Commit o Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(components repository.ComponentRepository) error) error
}

// StackReportGenerator genera la representación en PDF del listado de stock.
type StackReportGenerator interface {
	GenerateStackReport(ctx context.Context, items []entity.StackItem) ([]byte, error)
}
