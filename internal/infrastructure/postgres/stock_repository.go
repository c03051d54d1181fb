package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
)

var _ repository.StackRepository = (*StackRepo)(nil)

// StackRepo lecturas del stock disponible: componentes con cantidad > 0.
type StackRepo struct {
	q Querier
}

// NewStackRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStackRepository(q Querier) *StackRepo {
	return &StackRepo{q: q}
}

// ListStack lista el stock disponible ordenado por componente.
func (r *StackRepo) ListStack(ctx context.Context) ([]entity.StackItem, error) {
	query := `
		SELECT id, name, quantity, max_quantity
		FROM components
		WHERE quantity > 0
		ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stack: %w", err)
	}
	defer rows.Close()
	var list []entity.StackItem
	for rows.Next() {
		var s entity.StackItem
		if err := rows.Scan(&s.ComponentID, &s.ComponentName, &s.Quantity, &s.MaxQuantity); err != nil {
			return nil, fmt.Errorf("scan stack item: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
