package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación de ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

const componentColumns = `id, name, unit_price, max_quantity, quantity, created_at, updated_at`

// Create inserta el componente y asigna el ID generado.
func (r *ComponentRepo) Create(ctx context.Context, c *entity.Component) error {
	query := `
		INSERT INTO components (name, unit_price, max_quantity, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.UnitPrice, c.MaxQuantity, c.Quantity, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return mapComponentWriteError("insert component", err)
	}
	return nil
}

// UpdatePrice actualiza el precio en una sola sentencia.
func (r *ComponentRepo) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE components SET unit_price = $2, updated_at = now() WHERE id = $1`, id, price)
	if err != nil {
		return mapComponentWriteError("update price", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate obtiene el componente y bloquea la fila para update (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *ComponentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1 FOR UPDATE`
	c, err := scanComponent(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component for update: %w", err)
	}
	return c, nil
}

// SetQuantity fija la cantidad del componente.
func (r *ComponentRepo) SetQuantity(ctx context.Context, id int64, quantity int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE components SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return mapComponentWriteError("set quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los componentes ordenados por id.
func (r *ComponentRepo) List(ctx context.Context) ([]entity.Component, error) {
	rows, err := r.q.Query(ctx, `SELECT `+componentColumns+` FROM components ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()
	var list []entity.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

func scanComponent(row pgx.Row) (*entity.Component, error) {
	var c entity.Component
	if err := row.Scan(&c.ID, &c.Name, &c.UnitPrice, &c.MaxQuantity, &c.Quantity, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func mapComponentWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s: %w", domain.ErrDuplicate, op, err)
	case isCheckViolation(err), isNumericOutOfRange(err):
		return fmt.Errorf("%w: %s: %w", domain.ErrConflict, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
