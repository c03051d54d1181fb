package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
	"github.com/jhoicas/componentes-api/pkg/logger"
)

// InventoryUseCase mutaciones y lecturas del inventario de componentes.
// Cada mutación es una unidad de trabajo y devuelve un domain.Result.
// La serialización por componente la dan los bloqueos de fila del almacenamiento.
type InventoryUseCase struct {
	txRunner     TxRunner
	components   repository.ComponentRepository
	stack        repository.StackRepository
	reportGen    StackReportGenerator
	queryTimeout time.Duration
	log          *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	components repository.ComponentRepository,
	stack repository.StackRepository,
	report StackReportGenerator,
	queryTimeout time.Duration,
	log *logger.Logger,
) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{
		txRunner:     txRunner,
		components:   components,
		stack:        stack,
		reportGen:    report,
		queryTimeout: queryTimeout,
		log:          log.Named("inventory"),
	}
}

// ChangePrice fija el precio unitario del componente con una única escritura atómica.
// id <= 0 o price <= 0 son valores centinela de campo ausente y no llegan al almacén.
// Un precio que el almacén redondearía o no puede guardar (ver entity.ValidPrice)
// es ConflictOrConstraintViolation.
func (uc *InventoryUseCase) ChangePrice(ctx context.Context, id int64, price decimal.Decimal) domain.Result {
	if id <= 0 || !entity.ValidPrice(price) {
		return uc.report("change_price", domain.ErrInvalidInput)
	}
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	return uc.report("change_price", uc.components.UpdatePrice(ctx, id, price))
}

// AddComponent inserta un componente nuevo con Quantity = 0.
func (uc *InventoryUseCase) AddComponent(ctx context.Context, name string, price decimal.Decimal, maxQuantity int) domain.Result {
	name = strings.TrimSpace(name)
	if name == "" || !entity.ValidPrice(price) || maxQuantity <= 0 {
		return uc.report("add_component", domain.ErrInvalidInput)
	}
	now := time.Now()
	c := &entity.Component{
		Name:        name,
		UnitPrice:   price,
		MaxQuantity: maxQuantity,
		Quantity:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	return uc.report("add_component", uc.components.Create(ctx, c))
}

// UpdateComponent fija la cantidad del componente. Bloquea la fila (SELECT FOR UPDATE)
// dentro de una transacción: escritores concurrentes del mismo id se serializan y
// componentes distintos no se bloquean entre sí.
// Una cantidad fuera de [0, MaxQuantity] es ConflictOrConstraintViolation.
func (uc *InventoryUseCase) UpdateComponent(ctx context.Context, id int64, quantity int) domain.Result {
	if id <= 0 {
		return uc.report("update_component", domain.ErrInvalidInput)
	}
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	err := uc.txRunner.Run(ctx, func(components repository.ComponentRepository) error {
		c, err := components.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if !c.Accepts(quantity) {
			return fmt.Errorf("%w: cantidad %d fuera de [0, %d]", domain.ErrConflict, quantity, c.MaxQuantity)
		}
		return components.SetQuantity(ctx, id, quantity)
	})
	return uc.report("update_component", err)
}

// ListComponents lectura instantánea de todos los componentes. Sin filas devuelve slice vacío.
func (uc *InventoryUseCase) ListComponents(ctx context.Context) ([]entity.Component, error) {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	list, err := uc.components.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "list_components").Msg("lectura fallida")
		return nil, fmt.Errorf("%w: listar componentes: %w", domain.ErrBackend, err)
	}
	if list == nil {
		list = []entity.Component{}
	}
	return list, nil
}

// ListStack lectura instantánea del stock disponible. Sin filas devuelve slice vacío.
func (uc *InventoryUseCase) ListStack(ctx context.Context) ([]entity.StackItem, error) {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	list, err := uc.stack.ListStack(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "list_stack").Msg("lectura fallida")
		return nil, fmt.Errorf("%w: listar stock: %w", domain.ErrBackend, err)
	}
	if list == nil {
		list = []entity.StackItem{}
	}
	return list, nil
}

// StackReportPDF genera el PDF del listado de stock.
func (uc *InventoryUseCase) StackReportPDF(ctx context.Context) ([]byte, error) {
	if uc.reportGen == nil {
		return nil, fmt.Errorf("inventory: generador de reportes no configurado")
	}
	items, err := uc.ListStack(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateStackReport(ctx, items)
}

func (uc *InventoryUseCase) report(op string, err error) domain.Result {
	res := domain.ResultOf(err)
	switch res {
	case domain.Ok:
	case domain.BackendFailure:
		uc.log.Error().Err(err).Str("op", op).Str("result", res.String()).Msg("mutación fallida")
	default:
		uc.log.Info().Err(err).Str("op", op).Str("result", res.String()).Msg("mutación rechazada")
	}
	return res
}

func (uc *InventoryUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.queryTimeout)
}
