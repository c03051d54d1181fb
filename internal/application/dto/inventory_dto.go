package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetPriceRequest body para POST /api/set-price. id = 0 o value = 0 se tratan como ausentes.
type SetPriceRequest struct {
	ID    int64           `json:"id"`
	Value decimal.Decimal `json:"value"`
}

// AddComponentRequest body para POST /api/add-component.
type AddComponentRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	MaxQuantity int             `json:"max_quantity"`
}

// UpdateComponentRequest body para POST /api/update-component.
// Quantity es puntero para distinguir 0 (vaciar) de campo ausente.
type UpdateComponentRequest struct {
	ID       int64 `json:"id"`
	Quantity *int  `json:"quantity"`
}

// ComponentResponse salida de un componente.
type ComponentResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	MaxQuantity int             `json:"max_quantity"`
	Quantity    int             `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StackItemResponse salida de un ítem de stock.
type StackItemResponse struct {
	ComponentID   int64  `json:"component_id"`
	ComponentName string `json:"component_name"`
	Quantity      int    `json:"quantity"`
	MaxQuantity   int    `json:"max_quantity"`
}
