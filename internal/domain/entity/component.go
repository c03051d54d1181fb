package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component representa un componente del almacén.
// Quantity siempre es un valor confirmado; no existen estados reservados.
type Component struct {
	ID          int64 // asignado por el almacenamiento
	Name        string
	UnitPrice   decimal.Decimal // > 0
	MaxQuantity int             // > 0
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceScale decimales que el almacén guarda para UnitPrice.
const PriceScale = 2

// MaxUnitPrice cota superior exclusiva de UnitPrice (NUMERIC(14,2)).
var MaxUnitPrice = decimal.New(1, 12)

// ValidPrice indica si price se puede guardar sin redondeo: positivo, menor que
// MaxUnitPrice y con a lo sumo PriceScale decimales.
func ValidPrice(price decimal.Decimal) bool {
	return price.IsPositive() &&
		price.LessThan(MaxUnitPrice) &&
		price.Equal(price.Truncate(PriceScale))
}

// Accepts indica si quantity cabe dentro de los límites del componente.
func (c *Component) Accepts(quantity int) bool {
	return quantity >= 0 && quantity <= c.MaxQuantity
}
