package entity

// StackItem proyección de lectura del stock disponible de un componente.
type StackItem struct {
	ComponentID   int64
	ComponentName string
	Quantity      int
	MaxQuantity   int
}
