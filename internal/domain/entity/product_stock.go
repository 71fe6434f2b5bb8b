package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus estado derivado del stock de un producto.
type StockStatus string

const (
	StockStatusAvailable  StockStatus = "available"
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusDeleted    StockStatus = "deleted"
)

// ProductStock es una proyección de solo lectura: función pura de la historia
// de movimientos más el flag de borrado del producto. Nunca se persiste como
// fila propia, se materializa en cada consulta.
type ProductStock struct {
	ProductID        int64
	ProductName      string
	ProductCode      string
	CurrentBalance   decimal.Decimal
	LastMovementDate *time.Time
	LastMovementType *MovementType
	Status           StockStatus
	Deleted          bool
}
