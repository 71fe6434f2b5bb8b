package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement es la unidad de verdad del ledger: un asiento inmutable en el
// kardex de un producto. Una vez persistido nunca se actualiza ni se borra;
// una corrección es un nuevo movimiento (ajuste o exclusión).
type StockMovement struct {
	ID        int64 // asignado por el sistema, creciente dentro de la cuenta
	AccountID int64
	ProductID int64
	Type      MovementType
	Quantity  decimal.Decimal // magnitud movida; el signo efectivo lo da el tipo

	// BalanceAfter es el saldo del producto inmediatamente después de aplicar
	// este movimiento. Se materializa una sola vez al escribir y no se
	// recalcula nunca, de modo que la historia se lee en O(1) por fila.
	BalanceAfter decimal.Decimal

	// Position es el consecutivo del movimiento dentro del kardex del
	// producto. Respalda el candado por producto con un índice único
	// (account_id, product_id, position): dos escritores que calculen contra
	// el mismo saldo previo chocan en el insert.
	Position int64

	// Campos descriptivos opcionales ("" = ausente).
	ReferenceDocument string
	BatchNumber       string
	ExpirationDate    *time.Time
	Location          string
	Reason            string

	UserID    int64 // principal que registró el movimiento
	CreatedAt time.Time
}

// MovementWithProduct enriquece un movimiento con los datos del producto para
// los listados por cuenta.
type MovementWithProduct struct {
	StockMovement
	ProductName string
	ProductCode string
}
