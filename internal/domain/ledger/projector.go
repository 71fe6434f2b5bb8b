// Package ledger contiene el cálculo puro del kardex: la proyección del saldo
// de un producto a partir de su historia ordenada de movimientos.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Project recorre la historia ordenada por ID ascendente plegando el efecto de
// cada movimiento sobre un saldo inicial implícito de cero, y devuelve la
// proyección terminal del producto.
func Project(product *entity.Product, history []entity.StockMovement) entity.ProductStock {
	balance := decimal.Zero
	for i := range history {
		balance = balance.Add(history[i].Type.Effect(history[i].Quantity))
	}

	ps := entity.ProductStock{
		ProductID:      product.ID,
		ProductName:    product.Name,
		ProductCode:    product.Code,
		CurrentBalance: balance,
		Deleted:        product.Deleted,
	}
	if len(history) > 0 {
		last := history[len(history)-1]
		ps.LastMovementDate = &last.CreatedAt
		t := last.Type
		ps.LastMovementType = &t
	}
	ps.Status = statusFor(product.Deleted, balance, len(history) > 0)
	return ps
}

// ProjectLatest es el camino optimizado: como cada movimiento lleva su
// BalanceAfter materializado, basta el último asiento para proyectar el saldo.
// Debe coincidir con Project sobre cualquier historia (propiedad verificada en
// tests); latest == nil equivale a historia vacía.
func ProjectLatest(product *entity.Product, latest *entity.StockMovement) entity.ProductStock {
	ps := entity.ProductStock{
		ProductID:      product.ID,
		ProductName:    product.Name,
		ProductCode:    product.Code,
		CurrentBalance: decimal.Zero,
		Deleted:        product.Deleted,
	}
	if latest != nil {
		ps.CurrentBalance = latest.BalanceAfter
		ps.LastMovementDate = &latest.CreatedAt
		t := latest.Type
		ps.LastMovementType = &t
	}
	ps.Status = statusFor(product.Deleted, ps.CurrentBalance, latest != nil)
	return ps
}

// statusFor deriva el estado: eliminado pesa más que el saldo; sin movimientos
// el producto se considera disponible aunque el saldo sea cero.
func statusFor(deleted bool, balance decimal.Decimal, hasMovements bool) entity.StockStatus {
	if deleted {
		return entity.StockStatusDeleted
	}
	if hasMovements && balance.LessThanOrEqual(decimal.Zero) {
		return entity.StockStatusOutOfStock
	}
	return entity.StockStatusAvailable
}
