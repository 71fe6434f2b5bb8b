package repository

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// Órdenes admitidos para el listado de movimientos por cuenta.
const (
	OrderByDateAsc     = "date_asc"
	OrderByDateDesc    = "date_desc"
	OrderByProductAsc  = "product_asc"
	OrderByProductDesc = "product_desc"
)

// HistoryFilter filtros para la historia de movimientos de un producto.
// Los rangos de fecha son inclusivos sobre CreatedAt.
type HistoryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.MovementType
}

// MovementFilter filtros para el listado de movimientos por cuenta.
type MovementFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProductID *int64
	Type      *entity.MovementType
	UserID    *int64
	OrderBy   string // ver constantes OrderBy*
	Limit     int    // 1..1000, validado antes de llegar aquí
}

// StockMovementRepository puerto de persistencia del ledger. El ledger es
// append-only: no existe Update ni Delete sobre movimientos.
type StockMovementRepository interface {
	// Create persiste el movimiento y devuelve el ID asignado. Un choque en el
	// índice único (account_id, product_id, position) se traduce a
	// domain.ErrConcurrentModification.
	Create(ctx context.Context, m *entity.StockMovement) (int64, error)

	// GetLatest devuelve el último movimiento del producto (nil si no hay).
	GetLatest(ctx context.Context, accountID, productID int64) (*entity.StockMovement, error)

	// GetLatestForUpdate es GetLatest con bloqueo de fila (FOR UPDATE) dentro
	// de la transacción en curso: serializa los append concurrentes también a
	// nivel de base de datos.
	GetLatestForUpdate(ctx context.Context, accountID, productID int64) (*entity.StockMovement, error)

	// ListByProduct devuelve la historia del producto ordenada por ID
	// ascendente, de modo que los BalanceAfter leídos de arriba hacia abajo
	// cuentan una suma corrida coherente.
	ListByProduct(ctx context.Context, accountID, productID int64, f HistoryFilter) ([]entity.StockMovement, error)

	// List devuelve movimientos de toda la cuenta con datos del producto.
	List(ctx context.Context, accountID int64, f MovementFilter) ([]entity.MovementWithProduct, error)
}
