package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el append del ledger sea todo o
// nada: o el movimiento queda comprometido con su ID asignado, o no queda
// nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ProductLocker es el alcance de ordenamiento exclusivo por
// (cuenta, producto): dos append concurrentes sobre el mismo producto no deben
// intercalar su cálculo de saldo, mientras que productos distintos avanzan en
// paralelo. La espera es acotada; al agotarse devuelve
// domain.ErrConcurrentModification.
type ProductLocker interface {
	Acquire(ctx context.Context, accountID, productID int64) (release func(), err error)
}

// ReportGenerator renderiza el listado de movimientos como reporte kardex.
type ReportGenerator interface {
	GenerateMovementReport(ctx context.Context, generatedAt time.Time, rows []entity.MovementWithProduct) ([]byte, error)
}
