package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Writer registra movimientos en el kardex. Es el único camino de escritura
// del ledger: valida, toma el candado por (cuenta, producto), lee el último
// saldo dentro de una transacción, materializa BalanceAfter y persiste.
type Writer struct {
	validator *Validator
	locker    ProductLocker
	tx        TxRunner

	// allowNegativeStock decide si un movimiento puede dejar el saldo por
	// debajo de cero (LEDGER_ALLOW_NEGATIVE_STOCK).
	allowNegativeStock bool
}

// NewWriter construye el escritor del ledger.
func NewWriter(validator *Validator, locker ProductLocker, tx TxRunner, allowNegativeStock bool) *Writer {
	return &Writer{
		validator:          validator,
		locker:             locker,
		tx:                 tx,
		allowNegativeStock: allowNegativeStock,
	}
}

// Append valida el candidato y lo anexa atómicamente al kardex del producto,
// devolviendo el ID asignado. Dos Append concurrentes sobre el mismo producto
// quedan linealizados por el candado; si además un escritor lograra saltárselo,
// el índice único por posición convierte el choque en
// domain.ErrConcurrentModification.
func (w *Writer) Append(ctx context.Context, accountID, userID int64, in dto.CreateStockMovementRequest) (int64, error) {
	vm, err := w.validator.ValidateCreate(ctx, accountID, in)
	if err != nil {
		return 0, err
	}

	release, err := w.locker.Acquire(ctx, accountID, vm.Product.ID)
	if err != nil {
		return 0, err
	}
	defer release()

	var assigned int64
	err = w.tx.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		latest, err := movRepo.GetLatestForUpdate(ctx, accountID, vm.Product.ID)
		if err != nil {
			return err
		}

		prior := decimal.Zero
		position := int64(1)
		if latest != nil {
			prior = latest.BalanceAfter
			position = latest.Position + 1
		}

		balanceAfter := prior.Add(vm.Type.Effect(vm.Quantity))
		if !w.allowNegativeStock && balanceAfter.IsNegative() {
			return domain.ErrInsufficientStock
		}

		m := &entity.StockMovement{
			AccountID:         accountID,
			ProductID:         vm.Product.ID,
			Type:              vm.Type,
			Quantity:          vm.Quantity,
			BalanceAfter:      balanceAfter,
			Position:          position,
			ReferenceDocument: vm.ReferenceDocument,
			BatchNumber:       vm.BatchNumber,
			ExpirationDate:    vm.ExpirationDate,
			Location:          vm.Location,
			Reason:            vm.Reason,
			UserID:            userID,
			CreatedAt:         time.Now().UTC(),
		}
		assigned, err = movRepo.Create(ctx, m)
		return err
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}
