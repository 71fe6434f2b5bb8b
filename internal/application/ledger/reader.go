package ledger

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	ledgerdomain "github.com/jhoicas/kardex-api/internal/domain/ledger"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// Reader reconstruye vistas del kardex: stock puntual, historia por producto
// y listados por cuenta. Toda lectura refleja los movimientos comprometidos
// antes de iniciarla (lectura sobre la misma base que escribe el Writer).
type Reader struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
	validator   *Validator
}

// NewReader construye el lector del ledger.
func NewReader(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository, validator *Validator) *Reader {
	return &Reader{movRepo: movRepo, productRepo: productRepo, validator: validator}
}

// GetStock proyecta el stock actual del producto a partir del último
// movimiento (camino optimizado del proyector: BalanceAfter ya viene
// materializado).
func (r *Reader) GetStock(ctx context.Context, accountID, productID int64) (*entity.ProductStock, error) {
	if productID <= 0 {
		return nil, domain.ErrProductNotFound
	}
	product, err := r.productRepo.GetByID(ctx, accountID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	latest, err := r.movRepo.GetLatest(ctx, accountID, productID)
	if err != nil {
		return nil, err
	}
	ps := ledgerdomain.ProjectLatest(product, latest)
	return &ps, nil
}

// ListHistory devuelve la historia del producto, del más antiguo al más
// reciente, con filtros opcionales de rango de fechas (inclusivo) y tipo.
func (r *Reader) ListHistory(ctx context.Context, accountID, productID int64, q dto.MovementHistoryQuery) ([]entity.StockMovement, error) {
	if productID <= 0 {
		return nil, domain.ErrProductNotFound
	}
	product, err := r.productRepo.GetByID(ctx, accountID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	f, err := r.validator.ValidateHistoryFilter(q)
	if err != nil {
		return nil, err
	}
	return r.movRepo.ListByProduct(ctx, accountID, productID, f)
}

// ListMovements devuelve movimientos de toda la cuenta según los filtros.
// El límite fuera de rango se rechaza en el validador antes de consultar.
func (r *Reader) ListMovements(ctx context.Context, accountID int64, q dto.ListStockMovementsQuery) ([]entity.MovementWithProduct, error) {
	f, err := r.validator.ValidateListFilter(q)
	if err != nil {
		return nil, err
	}
	return r.movRepo.List(ctx, accountID, f)
}
