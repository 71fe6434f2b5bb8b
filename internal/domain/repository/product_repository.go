package repository

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// ProductRepository acceso de solo lectura a productos. El ledger nunca crea
// ni muta productos; solo resuelve existencia dentro de la cuenta.
type ProductRepository interface {
	// GetByID devuelve el producto dentro del alcance de la cuenta, o nil si
	// no existe o pertenece a otra cuenta.
	GetByID(ctx context.Context, accountID, productID int64) (*entity.Product, error)
}
