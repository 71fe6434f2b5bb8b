package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura de productos sobre PostgreSQL (usable con pool o tx).
// El ledger no escribe en products; la gestión del catálogo es de otro módulo.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto dentro del alcance de la cuenta, o nil si no
// existe o pertenece a otra cuenta.
func (r *ProductRepo) GetByID(ctx context.Context, accountID, productID int64) (*entity.Product, error) {
	query := `
		SELECT id, account_id, code, name, deleted, created_at, updated_at
		FROM products WHERE account_id = $1 AND id = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, accountID, productID).Scan(
		&p.ID, &p.AccountID, &p.Code, &p.Name, &p.Deleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
