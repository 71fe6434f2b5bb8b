package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, account_id, product_id, movement_type, quantity, balance_after, position,
		reference_document, batch_number, expiration_date, location, reason, user_id, created_at`

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste el movimiento y devuelve el ID asignado por la secuencia.
// El índice único (account_id, product_id, position) es el chequeo defensivo
// de serialización: si otro escritor alcanzó a insertar con la misma posición,
// el choque se traduce a domain.ErrConcurrentModification.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) (int64, error) {
	query := `
		INSERT INTO stock_movements (account_id, product_id, movement_type, quantity, balance_after, position,
			reference_document, batch_number, expiration_date, location, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		m.AccountID, m.ProductID, int(m.Type), m.Quantity, m.BalanceAfter, m.Position,
		nullable(m.ReferenceDocument), nullable(m.BatchNumber), m.ExpirationDate,
		nullable(m.Location), nullable(m.Reason), m.UserID, m.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrConcurrentModification
		}
		return 0, fmt.Errorf("create stock movement: %w", err)
	}
	m.ID = id
	return id, nil
}

// GetLatest obtiene el último movimiento del producto, o nil si no hay.
func (r *StockMovementRepo) GetLatest(ctx context.Context, accountID, productID int64) (*entity.StockMovement, error) {
	return r.latest(ctx, accountID, productID, false)
}

// GetLatestForUpdate obtiene el último movimiento bloqueando la fila
// (SELECT ... FOR UPDATE) dentro de la transacción en curso.
func (r *StockMovementRepo) GetLatestForUpdate(ctx context.Context, accountID, productID int64) (*entity.StockMovement, error) {
	return r.latest(ctx, accountID, productID, true)
}

func (r *StockMovementRepo) latest(ctx context.Context, accountID, productID int64, forUpdate bool) (*entity.StockMovement, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM stock_movements
		WHERE account_id = $1 AND product_id = $2
		ORDER BY id DESC LIMIT 1`, movementColumns)
	if forUpdate {
		query += " FOR UPDATE"
	}
	row := r.q.QueryRow(ctx, query, accountID, productID)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest movement: %w", err)
	}
	return m, nil
}

// ListByProduct devuelve la historia del producto ordenada por ID ascendente.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, accountID, productID int64, f repository.HistoryFilter) ([]entity.StockMovement, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM stock_movements
		WHERE account_id = $1 AND product_id = $2`, movementColumns)
	args := []any{accountID, productID}
	pos := 3
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *f.StartDate)
		pos++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *f.EndDate)
		pos++
	}
	if f.Type != nil {
		query += fmt.Sprintf(" AND movement_type = $%d", pos)
		args = append(args, int(*f.Type))
		pos++
	}
	query += " ORDER BY id ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

// List devuelve movimientos de toda la cuenta con nombre y código del
// producto, según filtros, orden y límite ya validados.
func (r *StockMovementRepo) List(ctx context.Context, accountID int64, f repository.MovementFilter) ([]entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.account_id, m.product_id, m.movement_type, m.quantity, m.balance_after, m.position,
			m.reference_document, m.batch_number, m.expiration_date, m.location, m.reason, m.user_id, m.created_at,
			p.name, p.code
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id AND p.account_id = m.account_id
		WHERE m.account_id = $1`
	args := []any{accountID}
	pos := 2
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *f.StartDate)
		pos++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *f.EndDate)
		pos++
	}
	if f.ProductID != nil {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, *f.ProductID)
		pos++
	}
	if f.Type != nil {
		query += fmt.Sprintf(" AND m.movement_type = $%d", pos)
		args = append(args, int(*f.Type))
		pos++
	}
	if f.UserID != nil {
		query += fmt.Sprintf(" AND m.user_id = $%d", pos)
		args = append(args, *f.UserID)
		pos++
	}
	query += " ORDER BY " + orderClause(f.OrderBy)
	query += fmt.Sprintf(" LIMIT $%d", pos)
	args = append(args, f.Limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.MovementWithProduct
	for rows.Next() {
		var mp entity.MovementWithProduct
		var refDoc, batch, location, reason *string
		if err := rows.Scan(
			&mp.ID, &mp.AccountID, &mp.ProductID, &mp.Type, &mp.Quantity, &mp.BalanceAfter, &mp.Position,
			&refDoc, &batch, &mp.ExpirationDate, &location, &reason, &mp.UserID, &mp.CreatedAt,
			&mp.ProductName, &mp.ProductCode,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		mp.ReferenceDocument = deref(refDoc)
		mp.BatchNumber = deref(batch)
		mp.Location = deref(location)
		mp.Reason = deref(reason)
		list = append(list, mp)
	}
	return list, rows.Err()
}

// orderClause traduce el orden del wire a SQL; el ID desempata para que el
// orden sea total y estable.
func orderClause(orderBy string) string {
	switch orderBy {
	case repository.OrderByDateAsc:
		return "m.created_at ASC, m.id ASC"
	case repository.OrderByProductAsc:
		return "p.name ASC, m.created_at DESC, m.id DESC"
	case repository.OrderByProductDesc:
		return "p.name DESC, m.created_at DESC, m.id DESC"
	default: // date_desc
		return "m.created_at DESC, m.id DESC"
	}
}

// scanMovement lee una fila con movementColumns.
func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var refDoc, batch, location, reason *string
	err := row.Scan(
		&m.ID, &m.AccountID, &m.ProductID, &m.Type, &m.Quantity, &m.BalanceAfter, &m.Position,
		&refDoc, &batch, &m.ExpirationDate, &location, &reason, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ReferenceDocument = deref(refDoc)
	m.BatchNumber = deref(batch)
	m.Location = deref(location)
	m.Reason = deref(reason)
	return &m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
