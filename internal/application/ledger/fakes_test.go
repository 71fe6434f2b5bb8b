package ledger_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. Reproducen el contrato del
// adaptador PostgreSQL: índice único (cuenta, producto, posición) y listados
// ordenados.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]*entity.Product
	calls    int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[int64]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) GetByID(_ context.Context, accountID, productID int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p, ok := f.products[productID]
	if !ok || p.AccountID != accountID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeMovementRepo struct {
	mu       sync.Mutex
	movs     []entity.StockMovement
	nextID   int64
	products *fakeProductRepo // para los nombres en List
	listCall int
}

func newFakeMovementRepo(products *fakeProductRepo) *fakeMovementRepo {
	return &fakeMovementRepo{products: products}
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.movs {
		if ex.AccountID == m.AccountID && ex.ProductID == m.ProductID && ex.Position == m.Position {
			return 0, domain.ErrConcurrentModification
		}
	}
	f.nextID++
	m.ID = f.nextID
	f.movs = append(f.movs, *m)
	return m.ID, nil
}

// seed inserta un movimiento ya materializado (para armar historias en tests
// de lectura sin pasar por el writer).
func (f *fakeMovementRepo) seed(m entity.StockMovement) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	m.ID = f.nextID
	f.movs = append(f.movs, m)
}

func (f *fakeMovementRepo) GetLatest(_ context.Context, accountID, productID int64) (*entity.StockMovement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latestLocked(accountID, productID), nil
}

func (f *fakeMovementRepo) GetLatestForUpdate(ctx context.Context, accountID, productID int64) (*entity.StockMovement, error) {
	return f.GetLatest(ctx, accountID, productID)
}

func (f *fakeMovementRepo) latestLocked(accountID, productID int64) *entity.StockMovement {
	var latest *entity.StockMovement
	for i := range f.movs {
		m := f.movs[i]
		if m.AccountID == accountID && m.ProductID == productID {
			if latest == nil || m.ID > latest.ID {
				cp := m
				latest = &cp
			}
		}
	}
	return latest
}

func (f *fakeMovementRepo) ListByProduct(_ context.Context, accountID, productID int64, flt repository.HistoryFilter) ([]entity.StockMovement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.StockMovement
	for _, m := range f.movs {
		if m.AccountID != accountID || m.ProductID != productID {
			continue
		}
		if flt.StartDate != nil && m.CreatedAt.Before(*flt.StartDate) {
			continue
		}
		if flt.EndDate != nil && m.CreatedAt.After(*flt.EndDate) {
			continue
		}
		if flt.Type != nil && m.Type != *flt.Type {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMovementRepo) List(_ context.Context, accountID int64, flt repository.MovementFilter) ([]entity.MovementWithProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCall++
	var out []entity.MovementWithProduct
	for _, m := range f.movs {
		if m.AccountID != accountID {
			continue
		}
		if flt.StartDate != nil && m.CreatedAt.Before(*flt.StartDate) {
			continue
		}
		if flt.EndDate != nil && m.CreatedAt.After(*flt.EndDate) {
			continue
		}
		if flt.ProductID != nil && m.ProductID != *flt.ProductID {
			continue
		}
		if flt.Type != nil && m.Type != *flt.Type {
			continue
		}
		if flt.UserID != nil && m.UserID != *flt.UserID {
			continue
		}
		mp := entity.MovementWithProduct{StockMovement: m}
		if p := f.products.products[m.ProductID]; p != nil {
			mp.ProductName = p.Name
			mp.ProductCode = p.Code
		}
		out = append(out, mp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch flt.OrderBy {
		case repository.OrderByDateAsc:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		case repository.OrderByProductAsc:
			if a.ProductName != b.ProductName {
				return a.ProductName < b.ProductName
			}
			return a.CreatedAt.After(b.CreatedAt)
		case repository.OrderByProductDesc:
			if a.ProductName != b.ProductName {
				return a.ProductName > b.ProductName
			}
			return a.CreatedAt.After(b.CreatedAt)
		default: // date_desc
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		}
	})
	if len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeMovementRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.movs)
}

func (f *fakeMovementRepo) all() []entity.StockMovement {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]entity.StockMovement, len(f.movs))
	copy(cp, f.movs)
	return cp
}

// fakeTxRunner ejecuta fn directamente contra los repos en memoria. La
// atomicidad real la prueba el adaptador PostgreSQL; aquí interesa la
// secuencia de lectura-cálculo-escritura del writer.
type fakeTxRunner struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movRepo, f.productRepo)
}
