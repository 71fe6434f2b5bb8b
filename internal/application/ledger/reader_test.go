package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// siembra una historia de marzo y abril sobre el producto 100, con los saldos
// ya materializados.
func sembrarHistoria(b *bancoDePruebas) {
	fechas := []struct {
		fecha time.Time
		tipo  entity.MovementType
		cant  int64
		saldo int64
	}{
		{time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC), entity.MovementTypeInbound, 20, 20},
		{time.Date(2026, 3, 20, 15, 30, 0, 0, time.UTC), entity.MovementTypeOutbound, 5, 15},
		{time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC), entity.MovementTypeInbound, 10, 25},
		{time.Date(2026, 4, 10, 11, 45, 0, 0, time.UTC), entity.MovementTypeOutbound, 8, 17},
		{time.Date(2026, 4, 28, 18, 0, 0, 0, time.UTC), entity.MovementTypeAdjustment, -2, 15},
	}
	for i, f := range fechas {
		b.movs.seed(entity.StockMovement{
			AccountID:    cuentaTest,
			ProductID:    100,
			Type:         f.tipo,
			Quantity:     decimal.NewFromInt(f.cant),
			BalanceAfter: decimal.NewFromInt(f.saldo),
			Position:     int64(i + 1),
			UserID:       usuarioTest,
			CreatedAt:    f.fecha,
		})
	}
}

func TestListHistory_RangoDeFechasInclusivo(t *testing.T) {
	b := nuevoBanco(t, true)
	sembrarHistoria(b)

	movs, err := b.reader.ListHistory(context.Background(), cuentaTest, 100, dto.MovementHistoryQuery{
		StartDate: "2026-04-01",
		EndDate:   "2026-04-30",
	})
	require.NoError(t, err)
	require.Len(t, movs, 3)

	// Del más antiguo al más reciente, con el saldo corrido intacto.
	saldos := []int64{25, 17, 15}
	for i, m := range movs {
		assert.True(t, m.BalanceAfter.Equal(decimal.NewFromInt(saldos[i])),
			"fila %d: saldo esperado %d, obtenido %s", i, saldos[i], m.BalanceAfter)
		if i > 0 {
			assert.True(t, movs[i-1].CreatedAt.Before(m.CreatedAt))
		}
	}
}

func TestListHistory_FiltroPorTipo(t *testing.T) {
	b := nuevoBanco(t, true)
	sembrarHistoria(b)

	tipo := 1
	movs, err := b.reader.ListHistory(context.Background(), cuentaTest, 100, dto.MovementHistoryQuery{
		MovementType: &tipo,
	})
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementTypeOutbound, m.Type)
	}
}

func TestListHistory_ProductoInexistente(t *testing.T) {
	b := nuevoBanco(t, true)

	_, err := b.reader.ListHistory(context.Background(), cuentaTest, 999, dto.MovementHistoryQuery{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListMovements_LimiteUnoConOrden(t *testing.T) {
	b := nuevoBanco(t, true)
	sembrarHistoria(b)

	lim := 1
	rows, err := b.reader.ListMovements(context.Background(), cuentaTest, dto.ListStockMovementsQuery{
		LimitRecords: &lim,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// Orden por defecto date_desc: la fila es la más reciente.
	assert.Equal(t, time.Date(2026, 4, 28, 18, 0, 0, 0, time.UTC), rows[0].CreatedAt)
	assert.True(t, rows[0].BalanceAfter.Equal(decimal.NewFromInt(15)))

	rows, err = b.reader.ListMovements(context.Background(), cuentaTest, dto.ListStockMovementsQuery{
		LimitRecords: &lim,
		OrderBy:      "date_asc",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC), rows[0].CreatedAt)
}

func TestListMovements_LimiteFueraDeRangoNoConsulta(t *testing.T) {
	b := nuevoBanco(t, true)
	sembrarHistoria(b)

	lim := 2000
	_, err := b.reader.ListMovements(context.Background(), cuentaTest, dto.ListStockMovementsQuery{
		LimitRecords: &lim,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, b.movs.listCall, "el repositorio no debe consultarse con límite inválido")
}

func TestListMovements_AislamientoPorCuenta(t *testing.T) {
	b := nuevoBanco(t, true)
	sembrarHistoria(b)

	rows, err := b.reader.ListMovements(context.Background(), cuentaTest+1, dto.ListStockMovementsQuery{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetStock_ProductoSinMovimientos(t *testing.T) {
	b := nuevoBanco(t, true)

	stock, err := b.reader.GetStock(context.Background(), cuentaTest, 100)
	require.NoError(t, err)
	assert.True(t, stock.CurrentBalance.Equal(decimal.Zero))
	assert.Equal(t, entity.StockStatusAvailable, stock.Status)
	assert.Nil(t, stock.LastMovementDate)
	assert.Nil(t, stock.LastMovementType)
}

func TestGetStock_ProductoEliminado(t *testing.T) {
	b := nuevoBanco(t, true, &entity.Product{
		ID: 100, AccountID: cuentaTest, Code: "SKU-100", Name: "Tornillo 3/8", Deleted: true,
	})
	sembrarHistoria(b)

	stock, err := b.reader.GetStock(context.Background(), cuentaTest, 100)
	require.NoError(t, err)
	// Eliminado pesa más que el saldo positivo.
	assert.Equal(t, entity.StockStatusDeleted, stock.Status)
	assert.True(t, stock.CurrentBalance.Equal(decimal.NewFromInt(15)))
}
