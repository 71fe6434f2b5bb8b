package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
)

// ReportUseCase genera el reporte kardex en PDF a partir del listado de
// movimientos de la cuenta.
type ReportUseCase struct {
	reader    *Reader
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reader *Reader, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{reader: reader, generator: generator}
}

// MovementsPDF aplica los mismos filtros del listado y devuelve los bytes del
// PDF. Un resultado vacío es válido: el reporte sale sin filas.
func (uc *ReportUseCase) MovementsPDF(ctx context.Context, accountID int64, q dto.ListStockMovementsQuery) ([]byte, error) {
	rows, err := uc.reader.ListMovements(ctx, accountID, q)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateMovementReport(ctx, time.Now(), rows)
}
