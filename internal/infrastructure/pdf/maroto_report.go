// Package pdf genera el reporte kardex en PDF: el listado de movimientos de
// la cuenta con su saldo corrido, tal como se lee en pantalla.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/kardex-api/internal/application/ledger"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ledger.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF y devuelve sus bytes. Un listado vacío
// produce un reporte válido sin filas.
func (g *MarotoReportGenerator) GenerateMovementReport(
	_ context.Context,
	generatedAt time.Time,
	rows []entity.MovementWithProduct,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de movimientos de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación + total (der).
func headerRow(generatedAt time.Time, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Kardex / Movimientos de stock", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(fmt.Sprintf("%d movimientos", total), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	hr := h
	hr.Align = align.Right
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", h)),
		col.New(3).Add(text.New("Producto", h)),
		col.New(2).Add(text.New("Tipo", h)),
		col.New(1).Add(text.New("Cantidad", hr)),
		col.New(1).Add(text.New("Saldo", hr)),
		col.New(2).Add(text.New("Documento", h)),
		col.New(1).Add(text.New("Usuario", hr)),
	)
}

func detailRow(r entity.MovementWithProduct) core.Row {
	d := props.Text{Size: 8}
	dr := d
	dr.Align = align.Right
	return row.New(6).Add(
		col.New(2).Add(text.New(r.CreatedAt.Format("02/01/2006 15:04"), d)),
		col.New(3).Add(text.New(fmt.Sprintf("%s (%s)", r.ProductName, r.ProductCode), d)),
		col.New(2).Add(text.New(r.Type.Name(), d)),
		col.New(1).Add(text.New(r.Quantity.String(), dr)),
		col.New(1).Add(text.New(r.BalanceAfter.String(), dr)),
		col.New(2).Add(text.New(r.ReferenceDocument, d)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.UserID), dr)),
	)
}
