package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/ledger"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// StockMovementHandler maneja las peticiones del ledger de movimientos
// (protegido: requiere la credencial del middleware de auth).
type StockMovementHandler struct {
	writer *ledger.Writer
	reader *ledger.Reader
	report *ledger.ReportUseCase
}

// NewStockMovementHandler construye el handler.
func NewStockMovementHandler(writer *ledger.Writer, reader *ledger.Reader, report *ledger.ReportUseCase) *StockMovementHandler {
	return &StockMovementHandler{writer: writer, reader: reader, report: report}
}

// Create registra un movimiento y devuelve el identificador asignado.
func (h *StockMovementHandler) Create(c *fiber.Ctx) error {
	accountID, userID := GetAccountID(c), GetUserID(c)
	if accountID == 0 || userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateStockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.writer.Append(c.Context(), accountID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateStockMovementResponse{IDStockMovement: id})
}

// List devuelve movimientos de la cuenta según filtros, orden y límite.
func (h *StockMovementHandler) List(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var q dto.ListStockMovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	rows, err := h.reader.ListMovements(c.Context(), accountID, q)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.StockMovementItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementItem(r))
	}
	return c.JSON(items)
}

// Report devuelve el listado en PDF (reporte kardex) con los mismos filtros.
func (h *StockMovementHandler) Report(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var q dto.ListStockMovementsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	pdf, err := h.report.MovementsPDF(c.Context(), accountID, q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdf)
}

func toMovementItem(r entity.MovementWithProduct) dto.StockMovementItem {
	return dto.StockMovementItem{
		IDStockMovement:   r.ID,
		IDProduct:         r.ProductID,
		ProductName:       r.ProductName,
		ProductCode:       r.ProductCode,
		MovementType:      int(r.Type),
		MovementTypeName:  r.Type.Name(),
		Quantity:          r.Quantity,
		BalanceAfter:      r.BalanceAfter,
		ReferenceDocument: optional(r.ReferenceDocument),
		BatchNumber:       optional(r.BatchNumber),
		ExpirationDate:    optionalDate(r.ExpirationDate),
		Location:          optional(r.Location),
		Reason:            optional(r.Reason),
		IDUser:            r.UserID,
		DateCreated:       r.CreatedAt.Format(time.RFC3339),
	}
}

// optional convierte "" a null en el wire, como espera el cliente.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
