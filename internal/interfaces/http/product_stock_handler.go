package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/ledger"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// ProductStockHandler consultas derivadas del kardex por producto: stock
// actual e historia de movimientos.
type ProductStockHandler struct {
	reader *ledger.Reader
}

// NewProductStockHandler construye el handler.
func NewProductStockHandler(reader *ledger.Reader) *ProductStockHandler {
	return &ProductStockHandler{reader: reader}
}

// GetStock devuelve la proyección del stock actual del producto.
func (h *ProductStockHandler) GetStock(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	ps, err := h.reader.GetStock(c.Context(), accountID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponse(ps))
}

// MovementHistory devuelve la historia del producto, del más antiguo al más
// reciente, con el saldo después de cada movimiento.
func (h *ProductStockHandler) MovementHistory(c *fiber.Ctx) error {
	accountID := GetAccountID(c)
	if accountID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de producto inválido"})
	}
	var q dto.MovementHistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	history, err := h.reader.ListHistory(c.Context(), accountID, productID, q)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementHistoryItem, 0, len(history))
	for _, m := range history {
		items = append(items, toHistoryItem(m))
	}
	return c.JSON(items)
}

func parseProductID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}

func toStockResponse(ps *entity.ProductStock) dto.ProductStockResponse {
	out := dto.ProductStockResponse{
		IDProduct:    ps.ProductID,
		ProductName:  ps.ProductName,
		ProductCode:  ps.ProductCode,
		CurrentStock: ps.CurrentBalance,
		Status:       string(ps.Status),
		Deleted:      ps.Deleted,
	}
	if ps.LastMovementDate != nil {
		s := ps.LastMovementDate.Format(time.RFC3339)
		out.LastMovementDate = &s
	}
	if ps.LastMovementType != nil {
		t := int(*ps.LastMovementType)
		name := ps.LastMovementType.Name()
		out.LastMovementType = &t
		out.LastMovementTypeName = &name
	}
	return out
}

func toHistoryItem(m entity.StockMovement) dto.MovementHistoryItem {
	return dto.MovementHistoryItem{
		IDStockMovement:   m.ID,
		MovementType:      int(m.Type),
		MovementTypeName:  m.Type.Name(),
		Quantity:          m.Quantity,
		BalanceAfter:      m.BalanceAfter,
		ReferenceDocument: optional(m.ReferenceDocument),
		BatchNumber:       optional(m.BatchNumber),
		ExpirationDate:    optionalDate(m.ExpirationDate),
		Location:          optional(m.Location),
		Reason:            optional(m.Reason),
		IDUser:            m.UserID,
		DateCreated:       m.CreatedAt.Format(time.RFC3339),
	}
}
