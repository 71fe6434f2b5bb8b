package dto

import "github.com/shopspring/decimal"

// CreateStockMovementRequest body para POST /api/internal/stock-movements.
// Las fechas viajan como string ISO (RFC3339 o YYYY-MM-DD).
type CreateStockMovementRequest struct {
	ProductID         int64           `json:"idProduct"`
	MovementType      int             `json:"movementType"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReferenceDocument string          `json:"referenceDocument,omitempty"`
	BatchNumber       string          `json:"batchNumber,omitempty"`
	ExpirationDate    string          `json:"expirationDate,omitempty"`
	Location          string          `json:"location,omitempty"`
	Reason            string          `json:"reason,omitempty"`
}

// CreateStockMovementResponse identificador asignado al asiento.
type CreateStockMovementResponse struct {
	IDStockMovement int64 `json:"idStockMovement"`
}

// ListStockMovementsQuery query params para GET /api/internal/stock-movements.
type ListStockMovementsQuery struct {
	StartDate    string `query:"startDate"`
	EndDate      string `query:"endDate"`
	ProductID    *int64 `query:"idProduct"`
	MovementType *int   `query:"movementType"`
	UserID       *int64 `query:"idUser"`
	OrderBy      string `query:"orderBy"`
	LimitRecords *int   `query:"limitRecords"`
}

// MovementHistoryQuery query params para la historia de un producto.
type MovementHistoryQuery struct {
	StartDate    string `query:"startDate"`
	EndDate      string `query:"endDate"`
	MovementType *int   `query:"movementType"`
}

// StockMovementItem fila del listado por cuenta.
type StockMovementItem struct {
	IDStockMovement   int64           `json:"idStockMovement"`
	IDProduct         int64           `json:"idProduct"`
	ProductName       string          `json:"productName"`
	ProductCode       string          `json:"productCode"`
	MovementType      int             `json:"movementType"`
	MovementTypeName  string          `json:"movementTypeName"`
	Quantity          decimal.Decimal `json:"quantity"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	ReferenceDocument *string         `json:"referenceDocument"`
	BatchNumber       *string         `json:"batchNumber"`
	ExpirationDate    *string         `json:"expirationDate"`
	Location          *string         `json:"location"`
	Reason            *string         `json:"reason"`
	IDUser            int64           `json:"idUser"`
	DateCreated       string          `json:"dateCreated"`
}

// MovementHistoryItem fila de la historia de un producto, con el saldo después
// de cada movimiento para leer la suma corrida de arriba hacia abajo.
type MovementHistoryItem struct {
	IDStockMovement   int64           `json:"idStockMovement"`
	MovementType      int             `json:"movementType"`
	MovementTypeName  string          `json:"movementTypeName"`
	Quantity          decimal.Decimal `json:"quantity"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	ReferenceDocument *string         `json:"referenceDocument"`
	BatchNumber       *string         `json:"batchNumber"`
	ExpirationDate    *string         `json:"expirationDate"`
	Location          *string         `json:"location"`
	Reason            *string         `json:"reason"`
	IDUser            int64           `json:"idUser"`
	DateCreated       string          `json:"dateCreated"`
}

// ProductStockResponse proyección del stock actual de un producto.
type ProductStockResponse struct {
	IDProduct            int64           `json:"idProduct"`
	ProductName          string          `json:"productName"`
	ProductCode          string          `json:"productCode"`
	CurrentStock         decimal.Decimal `json:"currentStock"`
	LastMovementDate     *string         `json:"lastMovementDate"`
	LastMovementType     *int            `json:"lastMovementType"`
	LastMovementTypeName *string         `json:"lastMovementTypeName"`
	Status               string          `json:"status"`
	Deleted              bool            `json:"deleted"`
}
