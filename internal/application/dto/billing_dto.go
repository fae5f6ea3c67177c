package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBillRequest body para POST /api/bills.
type CreateBillRequest struct {
	CustomerName string `json:"customer_name"`
}

// UpdateBillRequest body para PUT /api/bills/:id (update parcial).
type UpdateBillRequest struct {
	CustomerName *string `json:"customer_name,omitempty"`
	Status       *string `json:"status,omitempty"` // open | closed
}

// BillResponse comanda con sus líneas.
type BillResponse struct {
	ID           int64              `json:"id"`
	CustomerName string             `json:"customer_name"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []BillItemResponse `json:"items"`
}

// AddItemRequest body para POST /api/bills/:id/items.
// UnitPrice es opcional: si va vacío se toma el precio actual del producto
// (snapshot); si viene, se usa tal cual (descuentos / precio especial).
type AddItemRequest struct {
	StockID   int64            `json:"stock_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// BillItemResponse línea de comanda con resumen del producto.
type BillItemResponse struct {
	ID        int64           `json:"id"`
	BillID    int64           `json:"bill_id"`
	StockID   int64           `json:"stock_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	Stock     *StockInfo      `json:"stock,omitempty"`
}
