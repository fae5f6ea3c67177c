package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest body para POST /api/stock.
type CreateStockRequest struct {
	Product      string           `json:"product"`
	Category     string           `json:"category"`
	Quantity     int64            `json:"quantity"`
	ProductPrice decimal.Decimal  `json:"product_price"`
	ProductBuy   *decimal.Decimal `json:"product_buy,omitempty"`
}

// UpdateStockRequest body para PUT /api/stock/:id. Solo los campos presentes
// se aplican (update parcial).
type UpdateStockRequest struct {
	Product      *string          `json:"product,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Quantity     *int64           `json:"quantity,omitempty"`
	ProductPrice *decimal.Decimal `json:"product_price,omitempty"`
	ProductBuy   *decimal.Decimal `json:"product_buy,omitempty"`
}

// StockResponse producto en respuestas.
type StockResponse struct {
	ID           int64            `json:"id"`
	Product      string           `json:"product"`
	Category     string           `json:"category"`
	Quantity     int64            `json:"quantity"`
	ProductPrice decimal.Decimal  `json:"product_price"`
	ProductBuy   *decimal.Decimal `json:"product_buy,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// StockInfo resumen del producto anidado en BillItemResponse.
type StockInfo struct {
	ID           int64           `json:"id"`
	Product      string          `json:"product"`
	ProductPrice decimal.Decimal `json:"product_price"`
}
