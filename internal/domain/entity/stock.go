package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa un producto del estoque con su cantidad disponible.
// Quantity nunca es negativa: el único camino de descuento durante una venta
// es StockRepository.Reserve (descuento condicional en un solo statement).
type Stock struct {
	ID           int64
	Product      string // nombre del producto, único
	Category     string
	Quantity     int64
	ProductPrice decimal.Decimal  // precio de venta
	ProductBuy   *decimal.Decimal // precio de compra, opcional
	CreatedAt    time.Time
	CreatedBy    *int64 // usuario que registró el producto, opcional
}
