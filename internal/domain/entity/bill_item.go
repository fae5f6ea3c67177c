package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem es una línea inmutable de una comanda: N unidades de un producto
// al precio capturado en el momento de la venta. UnitPrice es un snapshot;
// cambios posteriores en Stock.ProductPrice no alteran líneas históricas.
type BillItem struct {
	ID        int64
	BillID    int64
	StockID   int64
	Quantity  int64
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}
