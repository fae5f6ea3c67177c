package billing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos atados a
// ella. Si fn retorna error, todo lo escrito dentro se descarta (rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		billRepo repository.BillRepository,
		itemRepo repository.BillItemRepository,
	) error) error
}

// ReceiptLine línea renderizada en el PDF de la comanda.
type ReceiptLine struct {
	Product   string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ReceiptPDFGenerator puerto de generación del PDF de la comanda.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, bill *entity.Bill, lines []ReceiptLine, total decimal.Decimal) ([]byte, error)
}
