package billing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

// ReceiptUseCase genera el PDF de una comanda (recibo para el cliente).
type ReceiptUseCase struct {
	billRepo  repository.BillRepository
	itemRepo  repository.BillItemRepository
	stockRepo repository.StockRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	billRepo repository.BillRepository,
	itemRepo repository.BillItemRepository,
	stockRepo repository.StockRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		billRepo:  billRepo,
		itemRepo:  itemRepo,
		stockRepo: stockRepo,
		generator: generator,
	}
}

// GetBillPDF arma las líneas del recibo (producto, cantidad, precio snapshot,
// subtotal) y delega el render al generador.
func (uc *ReceiptUseCase) GetBillPDF(ctx context.Context, billID int64) ([]byte, error) {
	bill, err := uc.billRepo.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrBillNotFound
	}
	items, err := uc.itemRepo.ListByBillID(billID)
	if err != nil {
		return nil, err
	}

	lines := make([]ReceiptLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		product := "?"
		stock, err := uc.stockRepo.GetByID(it.StockID)
		if err != nil {
			return nil, err
		}
		if stock != nil {
			product = stock.Product
		}
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		lines = append(lines, ReceiptLine{
			Product:   product,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return uc.generator.GenerateReceiptPDF(ctx, bill, lines, total)
}
