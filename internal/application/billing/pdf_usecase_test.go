package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/comandas-api/internal/application/billing"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
)

// fakeGenerator captura lo que el caso de uso arma en vez de renderizar.
type fakeGenerator struct {
	bill  *entity.Bill
	lines []billing.ReceiptLine
	total decimal.Decimal
}

func (g *fakeGenerator) GenerateReceiptPDF(_ context.Context, bill *entity.Bill, lines []billing.ReceiptLine, total decimal.Decimal) ([]byte, error) {
	g.bill = bill
	g.lines = lines
	g.total = total
	return []byte("%PDF-fake"), nil
}

func TestGetBillPDF(t *testing.T) {
	store := newFakeStore()
	cerveza := store.addStock(entity.Stock{
		Product:      "Cerveza",
		Category:     "Bebidas",
		Quantity:     10,
		ProductPrice: decimal.RequireFromString("9.99"),
	})
	pizza := store.addStock(entity.Stock{
		Product:      "Pizza",
		Category:     "Comida",
		Quantity:     10,
		ProductPrice: decimal.RequireFromString("20.00"),
	})
	bill := store.addBill(entity.Bill{CustomerName: "Marta"})
	uc := newBillUseCase(store)

	for _, in := range []billing.AddItemInput{
		{BillID: bill.ID, StockID: cerveza.ID, Quantity: 2},
		{BillID: bill.ID, StockID: pizza.ID, Quantity: 1},
	} {
		_, err := uc.AddItemToBill(context.Background(), in)
		require.NoError(t, err)
	}

	gen := &fakeGenerator{}
	receiptUC := billing.NewReceiptUseCase(
		&fakeBillRepo{s: store},
		&fakeItemRepo{s: store},
		&fakeStockRepo{s: store},
		gen,
	)

	pdf, err := receiptUC.GetBillPDF(context.Background(), bill.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, gen.bill)
	assert.Equal(t, "Marta", gen.bill.CustomerName)
	require.Len(t, gen.lines, 2)
	// Total = 2 * 9.99 + 1 * 20.00
	assert.True(t, gen.total.Equal(decimal.RequireFromString("39.98")),
		"total %s", gen.total)
	for _, line := range gen.lines {
		assert.True(t, line.Subtotal.Equal(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))))
	}
}

func TestGetBillPDF_ComandaInexistente(t *testing.T) {
	store := newFakeStore()
	receiptUC := billing.NewReceiptUseCase(
		&fakeBillRepo{s: store},
		&fakeItemRepo{s: store},
		&fakeStockRepo{s: store},
		&fakeGenerator{},
	)

	_, err := receiptUC.GetBillPDF(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrBillNotFound)
}
