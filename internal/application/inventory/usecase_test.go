package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/comandas-api/internal/application/dto"
	"github.com/tu-usuario/comandas-api/internal/application/inventory"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
)

// Fakes mínimos en memoria para el CRUD de estoque.

type fakeStockRepo struct {
	stocks map[int64]*entity.Stock
	nextID int64
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: make(map[int64]*entity.Stock)}
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	r.nextID++
	stock.ID = r.nextID
	cp := *stock
	r.stocks[stock.ID] = &cp
	return nil
}

func (r *fakeStockRepo) GetByID(id int64) (*entity.Stock, error) {
	st, ok := r.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStockRepo) GetByProduct(product string) (*entity.Stock, error) {
	for _, st := range r.stocks {
		if st.Product == product {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	out := make([]*entity.Stock, 0, len(r.stocks))
	for _, st := range r.stocks {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockRepo) Update(stock *entity.Stock) error {
	if _, ok := r.stocks[stock.ID]; !ok {
		return domain.ErrStockNotFound
	}
	cp := *stock
	r.stocks[stock.ID] = &cp
	return nil
}

func (r *fakeStockRepo) Delete(id int64) error {
	if _, ok := r.stocks[id]; !ok {
		return domain.ErrStockNotFound
	}
	delete(r.stocks, id)
	return nil
}

func (r *fakeStockRepo) Reserve(id int64, quantity int64) (int64, error) {
	st, ok := r.stocks[id]
	if !ok {
		return 0, domain.ErrStockNotFound
	}
	if st.Quantity < quantity {
		return 0, &domain.InsufficientStockError{Available: st.Quantity, Requested: quantity}
	}
	st.Quantity -= quantity
	return st.Quantity, nil
}

// fakeItemRepo solo necesita responder cuántas líneas referencian un producto.
type fakeItemRepo struct {
	countByStock map[int64]int64
}

func (r *fakeItemRepo) Create(item *entity.BillItem) error { return nil }

func (r *fakeItemRepo) ListByBillID(billID int64) ([]*entity.BillItem, error) { return nil, nil }

func (r *fakeItemRepo) CountByStockID(stockID int64) (int64, error) {
	return r.countByStock[stockID], nil
}

func newStockUseCase() (*inventory.StockUseCase, *fakeStockRepo, *fakeItemRepo) {
	stockRepo := newFakeStockRepo()
	itemRepo := &fakeItemRepo{countByStock: make(map[int64]int64)}
	return inventory.NewStockUseCase(stockRepo, itemRepo), stockRepo, itemRepo
}

func TestStockCreate(t *testing.T) {
	uc, _, _ := newStockUseCase()

	resp, err := uc.Create(context.Background(), 7, dto.CreateStockRequest{
		Product:      "  Cerveza  ",
		Category:     "Bebidas",
		Quantity:     10,
		ProductPrice: decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cerveza", resp.Product)
	assert.Equal(t, int64(10), resp.Quantity)
	assert.NotZero(t, resp.ID)
}

func TestStockCreate_Invalido(t *testing.T) {
	uc, _, _ := newStockUseCase()

	cases := []struct {
		name string
		in   dto.CreateStockRequest
	}{
		{"producto vacío", dto.CreateStockRequest{Category: "Bebidas", ProductPrice: decimal.RequireFromString("1")}},
		{"categoría vacía", dto.CreateStockRequest{Product: "Agua", ProductPrice: decimal.RequireFromString("1")}},
		{"cantidad negativa", dto.CreateStockRequest{Product: "Agua", Category: "Bebidas", Quantity: -1, ProductPrice: decimal.RequireFromString("1")}},
		{"precio cero", dto.CreateStockRequest{Product: "Agua", Category: "Bebidas", ProductPrice: decimal.Zero}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), 0, tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestStockCreate_ProductoDuplicado(t *testing.T) {
	uc, _, _ := newStockUseCase()

	in := dto.CreateStockRequest{
		Product:      "Café",
		Category:     "Bebidas",
		Quantity:     5,
		ProductPrice: decimal.RequireFromString("3.00"),
	}
	_, err := uc.Create(context.Background(), 0, in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), 0, in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStockUpdate_Parcial(t *testing.T) {
	uc, _, _ := newStockUseCase()

	created, err := uc.Create(context.Background(), 0, dto.CreateStockRequest{
		Product:      "Pizza",
		Category:     "Comida",
		Quantity:     8,
		ProductPrice: decimal.RequireFromString("20.00"),
	})
	require.NoError(t, err)

	price := decimal.RequireFromString("22.50")
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateStockRequest{ProductPrice: &price})
	require.NoError(t, err)
	assert.True(t, resp.ProductPrice.Equal(price))
	assert.Equal(t, "Pizza", resp.Product, "los campos ausentes no cambian")
	assert.Equal(t, int64(8), resp.Quantity)

	bad := decimal.Zero
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateStockRequest{ProductPrice: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockUpdate_NoEncontrado(t *testing.T) {
	uc, _, _ := newStockUseCase()

	qty := int64(3)
	_, err := uc.Update(context.Background(), 99, dto.UpdateStockRequest{Quantity: &qty})
	require.ErrorIs(t, err, domain.ErrStockNotFound)
}

func TestStockDelete(t *testing.T) {
	uc, _, itemRepo := newStockUseCase()

	created, err := uc.Create(context.Background(), 0, dto.CreateStockRequest{
		Product:      "Jugo",
		Category:     "Bebidas",
		Quantity:     4,
		ProductPrice: decimal.RequireFromString("4.00"),
	})
	require.NoError(t, err)

	// Referenciado por una línea de comanda: se rechaza.
	itemRepo.countByStock[created.ID] = 2
	require.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrConflict)

	itemRepo.countByStock[created.ID] = 0
	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrStockNotFound)
}
