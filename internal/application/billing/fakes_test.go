package billing_test

import (
	"context"
	"errors"
	"sync"

	"github.com/tu-usuario/comandas-api/internal/application/billing"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

// Fakes en memoria que reproducen el contrato del TxRunner real:
// un mutex serializa las transacciones (equivalente al bloqueo por fila del
// UPDATE condicional) y un snapshot restaurado en error reproduce el rollback.

var errInsertFailed = errors.New("insert bill item: fallo simulado")

type fakeStore struct {
	mu     sync.Mutex
	stocks map[int64]*entity.Stock
	bills  map[int64]*entity.Bill
	items  map[int64]*entity.BillItem

	nextStockID int64
	nextBillID  int64
	nextItemID  int64

	// failItemInsert simula una falla de storage en el insert de la línea,
	// después de que el descuento de stock ya corrió dentro de la tx.
	failItemInsert bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stocks: make(map[int64]*entity.Stock),
		bills:  make(map[int64]*entity.Bill),
		items:  make(map[int64]*entity.BillItem),
	}
}

func (s *fakeStore) addStock(st entity.Stock) *entity.Stock {
	s.nextStockID++
	st.ID = s.nextStockID
	s.stocks[st.ID] = &st
	return &st
}

func (s *fakeStore) addBill(b entity.Bill) *entity.Bill {
	s.nextBillID++
	b.ID = s.nextBillID
	if b.Status == "" {
		b.Status = entity.BillStatusOpen
	}
	s.bills[b.ID] = &b
	return &b
}

func (s *fakeStore) stockQuantity(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stocks[id]; ok {
		return st.Quantity
	}
	return -1
}

func (s *fakeStore) itemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type storeSnapshot struct {
	stocks     map[int64]entity.Stock
	bills      map[int64]entity.Bill
	items      map[int64]entity.BillItem
	nextItemID int64
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		stocks:     make(map[int64]entity.Stock, len(s.stocks)),
		bills:      make(map[int64]entity.Bill, len(s.bills)),
		items:      make(map[int64]entity.BillItem, len(s.items)),
		nextItemID: s.nextItemID,
	}
	for id, st := range s.stocks {
		snap.stocks[id] = *st
	}
	for id, b := range s.bills {
		snap.bills[id] = *b
	}
	for id, it := range s.items {
		snap.items[id] = *it
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.stocks = make(map[int64]*entity.Stock, len(snap.stocks))
	s.bills = make(map[int64]*entity.Bill, len(snap.bills))
	s.items = make(map[int64]*entity.BillItem, len(snap.items))
	for id, st := range snap.stocks {
		cp := st
		s.stocks[id] = &cp
	}
	for id, b := range snap.bills {
		cp := b
		s.bills[id] = &cp
	}
	for id, it := range snap.items {
		cp := it
		s.items[id] = &cp
	}
	s.nextItemID = snap.nextItemID
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	billRepo repository.BillRepository,
	itemRepo repository.BillItemRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	err := fn(
		&fakeStockRepo{s: r.store},
		&fakeBillRepo{s: r.store},
		&fakeItemRepo{s: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ── Repositorios ──────────────────────────────────────────────────────────────
// No toman el mutex: fuera de una tx los tests son secuenciales y dentro de
// una tx el lock ya lo tiene Run.

type fakeStockRepo struct {
	s *fakeStore
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	created := r.s.addStock(*stock)
	stock.ID = created.ID
	return nil
}

func (r *fakeStockRepo) GetByID(id int64) (*entity.Stock, error) {
	st, ok := r.s.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (r *fakeStockRepo) GetByProduct(product string) (*entity.Stock, error) {
	for _, st := range r.s.stocks {
		if st.Product == product {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	out := make([]*entity.Stock, 0, len(r.s.stocks))
	for _, st := range r.s.stocks {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockRepo) Update(stock *entity.Stock) error {
	if _, ok := r.s.stocks[stock.ID]; !ok {
		return domain.ErrStockNotFound
	}
	cp := *stock
	r.s.stocks[stock.ID] = &cp
	return nil
}

func (r *fakeStockRepo) Delete(id int64) error {
	if _, ok := r.s.stocks[id]; !ok {
		return domain.ErrStockNotFound
	}
	delete(r.s.stocks, id)
	return nil
}

func (r *fakeStockRepo) Reserve(id int64, quantity int64) (int64, error) {
	st, ok := r.s.stocks[id]
	if !ok {
		return 0, domain.ErrStockNotFound
	}
	if st.Quantity < quantity {
		return 0, &domain.InsufficientStockError{Available: st.Quantity, Requested: quantity}
	}
	st.Quantity -= quantity
	return st.Quantity, nil
}

type fakeBillRepo struct {
	s *fakeStore
}

func (r *fakeBillRepo) Create(bill *entity.Bill) error {
	created := r.s.addBill(*bill)
	bill.ID = created.ID
	return nil
}

func (r *fakeBillRepo) GetByID(id int64) (*entity.Bill, error) {
	b, ok := r.s.bills[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBillRepo) GetOpenByCustomerName(customerName string) (*entity.Bill, error) {
	for _, b := range r.s.bills {
		if b.CustomerName == customerName && b.Status == entity.BillStatusOpen {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) List(limit, offset int) ([]*entity.Bill, error) {
	out := make([]*entity.Bill, 0, len(r.s.bills))
	for _, b := range r.s.bills {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBillRepo) Update(bill *entity.Bill) error {
	if _, ok := r.s.bills[bill.ID]; !ok {
		return domain.ErrBillNotFound
	}
	cp := *bill
	r.s.bills[bill.ID] = &cp
	return nil
}

func (r *fakeBillRepo) Delete(id int64) error {
	if _, ok := r.s.bills[id]; !ok {
		return domain.ErrBillNotFound
	}
	delete(r.s.bills, id)
	for itemID, it := range r.s.items {
		if it.BillID == id {
			delete(r.s.items, itemID)
		}
	}
	return nil
}

type fakeItemRepo struct {
	s *fakeStore
}

func (r *fakeItemRepo) Create(item *entity.BillItem) error {
	if r.s.failItemInsert {
		return errInsertFailed
	}
	r.s.nextItemID++
	item.ID = r.s.nextItemID
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) ListByBillID(billID int64) ([]*entity.BillItem, error) {
	var out []*entity.BillItem
	for _, it := range r.s.items {
		if it.BillID == billID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) CountByStockID(stockID int64) (int64, error) {
	var n int64
	for _, it := range r.s.items {
		if it.StockID == stockID {
			n++
		}
	}
	return n, nil
}

// newBillUseCase arma el caso de uso con los fakes sobre un mismo store.
func newBillUseCase(store *fakeStore) *billing.BillUseCase {
	return billing.NewBillUseCase(
		&fakeTxRunner{store: store},
		&fakeBillRepo{s: store},
		&fakeItemRepo{s: store},
		&fakeStockRepo{s: store},
	)
}
