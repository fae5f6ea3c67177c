package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

var _ repository.BillItemRepository = (*BillItemRepo)(nil)

// BillItemRepo implementación de BillItemRepository sobre PostgreSQL (usable con pool o tx).
type BillItemRepo struct {
	q Querier
}

// NewBillItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillItemRepository(q Querier) *BillItemRepo {
	return &BillItemRepo{q: q}
}

// Create persiste una línea de comanda y asigna su ID.
func (r *BillItemRepo) Create(item *entity.BillItem) error {
	query := `
		INSERT INTO bill_item (bill_id, stock_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.BillID, item.StockID, item.Quantity, item.UnitPrice, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// ListByBillID lista las líneas de una comanda en orden de creación.
func (r *BillItemRepo) ListByBillID(billID int64) ([]*entity.BillItem, error) {
	query := `
		SELECT id, bill_id, stock_id, quantity, unit_price, created_at
		FROM bill_item WHERE bill_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()

	var out []*entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.StockID, &it.Quantity, &it.UnitPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// CountByStockID cuenta líneas que referencian un producto.
func (r *BillItemRepo) CountByStockID(stockID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM bill_item WHERE stock_id = $1`, stockID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bill items by stock: %w", err)
	}
	return n, nil
}
