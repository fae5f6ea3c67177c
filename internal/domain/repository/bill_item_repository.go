package repository

import "github.com/tu-usuario/comandas-api/internal/domain/entity"

// BillItemRepository define el puerto de persistencia para BillItem.
// Las líneas son inmutables: no hay Update ni Delete individual.
type BillItemRepository interface {
	Create(item *entity.BillItem) error
	ListByBillID(billID int64) ([]*entity.BillItem, error)
	// CountByStockID cuenta líneas que referencian un producto (para rechazar
	// el borrado de stock referenciado).
	CountByStockID(stockID int64) (int64, error)
}
