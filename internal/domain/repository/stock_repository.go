package repository

import "github.com/tu-usuario/comandas-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para Stock.
// Reserve es el único camino de escritura de Quantity durante una venta.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id int64) (*entity.Stock, error)
	GetByProduct(product string) (*entity.Stock, error)
	List(limit, offset int) ([]*entity.Stock, error)
	Update(stock *entity.Stock) error
	Delete(id int64) error
	// Reserve descuenta quantity con un único UPDATE condicional
	// (WHERE quantity >= solicitado) y retorna la cantidad restante.
	// Retorna *domain.InsufficientStockError si no alcanza y
	// domain.ErrStockNotFound si el producto no existe.
	Reserve(id int64, quantity int64) (int64, error)
}
