package repository

import "github.com/tu-usuario/comandas-api/internal/domain/entity"

// BillRepository define el puerto de persistencia para Bill.
type BillRepository interface {
	Create(bill *entity.Bill) error
	GetByID(id int64) (*entity.Bill, error)
	// GetOpenByCustomerName busca una comanda abierta por nombre de cliente
	// (nil si no hay).
	GetOpenByCustomerName(customerName string) (*entity.Bill, error)
	List(limit, offset int) ([]*entity.Bill, error)
	Update(bill *entity.Bill) error
	// Delete elimina la comanda; sus líneas caen en cascada (ver migración).
	Delete(id int64) error
}
