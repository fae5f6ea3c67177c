package billing

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/comandas-api/internal/application/dto"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

// BillUseCase casos de uso de comandas: CRUD y AddItemToBill (add_item.go).
type BillUseCase struct {
	txRunner  TxRunner
	billRepo  repository.BillRepository
	itemRepo  repository.BillItemRepository
	stockRepo repository.StockRepository
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(
	txRunner TxRunner,
	billRepo repository.BillRepository,
	itemRepo repository.BillItemRepository,
	stockRepo repository.StockRepository,
) *BillUseCase {
	return &BillUseCase{
		txRunner:  txRunner,
		billRepo:  billRepo,
		itemRepo:  itemRepo,
		stockRepo: stockRepo,
	}
}

// CreateBill abre una comanda para un cliente. Un cliente solo puede tener
// una comanda abierta a la vez.
func (uc *BillUseCase) CreateBill(ctx context.Context, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.billRepo.GetOpenByCustomerName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	bill := &entity.Bill{
		CustomerName: name,
		Status:       entity.BillStatusOpen,
		CreatedAt:    time.Now(),
	}
	if err := uc.billRepo.Create(bill); err != nil {
		return nil, err
	}
	return uc.toBillResponse(bill, nil), nil
}

// ListBills lista comandas paginadas.
func (uc *BillUseCase) ListBills(ctx context.Context, limit, offset int) ([]*dto.BillResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	bills, err := uc.billRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, uc.toBillResponse(b, nil))
	}
	return out, nil
}

// GetBill obtiene una comanda con sus líneas.
func (uc *BillUseCase) GetBill(ctx context.Context, id int64) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrBillNotFound
	}
	items, err := uc.ListBillItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toBillResponse(bill, items), nil
}

// ListBillItems lista las líneas de una comanda con el resumen del producto.
func (uc *BillUseCase) ListBillItems(ctx context.Context, billID int64) ([]dto.BillItemResponse, error) {
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
	out := make([]dto.BillItemResponse, 0, len(items))
	for _, it := range items {
		stock, err := uc.stockRepo.GetByID(it.StockID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toBillItemResponse(it, stock))
	}
	return out, nil
}

// UpdateBill aplica un update parcial (nombre de cliente y/o estado).
func (uc *BillUseCase) UpdateBill(ctx context.Context, id int64, in dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrBillNotFound
	}
	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		bill.CustomerName = name
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.BillStatusOpen, entity.BillStatusClosed:
			bill.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.billRepo.Update(bill); err != nil {
		return nil, err
	}
	return uc.toBillResponse(bill, nil), nil
}

// DeleteBill elimina la comanda y sus líneas (cascade). El estoque no se
// repone: una comanda borrada se trata como venta anulada, no devolución.
func (uc *BillUseCase) DeleteBill(ctx context.Context, id int64) error {
	return uc.billRepo.Delete(id)
}

func (uc *BillUseCase) toBillResponse(bill *entity.Bill, items []dto.BillItemResponse) *dto.BillResponse {
	if items == nil {
		items = []dto.BillItemResponse{}
	}
	return &dto.BillResponse{
		ID:           bill.ID,
		CustomerName: bill.CustomerName,
		Status:       bill.Status,
		CreatedAt:    bill.CreatedAt,
		Items:        items,
	}
}
