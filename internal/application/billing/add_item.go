package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/comandas-api/internal/application/dto"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

// AddItemInput entrada para AddItemToBill.
// UnitPrice nil = tomar el precio actual del producto como snapshot.
type AddItemInput struct {
	BillID    int64
	StockID   int64
	Quantity  int64
	UnitPrice *decimal.Decimal
}

// AddItemToBill agrega N unidades de un producto a una comanda descontando el
// estoque en la misma transacción: la línea y el descuento se confirman
// juntos o ninguno queda.
//
// Precondiciones, en orden: la comanda existe, el producto existe, la
// cantidad es positiva, hay estoque suficiente. Cualquier falla deja el
// estoque intacto. La operación no es idempotente: dos llamadas iguales
// crean dos líneas y descuentan dos veces.
func (uc *BillUseCase) AddItemToBill(ctx context.Context, in AddItemInput) (*dto.BillItemResponse, error) {
	now := time.Now()
	var item *entity.BillItem
	var stock *entity.Stock

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		billRepo repository.BillRepository,
		itemRepo repository.BillItemRepository,
	) error {
		bill, err := billRepo.GetByID(in.BillID)
		if err != nil {
			return err
		}
		if bill == nil {
			return domain.ErrBillNotFound
		}

		stock, err = stockRepo.GetByID(in.StockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrStockNotFound
		}

		if in.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}

		// Snapshot del precio: el de la petición si viene, si no el actual
		// del producto. Cambios futuros de precio no tocan esta línea.
		unitPrice := stock.ProductPrice
		if in.UnitPrice != nil {
			if in.UnitPrice.LessThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			unitPrice = *in.UnitPrice
		}

		// Descuento condicional en un solo statement: el guard corre en la
		// misma escritura, así reservas concurrentes nunca sobregiran.
		if _, err := stockRepo.Reserve(in.StockID, in.Quantity); err != nil {
			return err
		}

		item = &entity.BillItem{
			BillID:    in.BillID,
			StockID:   in.StockID,
			Quantity:  in.Quantity,
			UnitPrice: unitPrice,
			CreatedAt: now,
		}
		return itemRepo.Create(item)
	})
	if err != nil {
		return nil, err
	}

	return toBillItemResponse(item, stock), nil
}

func toBillItemResponse(item *entity.BillItem, stock *entity.Stock) *dto.BillItemResponse {
	resp := &dto.BillItemResponse{
		ID:        item.ID,
		BillID:    item.BillID,
		StockID:   item.StockID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		CreatedAt: item.CreatedAt,
	}
	if stock != nil {
		resp.Stock = &dto.StockInfo{
			ID:           stock.ID,
			Product:      stock.Product,
			ProductPrice: stock.ProductPrice,
		}
	}
	return resp
}
