package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/comandas-api/internal/application/dto"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

// StockUseCase CRUD de productos del estoque. El descuento por venta no pasa
// por acá: eso es AddItemToBill (billing) vía StockRepository.Reserve.
type StockUseCase struct {
	stockRepo repository.StockRepository
	itemRepo  repository.BillItemRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, itemRepo repository.BillItemRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, itemRepo: itemRepo}
}

// Create registra un producto nuevo. El nombre es único.
func (uc *StockUseCase) Create(ctx context.Context, userID int64, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	product := strings.TrimSpace(in.Product)
	if product == "" || strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.ProductPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductBuy != nil && !in.ProductBuy.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.stockRepo.GetByProduct(product)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	stock := &entity.Stock{
		Product:      product,
		Category:     in.Category,
		Quantity:     in.Quantity,
		ProductPrice: in.ProductPrice,
		ProductBuy:   in.ProductBuy,
		CreatedAt:    time.Now(),
	}
	if userID > 0 {
		stock.CreatedBy = &userID
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// List lista productos paginados.
func (uc *StockUseCase) List(ctx context.Context, limit, offset int) ([]*dto.StockResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	stocks, err := uc.stockRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockResponse(s))
	}
	return out, nil
}

// GetByID obtiene un producto.
func (uc *StockUseCase) GetByID(ctx context.Context, id int64) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrStockNotFound
	}
	return toStockResponse(stock), nil
}

// Update aplica un update parcial validando cada campo presente.
// Este camino sirve para correcciones manuales de estoque; no serializa
// contra Reserve más allá de lo que garantiza el UPDATE por fila.
func (uc *StockUseCase) Update(ctx context.Context, id int64, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrStockNotFound
	}
	if in.Product != nil {
		product := strings.TrimSpace(*in.Product)
		if product == "" {
			return nil, domain.ErrInvalidInput
		}
		stock.Product = product
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, domain.ErrInvalidInput
		}
		stock.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		stock.Quantity = *in.Quantity
	}
	if in.ProductPrice != nil {
		if !in.ProductPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		stock.ProductPrice = *in.ProductPrice
	}
	if in.ProductBuy != nil {
		if !in.ProductBuy.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		stock.ProductBuy = in.ProductBuy
	}
	if err := uc.stockRepo.Update(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// Delete elimina un producto. Se rechaza con ErrConflict si alguna línea de
// comanda lo referencia (borrar historial de ventas no es opción).
func (uc *StockUseCase) Delete(ctx context.Context, id int64) error {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrStockNotFound
	}
	n, err := uc.itemRepo.CountByStockID(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.stockRepo.Delete(id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:           s.ID,
		Product:      s.Product,
		Category:     s.Category,
		Quantity:     s.Quantity,
		ProductPrice: s.ProductPrice,
		ProductBuy:   s.ProductBuy,
		CreatedAt:    s.CreatedAt,
	}
}
