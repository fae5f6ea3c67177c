package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/comandas-api/internal/domain"
	"github.com/tu-usuario/comandas-api/internal/domain/entity"
	"github.com/tu-usuario/comandas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, product, category, quantity, product_price, product_buy, created_at, created_by`

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(
		&s.ID, &s.Product, &s.Category, &s.Quantity,
		&s.ProductPrice, &s.ProductBuy, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un producto nuevo y asigna su ID.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product, category, quantity, product_price, product_buy, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		stock.Product, stock.Category, stock.Quantity,
		stock.ProductPrice, stock.ProductBuy, stock.CreatedAt, stock.CreatedBy,
	).Scan(&stock.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *StockRepo) GetByID(id int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetByProduct obtiene un producto por nombre (nil si no existe).
func (r *StockRepo) GetByProduct(product string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE product = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, product))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by product: %w", err)
	}
	return s, nil
}

// List lista productos paginados por ID.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update guarda los campos mutables del producto.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stock
		SET product = $2, category = $3, quantity = $4, product_price = $5, product_buy = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Product, stock.Category, stock.Quantity,
		stock.ProductPrice, stock.ProductBuy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStockNotFound
	}
	return nil
}

// Delete elimina el producto. Retorna ErrConflict si está referenciado por
// líneas de comanda (la FK es ON DELETE RESTRICT).
func (r *StockRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStockNotFound
	}
	return nil
}

// Reserve descuenta quantity en un único UPDATE condicional: el guard
// quantity >= $2 corre dentro del statement, así dos reservas concurrentes
// nunca pueden dejar la fila en negativo. Retorna la cantidad restante.
func (r *StockRepo) Reserve(id int64, quantity int64) (int64, error) {
	query := `
		UPDATE stock SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity`
	var remaining int64
	err := r.q.QueryRow(context.Background(), query, id, quantity).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("reserve stock: %w", err)
	}

	// Cero filas afectadas: o el producto no existe o no alcanza. Leer la
	// cantidad actual para el diagnóstico (misma tx, la fila no cambió).
	var available int64
	err = r.q.QueryRow(context.Background(), `SELECT quantity FROM stock WHERE id = $1`, id).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrStockNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("reserve stock: leer cantidad: %w", err)
	}
	return 0, &domain.InsufficientStockError{Available: available, Requested: quantity}
}
