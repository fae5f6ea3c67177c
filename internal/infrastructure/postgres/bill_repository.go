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

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository sobre PostgreSQL (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	if err := row.Scan(&b.ID, &b.CustomerName, &b.Status, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una comanda nueva y asigna su ID.
func (r *BillRepo) Create(bill *entity.Bill) error {
	query := `
		INSERT INTO bill (customer_name, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		bill.CustomerName, bill.Status, bill.CreatedAt,
	).Scan(&bill.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene una comanda por ID (nil si no existe).
func (r *BillRepo) GetByID(id int64) (*entity.Bill, error) {
	query := `SELECT id, customer_name, status, created_at FROM bill WHERE id = $1`
	b, err := scanBill(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// GetOpenByCustomerName busca una comanda abierta por cliente (nil si no hay).
func (r *BillRepo) GetOpenByCustomerName(customerName string) (*entity.Bill, error) {
	query := `
		SELECT id, customer_name, status, created_at
		FROM bill WHERE customer_name = $1 AND status = $2`
	b, err := scanBill(r.q.QueryRow(context.Background(), query, customerName, entity.BillStatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill by customer: %w", err)
	}
	return b, nil
}

// List lista comandas paginadas por ID.
func (r *BillRepo) List(limit, offset int) ([]*entity.Bill, error) {
	query := `SELECT id, customer_name, status, created_at FROM bill ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var out []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update guarda nombre de cliente y estado.
func (r *BillRepo) Update(bill *entity.Bill) error {
	query := `UPDATE bill SET customer_name = $2, status = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, bill.ID, bill.CustomerName, bill.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}

// Delete elimina la comanda; las líneas caen por ON DELETE CASCADE.
func (r *BillRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM bill WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}
