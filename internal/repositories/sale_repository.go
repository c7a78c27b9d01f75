package repositories

import (
	"context"
	"database/sql"

	intconfig "marquesa/internal/config"
	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
)

type SaleRepository struct {
	DB *sql.DB
}

func (r SaleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SaleRepository) List(ctx context.Context) ([]models.Sale, error) {
	rows, err := r.db().QueryContext(ctx,
		`SELECT id, client_name, product_name, quantity, total, status, created_at
		 FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "error al consultar ventas", Err: err}
	}
	defer rows.Close()

	out := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.ClientName, &s.ProductName, &s.Quantity, &s.Total, &s.Status, &s.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "error al leer venta", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error al leer ventas", Err: err}
	}
	return out, nil
}

func (r SaleRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&total)
	if err != nil {
		return 0, domain.InternalError{Msg: "error al contar ventas", Err: err}
	}
	return total, nil
}

// TotalAmount sums completed sales in centavos.
func (r SaleRepository) TotalAmount(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	err := r.db().QueryRowContext(ctx, `SELECT SUM(total) FROM sales`).Scan(&total)
	if err != nil {
		return 0, domain.InternalError{Msg: "error al sumar ventas", Err: err}
	}
	return total.Int64, nil
}
