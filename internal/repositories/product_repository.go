package repositories

import (
	"database/sql"

	intconfig "marquesa/internal/config"
	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
	"marquesa/internal/utils"
)

type ProductRepository struct {
	DB *sql.DB
}

func (r ProductRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const productColumns = `id, name, COALESCE(description,''), price, COALESCE(images,''),
	category_id, stock, personalizable, featured, created_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var images string
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&images,
		&p.CategoryID,
		&p.Stock,
		&p.Personalizable,
		&p.Featured,
		&p.CreatedAt,
	)
	p.Images = utils.SplitImageList(images)
	return p, err
}

func (r ProductRepository) ListFeatured() ([]models.Product, error) {
	rows, err := r.db().Query(`SELECT ` + productColumns + ` FROM products WHERE featured = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "error al consultar productos destacados", Err: err}
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "error al leer producto", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error al leer productos", Err: err}
	}
	return out, nil
}

func (r ProductRepository) GetByID(id int64) (models.Product, error) {
	row := r.db().QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return models.Product{}, domain.NotFoundError{Resource: "producto"}
	}
	if err != nil {
		return models.Product{}, domain.InternalError{Msg: "error al consultar producto", Err: err}
	}
	return p, nil
}
