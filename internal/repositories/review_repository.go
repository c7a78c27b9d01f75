package repositories

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	intconfig "marquesa/internal/config"
	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
)

// NewReviewID generates a 24-char hex id, the shape the legacy
// document store exposed and clients still validate against.
func NewReviewID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for id generation
		panic(err)
	}
	return hex.EncodeToString(buf)
}

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reviewColumns = `id, product_id, client_name, profile_picture, rating,
	message, COALESCE(response,''), status, image_url, video_url, created_at`

func scanReview(row interface{ Scan(...any) error }) (models.Review, error) {
	var rev models.Review
	var status string
	err := row.Scan(
		&rev.ID,
		&rev.ProductID,
		&rev.ClientName,
		&rev.ProfilePicture,
		&rev.Rating,
		&rev.Message,
		&rev.Response,
		&status,
		&rev.ImageURL,
		&rev.VideoURL,
		&rev.CreatedAt,
	)
	rev.Status = models.ReviewStatus(status)
	return rev, err
}

// ListAll returns every review, newest first. Filtering happens in
// memory afterwards, never in SQL.
func (r ReviewRepository) ListAll() ([]models.Review, error) {
	rows, err := r.db().Query(`SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "error al consultar reseñas", Err: err}
	}
	defer rows.Close()

	return collectReviews(rows)
}

// ListVisibleByProduct returns only the reviews the storefront may show.
func (r ReviewRepository) ListVisibleByProduct(productID int64) ([]models.Review, error) {
	rows, err := r.db().Query(
		`SELECT `+reviewColumns+` FROM reviews
		 WHERE product_id = ? AND status IN (?, ?)
		 ORDER BY created_at DESC`,
		productID, string(models.ReviewStatusApproved), string(models.ReviewStatusReplied),
	)
	if err != nil {
		return nil, domain.InternalError{Msg: "error al consultar reseñas del producto", Err: err}
	}
	defer rows.Close()

	return collectReviews(rows)
}

func collectReviews(rows *sql.Rows) ([]models.Review, error) {
	out := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "error al leer reseña", Err: err}
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error al leer reseñas", Err: err}
	}
	return out, nil
}

func (r ReviewRepository) GetByID(id string) (models.Review, error) {
	row := r.db().QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, id)
	rev, err := scanReview(row)
	if err == sql.ErrNoRows {
		return models.Review{}, domain.NotFoundError{Resource: "reseña"}
	}
	if err != nil {
		return models.Review{}, domain.InternalError{Msg: "error al consultar reseña", Err: err}
	}
	return rev, nil
}

// Create inserts a pending review, assigning the id and timestamp.
func (r ReviewRepository) Create(rev *models.Review) error {
	if rev.ID == "" {
		rev.ID = NewReviewID()
	}
	if rev.Status == "" {
		rev.Status = models.ReviewStatusPending
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now()
	}

	_, err := r.db().Exec(
		`INSERT INTO reviews (id, product_id, client_name, profile_picture, rating, message, response, status, image_url, video_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rev.ID,
		rev.ProductID,
		strings.TrimSpace(rev.ClientName),
		rev.ProfilePicture,
		rev.Rating,
		strings.TrimSpace(rev.Message),
		rev.Response,
		string(rev.Status),
		rev.ImageURL,
		rev.VideoURL,
		rev.CreatedAt,
	)
	if err != nil {
		return domain.InternalError{Msg: "error al guardar la reseña", Err: err}
	}
	return nil
}

// SaveReply stores the response and flips the status to replied.
func (r ReviewRepository) SaveReply(id, response string) error {
	res, err := r.db().Exec(
		`UPDATE reviews SET response = ?, status = ? WHERE id = ?`,
		strings.TrimSpace(response), string(models.ReviewStatusReplied), id,
	)
	if err != nil {
		return domain.InternalError{Msg: "error al guardar la respuesta", Err: err}
	}
	return requireRowAffected(res, "reseña")
}

func (r ReviewRepository) UpdateStatus(id string, status models.ReviewStatus) error {
	res, err := r.db().Exec(`UPDATE reviews SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return domain.InternalError{Msg: "error al actualizar el estado", Err: err}
	}
	return requireRowAffected(res, "reseña")
}

func (r ReviewRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "error al eliminar la reseña", Err: err}
	}
	return requireRowAffected(res, "reseña")
}

// AverageRating covers visible reviews only.
func (r ReviewRepository) AverageRating(productID int64) (float64, error) {
	var avg sql.NullFloat64
	err := r.db().QueryRow(
		`SELECT AVG(rating) FROM reviews WHERE product_id = ? AND status IN (?, ?)`,
		productID, string(models.ReviewStatusApproved), string(models.ReviewStatusReplied),
	).Scan(&avg)
	if err != nil {
		return 0, domain.InternalError{Msg: "error al calcular la calificación promedio", Err: err}
	}
	return avg.Float64, nil
}

func requireRowAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Msg: "error al verificar la operación", Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
