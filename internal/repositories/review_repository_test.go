package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
)

func TestNewReviewIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-f0-9]{24}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewReviewID()
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match the 24-hex shape", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func reviewRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "product_id", "client_name", "profile_picture", "rating",
		"message", "response", "status", "image_url", "video_url", "created_at",
	})
}

func TestReviewCreateAssignsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ReviewRepository{DB: db}
	rev := models.Review{ProductID: 7, ClientName: "María", Rating: 5, Message: "Hermoso ramo"}
	if err := repo.Create(&rev); err != nil {
		t.Fatalf("create error: %v", err)
	}

	if rev.ID == "" || len(rev.ID) != 24 {
		t.Fatalf("expected generated 24-hex id, got %q", rev.ID)
	}
	if rev.Status != models.ReviewStatusPending {
		t.Fatalf("expected pending status, got %q", rev.Status)
	}
	if rev.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be assigned")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM reviews WHERE id").
		WithArgs("ffffffffffffffffffffffff").
		WillReturnRows(reviewRows())

	repo := ReviewRepository{DB: db}
	_, err = repo.GetByID("ffffffffffffffffffffffff")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReviewListVisibleByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("FROM reviews\\s+WHERE product_id").
		WithArgs(int64(7), "approved", "replied").
		WillReturnRows(reviewRows().
			AddRow("65a1b2c3d4e5f6a7b8c9d0e1", 7, "María", "", 5, "Hermoso", "", "approved", "", "", now).
			AddRow("65a1b2c3d4e5f6a7b8c9d0e2", 7, "José", "", 4, "Muy bonito", "Gracias por su compra", "replied", "", "", now))

	repo := ReviewRepository{DB: db}
	reviews, err := repo.ListVisibleByProduct(7)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if !reviews[0].Visible() || !reviews[1].Visible() {
		t.Fatal("expected only visible reviews")
	}
}

func TestReviewSaveReplyNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE reviews SET response").
		WithArgs("Gracias por su compra", "replied", "ffffffffffffffffffffffff").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ReviewRepository{DB: db}
	err = repo.SaveReply("ffffffffffffffffffffffff", "Gracias por su compra")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReviewUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE reviews SET status").
		WithArgs("approved", "65a1b2c3d4e5f6a7b8c9d0e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ReviewRepository{DB: db}
	if err := repo.UpdateStatus("65a1b2c3d4e5f6a7b8c9d0e1", models.ReviewStatusApproved); err != nil {
		t.Fatalf("update status error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewAverageRatingNullIsZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT AVG\\(rating\\) FROM reviews").
		WithArgs(int64(7), "approved", "replied").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	repo := ReviewRepository{DB: db}
	avg, err := repo.AverageRating(7)
	if err != nil {
		t.Fatalf("average error: %v", err)
	}
	if avg != 0 {
		t.Fatalf("expected 0 for no visible reviews, got %f", avg)
	}
}
