package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
	"marquesa/internal/repositories"
)

func TestReviewServiceReply(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	id := "65a1b2c3d4e5f6a7b8c9d0e1"
	mock.ExpectQuery("FROM reviews WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "client_name", "profile_picture", "rating",
			"message", "response", "status", "image_url", "video_url", "created_at",
		}).AddRow(id, 7, "María", "", 5, "Hermoso ramo", "", "approved", "", "", time.Now()))
	mock.ExpectExec("UPDATE reviews SET response").
		WithArgs("Gracias por su compra", "replied", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ReviewService{ReviewRepo: repositories.ReviewRepository{DB: db}}
	if err := svc.Reply(id, "Gracias por su compra"); err != nil {
		t.Fatalf("reply error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewServiceReplyValidation(t *testing.T) {
	svc := ReviewService{}

	// bad id short-circuits before any repository call
	if err := svc.Reply("bad-id", "Gracias por su compra"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// short reply
	if err := svc.Reply("65a1b2c3d4e5f6a7b8c9d0e1", "corto"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReviewServiceModerate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	id := "65a1b2c3d4e5f6a7b8c9d0e1"
	mock.ExpectExec("UPDATE reviews SET status").
		WithArgs("rejected", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ReviewService{ReviewRepo: repositories.ReviewRepository{DB: db}}
	if err := svc.Moderate(id, models.ReviewStatusRejected); err != nil {
		t.Fatalf("moderate error: %v", err)
	}

	// replied is not a moderation target
	if err := svc.Moderate(id, models.ReviewStatusReplied); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewServiceCreateValidation(t *testing.T) {
	svc := ReviewService{}

	cases := []models.Review{
		{ProductID: 7, ClientName: "María", Rating: 0, Message: "Hermoso"},
		{ProductID: 7, ClientName: "María", Rating: 6, Message: "Hermoso"},
		{ProductID: 7, ClientName: "", Rating: 5, Message: "Hermoso"},
		{ProductID: 7, ClientName: "María", Rating: 5, Message: "   "},
	}
	for i, rev := range cases {
		rev := rev
		if err := svc.Create(&rev); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}
