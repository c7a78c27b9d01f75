package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"marquesa/internal/repositories"
)

func TestClientsWithTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM clients ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "profile_picture", "ruleta_enabled", "created_at",
		}).AddRow(1, "María", "maria@x.mx", "", "", true, time.Now()))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM clients").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := StatsService{ClientRepo: repositories.ClientRepository{DB: db}}
	clients, total, err := svc.ClientsWithTotal(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if len(clients) != 1 || total != 1 {
		t.Fatalf("expected 1 client / total 1, got %d / %d", len(clients), total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSalesWithTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM sales ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_name", "product_name", "quantity", "total", "status", "created_at",
		}).AddRow(1, "María", "Ramo de rosas", 1, 45000, "completada", time.Now()))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sales").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT SUM\\(total\\) FROM sales").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(45000))

	svc := StatsService{SaleRepo: repositories.SaleRepository{DB: db}}
	sales, count, amount, err := svc.SalesWithTotal(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if len(sales) != 1 || count != 1 || amount != 45000 {
		t.Fatalf("unexpected results: %d sales, count %d, amount %d", len(sales), count, amount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
