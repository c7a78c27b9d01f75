package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"marquesa/internal/domain/models"
	"marquesa/internal/repositories"
)

// StatsService gathers a listing and its total with an explicit join.
// Either query failing fails the whole call; there is no shared flag
// for the loser to race against.
type StatsService struct {
	ClientRepo repositories.ClientRepository
	SaleRepo   repositories.SaleRepository
}

func (s StatsService) ClientsWithTotal(ctx context.Context) ([]models.Client, int, error) {
	var (
		clients []models.Client
		total   int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.ClientRepo.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.ClientRepo.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (s StatsService) SalesWithTotal(ctx context.Context) ([]models.Sale, int, int64, error) {
	var (
		sales  []models.Sale
		count  int
		amount int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.SaleRepo.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.SaleRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		amount, err = s.SaleRepo.TotalAmount(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, 0, err
	}
	return sales, count, amount, nil
}
