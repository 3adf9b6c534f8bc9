package usecase

import (
	"context"
	"fmt"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type StatsService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

// GetStats uses the same filters as the product list, so the counts agree with filtered listings.
func (s *statsService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	active, inactive := true, false

	totalCategories, err := s.repo.Category.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	counts := make([]int64, 4)
	filters := []entity.ProductFilter{
		{},
		{IsActive: &active},
		{IsActive: &inactive},
		{OutOfStock: true},
	}
	for i, filter := range filters {
		counts[i], err = s.repo.Product.Count(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("count products: %w", err)
		}
	}

	return &response.StatsResponse{
		TotalCategories:    totalCategories,
		TotalProducts:      counts[0],
		ActiveProducts:     counts[1],
		InactiveProducts:   counts[2],
		OutOfStockProducts: counts[3],
	}, nil
}
