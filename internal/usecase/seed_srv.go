package usecase

import (
	"context"
	"fmt"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type SeedService interface {
	Seed(ctx context.Context) (*response.SeedSummary, error)
}

type seedCategory struct {
	name        string
	description string
}

type seedProduct struct {
	name        string
	description string
	price       float64
	category    string
	stock       int
}

var sampleCategories = []seedCategory{
	{"Electronics", "Electronic devices and gadgets"},
	{"Clothing", "Apparel and fashion items"},
	{"Books", "Books and educational materials"},
	{"Home & Garden", "Home improvement and garden supplies"},
	{"Sports", "Sports equipment and accessories"},
}

var sampleProducts = []seedProduct{
	{"iPhone 15 Pro", "Latest iPhone with advanced camera system", 999.99, "Electronics", 25},
	{"Samsung Galaxy S24", "Flagship Android smartphone", 899.99, "Electronics", 30},
	{"MacBook Air M3", "Lightweight laptop with M3 chip", 1199.99, "Electronics", 15},
	{"Nike Air Max 90", "Classic running shoes", 129.99, "Clothing", 50},
	{"Levi's 501 Jeans", "Original fit jeans", 89.99, "Clothing", 40},
	{"The Python Programming Language", "Complete guide to Python programming", 49.99, "Books", 20},
	{"Django for Beginners", "Learn web development with Django", 39.99, "Books", 15},
	{"Garden Tool Set", "Complete set of essential garden tools", 79.99, "Home & Garden", 10},
	{"Basketball", "Official size basketball", 29.99, "Sports", 35},
	{"Tennis Racket", "Professional tennis racket", 149.99, "Sports", 12},
}

type seedService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeedService(repo *repository.Repository, log *zap.Logger) SeedService {
	return &seedService{
		repo: repo,
		log:  log.With(zap.String("service", "seed")),
	}
}

// Seed get-or-creates the sample catalog by name inside one transaction.
// Running it again creates nothing.
func (s *seedService) Seed(ctx context.Context) (*response.SeedSummary, error) {
	summary := &response.SeedSummary{}

	err := s.repo.Tx.WithinTx(ctx, func(repos *repository.Repository) error {
		categoryIDs := make(map[string]int64, len(sampleCategories))

		for _, c := range sampleCategories {
			category, err := repos.Category.FindByName(ctx, c.name)
			if err != nil {
				return err
			}
			if category == nil {
				category = &entity.Category{Name: c.name, Description: c.description}
				if err := repos.Category.Create(ctx, category); err != nil {
					return err
				}
				summary.CategoriesCreated++
				s.log.Info("Created category", zap.String("name", category.Name))
			}
			categoryIDs[c.name] = category.ID
		}

		for _, p := range sampleProducts {
			existing, err := repos.Product.FindByName(ctx, p.name)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			product := &entity.Product{
				Name:          p.name,
				Description:   p.description,
				Price:         p.price,
				CategoryID:    categoryIDs[p.category],
				IsActive:      true,
				StockQuantity: p.stock,
			}
			if err := repos.Product.Create(ctx, product); err != nil {
				return err
			}
			summary.ProductsCreated++
			s.log.Info("Created product", zap.String("name", product.Name))
		}

		var err error
		if summary.TotalCategories, err = repos.Category.CountAll(ctx); err != nil {
			return err
		}
		summary.TotalProducts, err = repos.Product.Count(ctx, entity.ProductFilter{})
		return err
	})
	if err != nil {
		s.log.Error("Seeding failed", zap.Error(err))
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	s.log.Info("Database populated",
		zap.Int("categories_created", summary.CategoriesCreated),
		zap.Int("products_created", summary.ProductsCreated),
		zap.Int64("total_categories", summary.TotalCategories),
		zap.Int64("total_products", summary.TotalProducts),
	)

	return summary, nil
}
