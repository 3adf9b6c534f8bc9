package cmd

import (
	"context"
	"fmt"

	"ecommerce-catalog/internal/usecase"

	"go.uber.org/zap"
)

// Seed populates the catalog with sample categories and products.
func Seed(ctx context.Context, seeder usecase.SeedService, logger *zap.Logger) error {
	logger.Info("Populating database with sample data")

	summary, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully populated database: %d categories and %d products (%d and %d new)\n",
		summary.TotalCategories, summary.TotalProducts, summary.CategoriesCreated, summary.ProductsCreated)
	return nil
}
