package response

import (
	"time"

	"ecommerce-catalog/internal/data/entity"
)

type CategoryResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ProductsCount int64     `json:"products_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      int64     `json:"category"`
	CategoryName  string    `json:"category_name"`
	IsActive      bool      `json:"is_active"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StatsResponse struct {
	TotalCategories    int64 `json:"total_categories"`
	TotalProducts      int64 `json:"total_products"`
	ActiveProducts     int64 `json:"active_products"`
	InactiveProducts   int64 `json:"inactive_products"`
	OutOfStockProducts int64 `json:"out_of_stock_products"`
}

type SeedSummary struct {
	CategoriesCreated int   `json:"categories_created"`
	ProductsCreated   int   `json:"products_created"`
	TotalCategories   int64 `json:"total_categories"`
	TotalProducts     int64 `json:"total_products"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		ProductsCount: category.ProductsCount,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Category:      product.CategoryID,
		CategoryName:  product.CategoryName,
		IsActive:      product.IsActive,
		StockQuantity: product.StockQuantity,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
