package usecase

import (
	"context"
	"fmt"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type ProductService interface {
	ListProducts(ctx context.Context, req *request.PaginatedRequest, filter entity.ProductFilter) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProduct(ctx context.Context, id int64) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) (*response.ProductResponse, error)
	PatchProduct(ctx context.Context, id int64, req *request.ProductPatchRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) ListProducts(ctx context.Context, req *request.PaginatedRequest, filter entity.ProductFilter) (*response.PaginatedResponse[response.ProductResponse], error) {
	req.Normalize()

	products, err := s.repo.Product.FindAll(ctx, filter, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	total, err := s.repo.Product.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	data := make([]response.ProductResponse, len(products))
	for i, product := range products {
		data[i] = response.ProductToResponse(product)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		IsActive:      true,
		StockQuantity: req.StockQuantity,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int64("category_id", product.CategoryID),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) (*response.ProductResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = category.ID
	product.CategoryName = category.Name
	product.StockQuantity = req.StockQuantity
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	return s.save(ctx, product)
}

func (s *productService) PatchProduct(ctx context.Context, id int64, req *request.ProductPatchRequest) (*response.ProductResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	return s.save(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := s.repo.Product.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}

func (s *productService) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// resolveCategory reports a missing category as a field error on "category".
func (s *productService) resolveCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, newValidationError("category", fmt.Sprintf("invalid pk %d, object does not exist", id))
	}
	return category, nil
}

func (s *productService) save(ctx context.Context, product *entity.Product) (*response.ProductResponse, error) {
	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.Int64("product_id", product.ID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}
