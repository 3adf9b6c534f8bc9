package usecase

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/dto/response"
	"ecommerce-catalog/pkg/database"

	"go.uber.org/zap"
)

const duplicateCategoryName = "category with this name already exists"

type CategoryService interface {
	ListCategories(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	GetCategory(ctx context.Context, id int64) (*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error)
	PatchCategory(ctx context.Context, id int64, req *request.CategoryPatchRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) ListCategories(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	req.Normalize()

	categories, err := s.repo.Category.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	total, err := s.repo.Category.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	data := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		data[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	category := &entity.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Category.Create(ctx, category); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, newValidationError("name", duplicateCategoryName)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.Int64("category_id", category.ID), zap.String("name", category.Name))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	return s.save(ctx, category)
}

func (s *categoryService) PatchCategory(ctx context.Context, id int64, req *request.CategoryPatchRequest) (*response.CategoryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	category, err := s.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	return s.save(ctx, category)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := s.repo.Category.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info("Category deleted", zap.Int64("category_id", id))
	return nil
}

func (s *categoryService) findCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *categoryService) save(ctx context.Context, category *entity.Category) (*response.CategoryResponse, error) {
	if err := s.repo.Category.Update(ctx, category); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, newValidationError("name", duplicateCategoryName)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.Info("Category updated", zap.Int64("category_id", category.ID))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}
