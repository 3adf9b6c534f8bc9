package repository

import (
	"context"
	"fmt"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Category, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type categoryRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCategoryRepository(db database.Querier, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

const categorySelect = `
	SELECT c.id, c.name, c.description, c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS products_count
	FROM categories c
`

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, category.Name, category.Description).Scan(
		&category.ID,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		err = database.MapError(err)
		r.log.Error("Failed to create category", zap.Error(err), zap.String("name", category.Name))
		return fmt.Errorf("create category %q: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := scanCategory(r.db.QueryRow(ctx, categorySelect+` WHERE c.id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID", zap.Error(err), zap.Int64("category_id", id))
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}

	return category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	category, err := scanCategory(r.db.QueryRow(ctx, categorySelect+` WHERE c.name = $1`, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}

	return category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, categorySelect+` ORDER BY c.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to find categories",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*entity.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		r.log.Error("Failed to count categories", zap.Error(err))
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// Update writes name and description and refreshes UpdatedAt from the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, category.Name, category.Description, category.ID).Scan(&category.UpdatedAt)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("category %d not found", category.ID)
	}
	if err != nil {
		err = database.MapError(err)
		r.log.Error("Failed to update category", zap.Error(err), zap.Int64("category_id", category.ID))
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	return nil
}

// Delete removes the category and, by cascade, its products.
func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete category", zap.Error(err), zap.Int64("category_id", id))
		return false, fmt.Errorf("delete category %d: %w", id, err)
	}
	return result.RowsAffected() > 0, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var category entity.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.ProductsCount,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
