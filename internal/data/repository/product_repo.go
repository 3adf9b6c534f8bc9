package repository

import (
	"context"
	"fmt"
	"strings"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	FindAll(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error)
	Count(ctx context.Context, filter entity.ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type productRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProductRepository(db database.Querier, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.category_id, c.name,
	       p.is_active, p.stock_quantity, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, category_id, is_active, stock_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, price, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.IsActive,
		product.StockQuantity,
	).Scan(&product.ID, &product.Price, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.Int64("category_id", product.CategoryID),
		)
		return fmt.Errorf("create product %q: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}

	return product, nil
}

// FindByName returns the oldest product with the given name.
func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.name = $1 ORDER BY p.id LIMIT 1`, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find product %q: %w", name, err)
	}

	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	where, args := buildProductWhere(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(productSelect)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	r.log.Debug("Products found",
		zap.Int("count", len(products)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter entity.ProductFilter) (int64, error) {
	where, args := buildProductWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4,
		    is_active = $5, stock_quantity = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING price, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.IsActive,
		product.StockQuantity,
		product.ID,
	).Scan(&product.Price, &product.UpdatedAt)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("product %d not found", product.ID)
	}
	if err != nil {
		r.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", product.ID))
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", id))
		return false, fmt.Errorf("delete product %d: %w", id, err)
	}
	return result.RowsAffected() > 0, nil
}

// buildProductWhere renders the filter as a WHERE clause over alias p.
func buildProductWhere(filter entity.ProductFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("p.is_active = $%d", len(args)))
	}
	if filter.OutOfStock {
		conds = append(conds, "p.stock_quantity = 0")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&product.CategoryName,
		&product.IsActive,
		&product.StockQuantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
