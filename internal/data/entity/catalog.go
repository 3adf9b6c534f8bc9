package entity

type Category struct {
	BaseSerial
	Name          string `db:"name"`
	Description   string `db:"description"`
	ProductsCount int64  `db:"products_count"` // read-only, computed by queries
}

type Product struct {
	BaseSerial
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	Price         float64 `db:"price"`
	CategoryID    int64   `db:"category_id"`
	CategoryName  string  `db:"category_name"` // read-only, joined from categories
	IsActive      bool    `db:"is_active"`
	StockQuantity int     `db:"stock_quantity"`
}

// ProductFilter holds equality predicates for product listing and counting.
type ProductFilter struct {
	CategoryID *int64
	IsActive   *bool
	OutOfStock bool
}
