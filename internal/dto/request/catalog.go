package request

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type CategoryPatchRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// ProductRequest is used for create and full update. IsActive defaults to true.
type ProductRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gt=0,max=99999999.99,decimals=2"`
	Category      int64   `json:"category" validate:"required,gt=0"`
	IsActive      *bool   `json:"is_active,omitempty"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0,lte=2147483647"`
}

type ProductPatchRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0,max=99999999.99,decimals=2"`
	Category      *int64   `json:"category,omitempty" validate:"omitempty,gt=0"`
	IsActive      *bool    `json:"is_active,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
}
