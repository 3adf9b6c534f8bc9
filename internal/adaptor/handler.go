package adaptor

import (
	"ecommerce-catalog/internal/usecase"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Stats    *StatsHandler
}

func NewHandler(service *usecase.Service, cookie utils.CookieConfig, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, cookie, log),
		User:     NewUserHandler(service.Auth, log),
		Category: NewCategoryHandler(service.Category, log),
		Product:  NewProductHandler(service.Product, log),
		Stats:    NewStatsHandler(service.Stats, log),
	}
}
