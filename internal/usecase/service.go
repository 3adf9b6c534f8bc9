package usecase

import (
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/pkg/mailer"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Category CategoryService
	Product  ProductService
	Stats    StatsService
	Seed     SeedService
}

func NewService(repo *repository.Repository, config *utils.Config, sender mailer.Sender, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, sender, log),
		Category: NewCategoryService(repo, log),
		Product:  NewProductService(repo, log),
		Stats:    NewStatsService(repo, log),
		Seed:     NewSeedService(repo, log),
	}
}
