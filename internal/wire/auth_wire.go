package wire

import (
	"ecommerce-catalog/internal/adaptor"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/pkg/middleware"
	"ecommerce-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	cookie utils.CookieConfig,
	log *zap.Logger,
) {
	// public, rate limited per client IP
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.RateLimit, log))

		r.Post("/register", handler.Auth.Register)
		r.Post("/register/verify", handler.Auth.VerifyRegistration)
		r.Post("/login", handler.Auth.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, cookie, log))

		r.Get("/me", handler.User.Me)
		r.Post("/logout", handler.Auth.Logout)
	})
}
