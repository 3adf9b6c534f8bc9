package wire

import (
	"net/http"

	"ecommerce-catalog/internal/adaptor"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/usecase"
	"ecommerce-catalog/pkg/mailer"
	"ecommerce-catalog/pkg/middleware"
	"ecommerce-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and services.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(repo *repository.Repository, config *utils.Config, sender mailer.Sender, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, sender, logger)
	cookie := utils.NewCookieConfig(config.Session)
	handler := adaptor.NewHandler(service, cookie, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, cookie, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	cookie utils.CookieConfig,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handler.Stats.Overview)

		wireAuth(r, handler, repo, config, cookie, logger)
		wireCatalog(r, handler)
	})

	return r
}
