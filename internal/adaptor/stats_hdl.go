package adaptor

import (
	"net/http"

	"ecommerce-catalog/internal/usecase"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// Overview handles GET /api and lists the available endpoints.
func (h *StatsHandler) Overview(w http.ResponseWriter, _ *http.Request) {
	utils.ResponseSuccess(w, "success", map[string]any{
		"API Overview": "/api/",
		"Authentication": map[string]string{
			"Register":     "/api/register/",
			"Verify OTP":   "/api/register/verify/",
			"Login":        "/api/login/",
			"Current User": "/api/me/",
			"Logout":       "/api/logout/",
		},
		"Categories": map[string]string{
			"List/Create": "/api/categories/",
			"Detail":      "/api/categories/<id>/",
		},
		"Products": map[string]string{
			"List/Create": "/api/products/",
			"Detail":      "/api/products/<id>/",
			"By Category": "/api/products/?category=<category_id>",
			"Active Only": "/api/products/?is_active=true",
		},
		"Statistics": "/api/stats/",
	})
}
