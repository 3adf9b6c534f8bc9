package middleware

import (
	"net/http"

	"ecommerce-catalog/pkg/utils"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// RateLimit limits requests per client IP. A disabled config yields a no-op.
func RateLimit(cfg utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled || cfg.AuthRequests <= 0 || cfg.AuthWindow <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.AuthRequests,
		cfg.AuthWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", r.RemoteAddr),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)
			utils.ResponseTooManyRequests(w, "Too many requests, please try again later")
		}),
	)
}
