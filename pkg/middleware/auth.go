package middleware

import (
	"net/http"

	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession resolves the session token from the cookie (or a Bearer header)
// and puts the user id and raw token on the request context.
func AuthSession(sessionRepo repository.SessionRepository, cookie utils.CookieConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.SessionTokenFromRequest(r, cookie)
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication credentials were not provided")
				return
			}

			session, err := sessionRepo.FindValidByTokenHash(r.Context(), utils.HashToken(token))
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
