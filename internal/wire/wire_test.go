package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-catalog/internal/adaptor"
	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"
	"ecommerce-catalog/internal/dto/response"
	"ecommerce-catalog/internal/usecase"
	"ecommerce-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubStats struct{}

func (stubStats) GetStats(context.Context) (*response.StatsResponse, error) {
	return &response.StatsResponse{TotalCategories: 5, TotalProducts: 10}, nil
}

type noSessions struct{}

func (noSessions) Create(context.Context, *entity.Session) error { return nil }

func (noSessions) FindValidByTokenHash(context.Context, string) (*entity.Session, error) {
	return nil, nil
}

func (noSessions) Revoke(context.Context, string) error { return nil }

func (noSessions) CleanExpired(context.Context) (int64, error) { return 0, nil }

func testRouter() http.Handler {
	config := &utils.Config{CORS: utils.CORSConfig{AllowedOrigins: []string{"*"}}}
	cookie := utils.NewCookieConfig(config.Session)
	service := &usecase.Service{Stats: stubStats{}}
	handler := adaptor.NewHandler(service, cookie, zap.NewNop())
	repo := &repository.Repository{Session: noSessions{}}

	return setupRouter(handler, repo, config, cookie, zap.NewNop())
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"/health", "/api", "/api/", "/api/stats", "/api/stats/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_ProtectedEndpointsRequireSession(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "expired"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	router := testRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "OK", rec.Body.String())
}
