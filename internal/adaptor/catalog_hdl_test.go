package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/dto/response"
	"ecommerce-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func productRouter(svc *mockProductService) *chi.Mux {
	h := NewProductHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Get("/products/{id}", h.GetProduct)
	r.Patch("/products/{id}", h.PatchProduct)
	r.Delete("/products/{id}", h.DeleteProduct)
	return r
}

func emptyProductPage() *response.PaginatedResponse[response.ProductResponse] {
	return response.NewPaginatedResponse([]response.ProductResponse{}, 1, 20, 0)
}

func TestListProducts_Filters(t *testing.T) {
	categoryID := int64(2)
	active := true
	inactive := false

	cases := []struct {
		query  string
		filter entity.ProductFilter
	}{
		{"", entity.ProductFilter{}},
		{"?category=2", entity.ProductFilter{CategoryID: &categoryID}},
		{"?category=2&is_active=True", entity.ProductFilter{CategoryID: &categoryID, IsActive: &active}},
		{"?is_active=yes", entity.ProductFilter{IsActive: &inactive}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			svc := &mockProductService{}
			svc.On("ListProducts", mock.Anything, &request.PaginatedRequest{Page: 1, PerPage: 20}, tc.filter).
				Return(emptyProductPage(), nil).Once()

			rec := httptest.NewRecorder()
			productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products"+tc.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestListProducts_InvalidCategory(t *testing.T) {
	svc := &mockProductService{}

	rec := httptest.NewRecorder()
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?category=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProduct_Handler(t *testing.T) {
	svc := &mockProductService{}
	svc.On("CreateProduct", mock.Anything, mock.AnythingOfType("*request.ProductRequest")).
		Return(&response.ProductResponse{ID: 3, Name: "Pixel 9", Price: 799, Category: 1, IsActive: true}, nil)

	rec := httptest.NewRecorder()
	body := `{"name":"Pixel 9","price":799,"category":1,"stock_quantity":4}`
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["id"])
}

func TestCreateProduct_HandlerValidation(t *testing.T) {
	svc := &mockProductService{}

	rec := httptest.NewRecorder()
	body := `{"name":"Pixel 9","price":0,"category":1,"stock_quantity":-2}`
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeEnvelope(t, rec)["errors"].(map[string]any)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock_quantity")
}

func TestCreateProduct_HandlerRejectsUnstorableValues(t *testing.T) {
	svc := &mockProductService{}

	rec := httptest.NewRecorder()
	body := `{"name":"Pixel 9","price":0.004,"category":1,"stock_quantity":3000000000}`
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeEnvelope(t, rec)["errors"].(map[string]any)
	assert.Equal(t, "Ensure that there are no more than 2 decimal places", errs["price"])
	assert.Contains(t, errs, "stock_quantity")
	svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestCreateProduct_UnknownCategoryIsFieldError(t *testing.T) {
	svc := &mockProductService{}
	svc.On("CreateProduct", mock.Anything, mock.Anything).
		Return(nil, &usecase.ValidationError{Fields: map[string]string{"category": "invalid pk 9, object does not exist"}})

	rec := httptest.NewRecorder()
	body := `{"name":"Pixel 9","price":10,"category":9}`
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeEnvelope(t, rec)["errors"].(map[string]any)
	assert.Contains(t, errs, "category")
}

func TestProductDetail_NotFoundAndBadID(t *testing.T) {
	svc := &mockProductService{}
	svc.On("GetProduct", mock.Anything, int64(404)).Return(nil, usecase.ErrNotFound)

	rec := httptest.NewRecorder()
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNumberOfCalls(t, "GetProduct", 1)
}

func TestPatchProduct_Handler(t *testing.T) {
	svc := &mockProductService{}
	svc.On("PatchProduct", mock.Anything, int64(7), mock.MatchedBy(func(req *request.ProductPatchRequest) bool {
		return req.StockQuantity != nil && *req.StockQuantity == 0 && req.Name == nil
	})).Return(&response.ProductResponse{ID: 7, StockQuantity: 0}, nil)

	rec := httptest.NewRecorder()
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/products/7", strings.NewReader(`{"stock_quantity":0}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDeleteProduct_Handler(t *testing.T) {
	svc := &mockProductService{}
	svc.On("DeleteProduct", mock.Anything, int64(7)).Return(nil)
	svc.On("DeleteProduct", mock.Anything, int64(8)).Return(usecase.ErrNotFound)

	rec := httptest.NewRecorder()
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	productRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/8", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryHandlers(t *testing.T) {
	svc := &mockCategoryService{}
	h := NewCategoryHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/categories", h.ListCategories)
	r.Post("/categories", h.CreateCategory)
	r.Put("/categories/{id}", h.UpdateCategory)

	page := response.NewPaginatedResponse([]response.CategoryResponse{{ID: 1, Name: "Books", ProductsCount: 2}}, 2, 5, 6)
	svc.On("ListCategories", mock.Anything, &request.PaginatedRequest{Page: 2, PerPage: 5}).Return(page, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories?page=2&per_page=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	pagination := decodeEnvelope(t, rec)["data"].(map[string]any)["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["total_pages"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"description":"no name"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.On("UpdateCategory", mock.Anything, int64(1), &request.CategoryRequest{Name: "Books & Media"}).
		Return(&response.CategoryResponse{ID: 1, Name: "Books & Media"}, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, fmt.Sprintf("/categories/%d", 1), strings.NewReader(`{"name":"Books & Media"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
