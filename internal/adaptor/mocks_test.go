package adaptor

import (
	"context"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/dto/response"
	"ecommerce-catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.RegisterResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) VerifyRegistration(ctx context.Context, req *request.VerifyRegistrationRequest) (*response.VerifyRegistrationResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.VerifyRegistrationResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest, client usecase.ClientInfo) (*usecase.LoginResult, error) {
	args := m.Called(ctx, req, client)
	result, _ := args.Get(0).(*usecase.LoginResult)
	return result, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*response.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) ListProducts(ctx context.Context, req *request.PaginatedRequest, filter entity.ProductFilter) (*response.PaginatedResponse[response.ProductResponse], error) {
	args := m.Called(ctx, req, filter)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.ProductResponse])
	return resp, args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (*response.ProductResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*response.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) (*response.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*response.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) PatchProduct(ctx context.Context, id int64, req *request.ProductPatchRequest) (*response.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*response.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) ListCategories(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.CategoryResponse])
	return resp, args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id int64) (*response.CategoryResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*response.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*response.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategoryService) PatchCategory(ctx context.Context, id int64, req *request.CategoryPatchRequest) (*response.CategoryResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*response.CategoryResponse)
	return resp, args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
