package usecase

import (
	"context"

	"ecommerce-catalog/internal/data/entity"
	"ecommerce-catalog/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Activate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*entity.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileRepo) MarkEmailVerified(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockOTPRepo struct{ mock.Mock }

func (m *mockOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	return m.Called(ctx, otp).Error(0)
}

func (m *mockOTPRepo) FindLatestUnverified(ctx context.Context, email, otpCode string) (*entity.OTP, error) {
	args := m.Called(ctx, email, otpCode)
	otp, _ := args.Get(0).(*entity.OTP)
	return otp, args.Error(1)
}

func (m *mockOTPRepo) MarkVerified(ctx context.Context, otpID uuid.UUID) (bool, error) {
	args := m.Called(ctx, otpID)
	return args.Bool(0), args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *mockSessionRepo) CleanExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*entity.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, offset, limit int) ([]*entity.Category, error) {
	args := m.Called(ctx, offset, limit)
	categories, _ := args.Get(0).([]*entity.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *mockProductRepo) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, filter, offset, limit)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) Count(ctx context.Context, filter entity.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

// passThroughTx runs fn against the same mocked repositories.
type passThroughTx struct {
	repos *repository.Repository
}

func (p passThroughTx) WithinTx(_ context.Context, fn func(repos *repository.Repository) error) error {
	return fn(p.repos)
}

type testRepos struct {
	repo     *repository.Repository
	user     *mockUserRepo
	profile  *mockProfileRepo
	otp      *mockOTPRepo
	session  *mockSessionRepo
	category *mockCategoryRepo
	product  *mockProductRepo
}

func newTestRepos() *testRepos {
	tr := &testRepos{
		user:     &mockUserRepo{},
		profile:  &mockProfileRepo{},
		otp:      &mockOTPRepo{},
		session:  &mockSessionRepo{},
		category: &mockCategoryRepo{},
		product:  &mockProductRepo{},
	}
	tr.repo = &repository.Repository{
		User:     tr.user,
		Profile:  tr.profile,
		OTP:      tr.otp,
		Session:  tr.session,
		Category: tr.category,
		Product:  tr.product,
	}
	tr.repo.Tx = passThroughTx{repos: tr.repo}
	return tr
}
