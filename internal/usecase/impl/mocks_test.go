package impl

import (
	"context"
	"io"
	"log/slog"

	"parfum/internal/domain/entity"
	"parfum/internal/domain/repository"
	"parfum/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.UserRepository = (*mockUserRepository)(nil)

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Brand), args.Error(1)
}

func (m *mockBrandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Brand), args.Error(1)
}

func (m *mockBrandRepository) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Brand), args.Error(1)
}

func (m *mockBrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *mockBrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *mockBrandRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.BrandRepository = (*mockBrandRepository)(nil)

type mockPerfumeRepository struct {
	mock.Mock
}

func (m *mockPerfumeRepository) FindAll(ctx context.Context) ([]*entity.Perfume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Perfume), args.Error(1)
}

func (m *mockPerfumeRepository) FindByID(ctx context.Context, id uint) (*entity.Perfume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Perfume), args.Error(1)
}

func (m *mockPerfumeRepository) FindByName(ctx context.Context, name string) (*entity.Perfume, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Perfume), args.Error(1)
}

func (m *mockPerfumeRepository) Create(ctx context.Context, perfume *entity.Perfume) error {
	return m.Called(ctx, perfume).Error(0)
}

func (m *mockPerfumeRepository) Update(ctx context.Context, perfume *entity.Perfume) error {
	return m.Called(ctx, perfume).Error(0)
}

func (m *mockPerfumeRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.PerfumeRepository = (*mockPerfumeRepository)(nil)

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) FindAll(ctx context.Context) ([]*entity.Inventory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) FindByID(ctx context.Context, id uint) (*entity.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) FindByPerfumeID(ctx context.Context, perfumeID uint) ([]*entity.Inventory, error) {
	args := m.Called(ctx, perfumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	return m.Called(ctx, inventory).Error(0)
}

func (m *mockInventoryRepository) Update(ctx context.Context, inventory *entity.Inventory) error {
	return m.Called(ctx, inventory).Error(0)
}

func (m *mockInventoryRepository) UpdateStock(ctx context.Context, id uint, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockInventoryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInventoryRepository) Search(ctx context.Context, filters repository.InventorySearchFilters) ([]*entity.Inventory, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Inventory), args.Error(1)
}

var _ repository.InventoryRepository = (*mockInventoryRepository)(nil)

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

var _ service.PasswordHasher = (*mockPasswordHasher)(nil)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID uint, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

var _ service.TokenService = (*mockTokenService)(nil)
