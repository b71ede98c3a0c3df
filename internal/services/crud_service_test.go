package services_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"microshop/internal/apperrors"
	"microshop/internal/models"
	"microshop/internal/services"
)

// MockProductRepository is a testify mock of repositories.Repository for
// products.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) (*models.Product, error) {
	args := m.Called(product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *models.Product) (*models.Product, error) {
	args := m.Called(product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func newProductService(repo *MockProductRepository) *services.CrudService[models.Product, *models.Product] {
	return services.NewCrudService[models.Product, *models.Product](repo)
}

func TestCrudServiceCreateNilEntity(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	created, err := service.Create(nil)

	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCrudServiceGetByIDEmptyID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	product, err := service.GetByID(uuid.Nil)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestCrudServiceUpdateGuards(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	_, err := service.Update(nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = service.Update(&models.Product{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCrudServiceDeleteEmptyID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	removed, err := service.Delete(uuid.Nil)

	assert.False(t, removed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCrudServiceDelegatesHappyPath(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	id := uuid.New()
	product := &models.Product{Name: "Widget"}
	product.ID = id

	mockRepo.On("Create", product).Return(product, nil).Once()
	created, err := service.Create(product)
	assert.NoError(t, err)
	assert.Equal(t, product, created)

	mockRepo.On("GetByID", id).Return(product, nil).Once()
	fetched, err := service.GetByID(id)
	assert.NoError(t, err)
	assert.Equal(t, product, fetched)

	mockRepo.On("Update", product).Return(product, nil).Once()
	updated, err := service.Update(product)
	assert.NoError(t, err)
	assert.Equal(t, product, updated)

	mockRepo.On("Delete", id).Return(true, nil).Once()
	removed, err := service.Delete(id)
	assert.NoError(t, err)
	assert.True(t, removed)

	mockRepo.AssertExpectations(t)
}

func TestCrudServiceGetAllHasNoGuard(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()
	products, err := service.GetAll()
	assert.NoError(t, err)
	assert.NotNil(t, products)
	assert.Len(t, products, 0)
	mockRepo.AssertExpectations(t)
}

func TestCrudServiceGetByIDAbsentPassesThrough(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", id).Return(nil, nil).Once()
	product, err := service.GetByID(id)
	assert.NoError(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestCrudServiceRepositoryErrorsPropagate(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newProductService(mockRepo)

	id := uuid.New()
	mockRepo.On("Delete", id).Return(false, fmt.Errorf("record %s: %w", id, apperrors.ErrNotFound)).Once()
	removed, err := service.Delete(id)
	assert.False(t, removed)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
