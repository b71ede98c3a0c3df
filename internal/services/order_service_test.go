package services_test

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"microshop/internal/apperrors"
	"microshop/internal/models"
	"microshop/internal/services"
)

// MockOrderRepository is a testify mock of repositories.Repository for
// orders.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) (*models.Order, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(order *models.Order) (*models.Order, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOrderServiceCreateWithoutBrokerSucceeds(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, quietLogger())

	order := &models.Order{UserID: uuid.New(), DeliveryAddressID: uuid.New()}
	mockRepo.On("Create", order).Return(order, nil).Once()

	created, err := service.Create(order)

	assert.NoError(t, err)
	assert.Equal(t, order, created)
	mockRepo.AssertExpectations(t)
}

func TestOrderServiceCreateNilEntity(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, quietLogger())

	created, err := service.Create(nil)

	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderServiceInheritsGuards(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, quietLogger())

	_, err := service.GetByID(uuid.Nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = service.Delete(uuid.Nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
