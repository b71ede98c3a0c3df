package services

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"microshop/internal/models"
	"microshop/internal/repositories"
	"microshop/pkg/rabbitmq"
)

// OrderService decorates the generic CRUD service with best-effort
// order-created notifications. Publishing is outbound only; nothing in this
// system consumes the messages.
type OrderService struct {
	*CrudService[models.Order, *models.Order]
	mq  *rabbitmq.Client
	log *logrus.Logger
}

// NewOrderService creates the order service. A nil RabbitMQ client disables
// event publishing.
func NewOrderService(repo repositories.Repository[models.Order, *models.Order], mq *rabbitmq.Client, log *logrus.Logger) *OrderService {
	return &OrderService{
		CrudService: NewCrudService[models.Order, *models.Order](repo),
		mq:          mq,
		log:         log,
	}
}

// Create persists the order and then publishes an order.created event. A
// publish failure is logged, never surfaced to the caller.
func (s *OrderService) Create(order *models.Order) (*models.Order, error) {
	created, err := s.CrudService.Create(order)
	if err != nil {
		return nil, err
	}
	s.publishCreated(created)
	return created, nil
}

func (s *OrderService) publishCreated(order *models.Order) {
	if s.mq == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":      "order.created",
		"order_id":   order.ID,
		"user_id":    order.UserID,
		"item_count": len(order.Items),
	})
	if err != nil {
		s.log.WithError(err).Warn("failed to encode order event")
		return
	}
	if err := s.mq.Publish("", rabbitmq.OrderEventsQueue, body); err != nil {
		s.log.WithField("order_id", order.ID).WithError(err).Warn("failed to publish order.created event")
	}
}
