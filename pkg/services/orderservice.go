package services

import (
	"context"

	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"

	"github.com/pkg/errors"
)

type OrderServiceImpl struct {
	registry *session.Registry
}

func NewOrderService(registry *session.Registry) OrderService {
	return &OrderServiceImpl{registry: registry}
}

// GetOrders lists the session's orders, newest first.
func (o *OrderServiceImpl) GetOrders(_ context.Context, sessionID string) ([]models.OrderItem, error) {
	s, err := lookupSession(o.registry, sessionID)
	if err != nil {
		return nil, err
	}

	var orders []models.OrderItem
	s.View(func(st session.State) {
		orders = st.Orders.Items()
	})
	return orders, nil
}

func (o *OrderServiceImpl) GetOrder(_ context.Context, sessionID, orderID string) (*models.OrderItem, error) {
	s, err := lookupSession(o.registry, sessionID)
	if err != nil {
		return nil, err
	}

	var (
		order models.OrderItem
		found bool
	)
	s.View(func(st session.State) {
		order, found = st.Orders.Get(orderID)
	})
	if !found {
		return nil, errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}
	return &order, nil
}

func (o *OrderServiceImpl) ClearOrders(_ context.Context, sessionID string) (int, error) {
	s, err := lookupSession(o.registry, sessionID)
	if err != nil {
		return 0, err
	}

	var removed int
	_ = s.Update(func(st session.State) error {
		removed = st.Orders.Clear()
		return nil
	})
	return removed, nil
}
