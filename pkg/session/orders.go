package session

import (
	"fmt"
	"time"

	"virtual-product-studio/api/pkg/models"
)

// OrderHistory keeps placed orders newest first. Every order starts and
// stays pending; there is no fulfilment behind it.
type OrderHistory struct {
	items []models.OrderItem
	stamp stamper
	now   Clock
}

func NewOrderHistory(now Clock) *OrderHistory {
	if now == nil {
		now = time.Now
	}
	return &OrderHistory{now: now}
}

// Add prepends a pending order for the configuration. quantity < 1 counts as 1.
func (o *OrderHistory) Add(cfg models.Configuration, quantity int, details *models.OrderDetails) models.OrderItem {
	if quantity < 1 {
		quantity = 1
	}
	now := o.now()
	cfg.Variants = cfg.Variants.Clone()
	order := models.OrderItem{
		Id:            fmt.Sprintf("ORD-%d", o.stamp.next(now)),
		Configuration: cfg,
		Quantity:      quantity,
		OrderedAt:     now,
		Status:        models.OrderStatusPending,
		Details:       details,
	}
	o.items = append([]models.OrderItem{order}, o.items...)
	return order
}

func (o *OrderHistory) Get(orderID string) (models.OrderItem, bool) {
	for _, order := range o.items {
		if order.Id == orderID {
			return order, true
		}
	}
	return models.OrderItem{}, false
}

func (o *OrderHistory) Clear() int {
	n := len(o.items)
	o.items = nil
	return n
}

// Items returns the orders newest first.
func (o *OrderHistory) Items() []models.OrderItem {
	out := make([]models.OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *OrderHistory) Count() int {
	return len(o.items)
}
