package models

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

func (OrderStatus) ParseOrderStatus(status string) (OrderStatus, error) {
	switch status {
	case "pending":
		return OrderStatusPending, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	}

	err := fmt.Sprintf("Invalid order status: %v", status)
	return "", errors.New(err)
}

// OrderDetails is the checkout summary attached to orders placed through checkout.
// Payment data is never kept beyond the last four card digits.
type OrderDetails struct {
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Shipping     ShippingDetails `json:"shipping"`
	CardLastFour string          `json:"cardLastFour"`
}

type OrderItem struct {
	Id string `json:"id"`
	Configuration
	Quantity  int           `json:"quantity"`
	OrderedAt time.Time     `json:"orderedAt"`
	Status    OrderStatus   `json:"status"`
	Details   *OrderDetails `json:"details,omitempty"`
}
