package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService    services.OrderService
	checkoutService services.CheckoutService
	events          internal.EventPublisher
}

func InitOrderController(orderService services.OrderService, checkoutService services.CheckoutService, events internal.EventPublisher) *OrderController {
	return &OrderController{
		orderService:    orderService,
		checkoutService: checkoutService,
		events:          events,
	}
}

// GetOrders handles GET /v1/sessions/:sessionid/orders
func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		orders, err := oc.orderService.GetOrders(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccessMeta(c, http.StatusOK, "success", orders, gin.H{"count": len(orders)})
	}
}

// GetOrder handles GET /v1/sessions/:sessionid/orders/:orderid
func (oc *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		order, err := oc.orderService.GetOrder(ctx, SessionID(c), c.Param("orderid"))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", order)
	}
}

// ClearOrders handles DELETE /v1/sessions/:sessionid/orders
func (oc *OrderController) ClearOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID := SessionID(c)
		removed, err := oc.orderService.ClearOrders(ctx, sessionID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(oc.events, internal.EventOrdersCleared, sessionID, "")

		util.HandleSuccess(c, http.StatusOK, "Order history cleared", gin.H{"removed": removed})
	}
}
