package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

// ValidateCheckoutStep handles POST /v1/checkout/validate/:step. It needs no
// session: the client calls it before moving to the next checkout step.
func (oc *OrderController) ValidateCheckoutStep() gin.HandlerFunc {
	return func(c *gin.Context) {
		step, err := models.CheckoutStep("").ParseCheckoutStep(c.Param("step"))
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		var req models.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		if fields := oc.checkoutService.ValidateStep(step, req); len(fields) > 0 {
			util.HandleFieldErrors(c, http.StatusBadRequest, "validation failed", fields)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", gin.H{"step": step, "valid": true})
	}
}

// Checkout handles POST /v1/sessions/:sessionid/checkout
func (oc *OrderController) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		sessionID := SessionID(c)
		resp, err := oc.checkoutService.Checkout(ctx, sessionID, req)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		for _, order := range resp.Orders {
			publishEvent(oc.events, internal.EventOrderPlaced, sessionID, order.Id)
		}
		if req.FromCart {
			publishEvent(oc.events, internal.EventCartCleared, sessionID, "")
		}

		util.HandleSuccess(c, http.StatusCreated, "Order placed", resp)
	}
}
