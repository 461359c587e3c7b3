package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService services.CartService
	events      internal.EventPublisher
}

func InitCartController(cartService services.CartService, events internal.EventPublisher) *CartController {
	return &CartController{
		cartService: cartService,
		events:      events,
	}
}

// GetCart handles GET /v1/sessions/:sessionid/cart
func (cc *CartController) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		cart, err := cc.cartService.GetCart(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", cart)
	}
}

// AddCartItem handles POST /v1/sessions/:sessionid/cart
func (cc *CartController) AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.ConfigurationRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		sessionID := SessionID(c)
		item, err := cc.cartService.AddCartItem(ctx, sessionID, req)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(cc.events, internal.EventCartUpdated, sessionID, item.Id)

		util.HandleSuccess(c, http.StatusOK, "Item added to cart", item)
	}
}

// ClearCart handles DELETE /v1/sessions/:sessionid/cart
func (cc *CartController) ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID := SessionID(c)
		removed, err := cc.cartService.ClearCart(ctx, sessionID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(cc.events, internal.EventCartCleared, sessionID, "")

		util.HandleSuccess(c, http.StatusOK, "Cart cleared", gin.H{"removed": removed})
	}
}

// DeleteCartItem handles DELETE /v1/sessions/:sessionid/cart/:itemid
func (cc *CartController) DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID, itemID := SessionID(c), c.Param("itemid")
		if err := cc.cartService.RemoveCartItem(ctx, sessionID, itemID); err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(cc.events, internal.EventCartUpdated, sessionID, itemID)

		util.HandleSuccess(c, http.StatusOK, "Item removed from cart", gin.H{"itemId": itemID})
	}
}

// UpdateCartItemQuantity handles PUT /v1/sessions/:sessionid/cart/:itemid/quantity
func (cc *CartController) UpdateCartItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.CartQuantityRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		cc.respondQuantity(c, func(sessionID, itemID string) (*models.CartQuantityResponse, error) {
			return cc.cartService.SetCartItemQuantity(ctx, sessionID, itemID, req.Quantity)
		})
	}
}

// IncreaseCartItemQuantity handles PUT /v1/sessions/:sessionid/cart/:itemid/inc
func (cc *CartController) IncreaseCartItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		cc.respondQuantity(c, func(sessionID, itemID string) (*models.CartQuantityResponse, error) {
			return cc.cartService.IncreaseCartItemQuantity(ctx, sessionID, itemID)
		})
	}
}

// DecreaseCartItemQuantity handles PUT /v1/sessions/:sessionid/cart/:itemid/dec
func (cc *CartController) DecreaseCartItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		cc.respondQuantity(c, func(sessionID, itemID string) (*models.CartQuantityResponse, error) {
			return cc.cartService.DecreaseCartItemQuantity(ctx, sessionID, itemID)
		})
	}
}

func (cc *CartController) respondQuantity(c *gin.Context, change func(sessionID, itemID string) (*models.CartQuantityResponse, error)) {
	sessionID, itemID := SessionID(c), c.Param("itemid")
	resp, err := change(sessionID, itemID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	publishEvent(cc.events, internal.EventCartUpdated, sessionID, itemID)

	message := "Cart item quantity updated"
	if resp.Removed {
		message = "Item removed from cart"
	}
	util.HandleSuccess(c, http.StatusOK, message, resp)
}

// ValidateCart handles GET /v1/sessions/:sessionid/cart/validate
func (cc *CartController) ValidateCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		result, err := cc.cartService.ValidateCartItems(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", result)
	}
}
