package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlistService services.WishlistService
	events          internal.EventPublisher
}

func InitWishlistController(wishlistService services.WishlistService, events internal.EventPublisher) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
		events:          events,
	}
}

// GetWishlist handles GET /v1/sessions/:sessionid/wishlist
func (wc *WishlistController) GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		items, err := wc.wishlistService.GetWishlist(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccessMeta(c, http.StatusOK, "success", items, gin.H{"count": len(items)})
	}
}

// AddWishlistItem handles POST /v1/sessions/:sessionid/wishlist
func (wc *WishlistController) AddWishlistItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.ConfigurationRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		sessionID := SessionID(c)
		item, err := wc.wishlistService.AddWishlistItem(ctx, sessionID, req)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(wc.events, internal.EventWishlistUpdated, sessionID, item.Id)

		util.HandleSuccess(c, http.StatusOK, "Item added to wishlist", item)
	}
}

// RemoveWishlistItem handles DELETE /v1/sessions/:sessionid/wishlist/:itemid
func (wc *WishlistController) RemoveWishlistItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID, itemID := SessionID(c), c.Param("itemid")
		if err := wc.wishlistService.RemoveWishlistItem(ctx, sessionID, itemID); err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(wc.events, internal.EventWishlistUpdated, sessionID, itemID)

		util.HandleSuccess(c, http.StatusOK, "Item removed from wishlist", gin.H{"itemId": itemID})
	}
}

// ClearWishlist handles DELETE /v1/sessions/:sessionid/wishlist
func (wc *WishlistController) ClearWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID := SessionID(c)
		removed, err := wc.wishlistService.ClearWishlist(ctx, sessionID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(wc.events, internal.EventWishlistUpdated, sessionID, "")

		util.HandleSuccess(c, http.StatusOK, "Wishlist cleared", gin.H{"removed": removed})
	}
}

// IsInWishlist handles GET /v1/sessions/:sessionid/wishlist/contains/:productid
func (wc *WishlistController) IsInWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productID := c.Param("productid")
		found, err := wc.wishlistService.IsInWishlist(ctx, SessionID(c), productID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", gin.H{"productId": productID, "inWishlist": found})
	}
}
