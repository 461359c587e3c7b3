package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type CompareController struct {
	compareService services.CompareService
	events         internal.EventPublisher
}

func InitCompareController(compareService services.CompareService, events internal.EventPublisher) *CompareController {
	return &CompareController{
		compareService: compareService,
		events:         events,
	}
}

// GetCompareItems handles GET /v1/sessions/:sessionid/compare
func (cc *CompareController) GetCompareItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		items, err := cc.compareService.GetCompareItems(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", items)
	}
}

// AddCompareItem handles POST /v1/sessions/:sessionid/compare. A duplicate
// product or a full list answers 200 with added=false.
func (cc *CompareController) AddCompareItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.ConfigurationRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		sessionID := SessionID(c)
		resp, err := cc.compareService.AddCompareItem(ctx, sessionID, req)
		if err != nil {
			HandleServiceError(c, err)
			return
		}

		message := "Product not added to comparison"
		if resp.Added {
			message = "Product added to comparison"
			publishEvent(cc.events, internal.EventCompareUpdated, sessionID, req.ProductId)
		}
		util.HandleSuccess(c, http.StatusOK, message, resp)
	}
}

// RemoveCompareItem handles DELETE /v1/sessions/:sessionid/compare/:productid
func (cc *CompareController) RemoveCompareItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID, productID := SessionID(c), c.Param("productid")
		if err := cc.compareService.RemoveCompareItem(ctx, sessionID, productID); err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(cc.events, internal.EventCompareUpdated, sessionID, productID)

		util.HandleSuccess(c, http.StatusOK, "Product removed from comparison", gin.H{"productId": productID})
	}
}

// ClearCompare handles DELETE /v1/sessions/:sessionid/compare
func (cc *CompareController) ClearCompare() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID := SessionID(c)
		removed, err := cc.compareService.ClearCompare(ctx, sessionID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(cc.events, internal.EventCompareUpdated, sessionID, "")

		util.HandleSuccess(c, http.StatusOK, "Comparison cleared", gin.H{"removed": removed})
	}
}

// IsInCompare handles GET /v1/sessions/:sessionid/compare/contains/:productid
func (cc *CompareController) IsInCompare() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		productID := c.Param("productid")
		found, err := cc.compareService.IsInCompare(ctx, SessionID(c), productID)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", gin.H{"productId": productID, "inCompare": found})
	}
}

// GetCompareMetrics handles GET /v1/sessions/:sessionid/compare/metrics
func (cc *CompareController) GetCompareMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		metrics, err := cc.compareService.CompareMetrics(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", metrics)
	}
}
