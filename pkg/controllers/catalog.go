package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal/helpers"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type CatalogController struct {
	catalogService services.CatalogService
	filterService  services.FilterService
	pricingService services.PricingService
	reviewService  services.ReviewService
}

func InitCatalogController(catalogService services.CatalogService, filterService services.FilterService, pricingService services.PricingService, reviewService services.ReviewService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		filterService:  filterService,
		pricingService: pricingService,
		reviewService:  reviewService,
	}
}

// filteredProducts applies the query-string filters and sort to the catalog.
func (cc *CatalogController) filteredProducts(c *gin.Context) ([]models.Product, models.FilterCriteria, bool) {
	stats := cc.catalogService.PriceStats()
	criteria, err := helpers.GetFilterCriteria(c, stats)
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return nil, criteria, false
	}

	products := cc.filterService.Filter(cc.catalogService.GetAll(), criteria)
	return cc.filterService.SortProducts(products, criteria.Sort), criteria, true
}

// GetProducts handles GET /v1/products
func (cc *CatalogController) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, criteria, ok := cc.filteredProducts(c)
		if !ok {
			return
		}

		paginationArgs := helpers.GetPaginationArgs(c)
		util.HandleSuccessMeta(c, http.StatusOK, "success", util.Page(products, paginationArgs), gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: int64(len(products)),
			},
			"activeFilters": cc.filterService.ActiveFilterCount(criteria, cc.catalogService.PriceStats()),
		})
	}
}

// GetProduct handles GET /v1/products/:productid
func (cc *CatalogController) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cc.productParam(c)
		if !ok {
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"product":     product,
			"path":        cc.catalogService.ResolvePath(string(product.DeviceType), product.BrandId),
			"defaults":    cc.pricingService.DefaultSelection(product),
			"deviceLabel": cc.catalogService.DeviceTypeLabel(string(product.DeviceType)),
		})
	}
}

// GetProductPrice handles GET /v1/products/:productid/price?color=ocean&variants[storage]=1tb
func (cc *CatalogController) GetProductPrice() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cc.productParam(c)
		if !ok {
			return
		}

		var color models.ProductColor
		if len(product.Colors) > 0 {
			color = product.Colors[0]
		}
		if colorID := c.Query("color"); colorID != "" {
			found, ok := product.Color(colorID)
			if !ok {
				HandleServiceError(c, errors.Wrapf(services.ErrColorNotFound, "color %s on product %s", colorID, product.Id))
				return
			}
			color = found
		}

		selection := models.Selection(c.QueryMap("variants"))
		if len(selection) == 0 {
			selection = cc.pricingService.DefaultSelection(product)
		}

		util.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"breakdown":  cc.pricingService.Breakdown(product, color, selection),
			"selection":  selection,
			"isComplete": cc.pricingService.IsComplete(product, selection),
		})
	}
}

// GetProductDefaults handles GET /v1/products/:productid/defaults
func (cc *CatalogController) GetProductDefaults() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cc.productParam(c)
		if !ok {
			return
		}

		configuration, err := cc.pricingService.Resolve(product, c.Query("color"), nil)
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", configuration)
	}
}

// GetProductReviews handles GET /v1/products/:productid/reviews
func (cc *CatalogController) GetProductReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := cc.productParam(c)
		if !ok {
			return
		}

		reviews := cc.reviewService.ReviewsFor(product.Id)
		paginationArgs := helpers.GetPaginationArgs(c)
		util.HandleSuccessMeta(c, http.StatusOK, "success", util.Page(reviews, paginationArgs), gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: int64(len(reviews)),
			},
			"rating": cc.reviewService.CalculateProductRating(product.Id),
		})
	}
}

// GetCategories handles GET /v1/categories
func (cc *CatalogController) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		util.HandleSuccess(c, http.StatusOK, "success", cc.catalogService.Categories())
	}
}

// GetDeviceTypeProducts handles GET /v1/device-types/:type/products
func (cc *CatalogController) GetDeviceTypeProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceType := c.Param("type")
		util.HandleSuccessMeta(c, http.StatusOK, "success", cc.catalogService.GetByDeviceType(deviceType), gin.H{
			"label": cc.catalogService.DeviceTypeLabel(deviceType),
			"path":  cc.catalogService.ResolvePath(deviceType, ""),
		})
	}
}

// GetBrandProducts handles GET /v1/brands/:brandid/products
func (cc *CatalogController) GetBrandProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		brandID := c.Param("brandid")
		util.HandleSuccessMeta(c, http.StatusOK, "success", cc.catalogService.GetByBrand(brandID), gin.H{
			"path": cc.catalogService.ResolvePath(c.Query("deviceType"), brandID),
		})
	}
}

// GetCatalogGroups handles GET /v1/catalog/groups
func (cc *CatalogController) GetCatalogGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		products, _, ok := cc.filteredProducts(c)
		if !ok {
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", cc.filterService.GroupByDeviceType(products))
	}
}

// GetCatalogFacets handles GET /v1/catalog/facets
func (cc *CatalogController) GetCatalogFacets() gin.HandlerFunc {
	return func(c *gin.Context) {
		util.HandleSuccess(c, http.StatusOK, "success", cc.catalogService.Facets())
	}
}

func (cc *CatalogController) productParam(c *gin.Context) (models.Product, bool) {
	productID := c.Param("productid")
	product, ok := cc.catalogService.GetByID(productID)
	if !ok {
		HandleServiceError(c, errors.Wrapf(services.ErrProductNotFound, "product %s", productID))
		return models.Product{}, false
	}
	return product, true
}
