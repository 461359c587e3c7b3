package routers

import (
	"virtual-product-studio/api/internal/container"
	"virtual-product-studio/api/internal/middleware"
	"virtual-product-studio/api/pkg/controllers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// InitRoute creates the Gin router. Rate-limit counters go to Redis when a
// client is given.
func InitRoute(serviceContainer *container.ServiceContainer, redisClient *redis.Client, rateLimit uint) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/v1", middleware.StudioRateLimiter(redisClient, rateLimit))
	{
		api.GET("/ping", controllers.Ping)

		catalogRoutes(api, serviceContainer)
		sessionRoutes(api, serviceContainer)
	}

	return router
}

// catalogRoutes configures the read-only catalog endpoints
func catalogRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	catalog := sc.CatalogController

	api.GET("/products", catalog.GetProducts())
	api.GET("/products/:productid", catalog.GetProduct())
	api.GET("/products/:productid/price", catalog.GetProductPrice())
	api.GET("/products/:productid/defaults", catalog.GetProductDefaults())
	api.GET("/products/:productid/reviews", catalog.GetProductReviews())

	api.GET("/categories", catalog.GetCategories())
	api.GET("/device-types/:type/products", catalog.GetDeviceTypeProducts())
	api.GET("/brands/:brandid/products", catalog.GetBrandProducts())
	api.GET("/catalog/groups", catalog.GetCatalogGroups())
	api.GET("/catalog/facets", catalog.GetCatalogFacets())

	api.POST("/checkout/validate/:step", sc.OrderController.ValidateCheckoutStep())
}

// sessionRoutes configures the per-session aggregates
func sessionRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	api.POST("/sessions", sc.SessionController.CreateSession())

	session := api.Group("/sessions/:sessionid", middleware.RequireSession(sc.SessionService))
	{
		session.GET("", sc.SessionController.GetSession())
		session.DELETE("", sc.SessionController.DeleteSession())

		cart := sc.CartController
		session.GET("/cart", cart.GetCart())
		session.POST("/cart", cart.AddCartItem())
		session.DELETE("/cart", cart.ClearCart())
		session.GET("/cart/validate", cart.ValidateCart())
		session.DELETE("/cart/:itemid", cart.DeleteCartItem())
		session.PUT("/cart/:itemid/quantity", cart.UpdateCartItemQuantity())
		session.PUT("/cart/:itemid/inc", cart.IncreaseCartItemQuantity())
		session.PUT("/cart/:itemid/dec", cart.DecreaseCartItemQuantity())

		wishlist := sc.WishlistController
		session.GET("/wishlist", wishlist.GetWishlist())
		session.POST("/wishlist", wishlist.AddWishlistItem())
		session.DELETE("/wishlist", wishlist.ClearWishlist())
		session.GET("/wishlist/contains/:productid", wishlist.IsInWishlist())
		session.DELETE("/wishlist/:itemid", wishlist.RemoveWishlistItem())

		compare := sc.CompareController
		session.GET("/compare", compare.GetCompareItems())
		session.POST("/compare", compare.AddCompareItem())
		session.DELETE("/compare", compare.ClearCompare())
		session.GET("/compare/metrics", compare.GetCompareMetrics())
		session.GET("/compare/contains/:productid", compare.IsInCompare())
		session.DELETE("/compare/:productid", compare.RemoveCompareItem())

		orders := sc.OrderController
		session.GET("/orders", orders.GetOrders())
		session.GET("/orders/:orderid", orders.GetOrder())
		session.DELETE("/orders", orders.ClearOrders())
		session.POST("/checkout", orders.Checkout())
	}
}
