package container

import (
	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/controllers"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/session"
)

type ServiceContainer struct {
	CatalogService  services.CatalogService
	FilterService   services.FilterService
	PricingService  services.PricingService
	ReviewService   services.ReviewService
	SessionService  services.SessionService
	CartService     services.CartService
	WishlistService services.WishlistService
	CompareService  services.CompareService
	OrderService    services.OrderService
	CheckoutService services.CheckoutService

	CatalogController  *controllers.CatalogController
	SessionController  *controllers.SessionController
	CartController     *controllers.CartController
	WishlistController *controllers.WishlistController
	CompareController  *controllers.CompareController
	OrderController    *controllers.OrderController
}

// NewServiceContainer wires every service and controller around one loaded
// catalog and one session registry. A nil publisher drops events.
func NewServiceContainer(catalogService services.CatalogService, reviewService services.ReviewService, registry *session.Registry, events internal.EventPublisher) *ServiceContainer {
	if events == nil {
		events = internal.NopPublisher{}
	}

	filterService := services.NewFilterService(catalogService.DeviceTypeLabel)
	pricingService := services.NewPricingService()
	sessionService := services.NewSessionService(registry)
	cartService := services.NewCartService(registry, catalogService, pricingService)
	wishlistService := services.NewWishlistService(registry, catalogService, pricingService)
	compareService := services.NewCompareService(registry, catalogService, pricingService)
	orderService := services.NewOrderService(registry)
	checkoutService := services.NewCheckoutService(registry, catalogService, pricingService)

	return &ServiceContainer{
		CatalogService:  catalogService,
		FilterService:   filterService,
		PricingService:  pricingService,
		ReviewService:   reviewService,
		SessionService:  sessionService,
		CartService:     cartService,
		WishlistService: wishlistService,
		CompareService:  compareService,
		OrderService:    orderService,
		CheckoutService: checkoutService,

		CatalogController:  controllers.InitCatalogController(catalogService, filterService, pricingService, reviewService),
		SessionController:  controllers.InitSessionController(sessionService, events),
		CartController:     controllers.InitCartController(cartService, events),
		WishlistController: controllers.InitWishlistController(wishlistService, events),
		CompareController:  controllers.InitCompareController(compareService, events),
		OrderController:    controllers.InitOrderController(orderService, checkoutService, events),
	}
}
