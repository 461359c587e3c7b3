package services

import (
	"context"

	"virtual-product-studio/api/pkg/models"
)

// CatalogSource loads the catalog once at startup.
type CatalogSource interface {
	LoadProducts(ctx context.Context) ([]models.Product, error)
	LoadCategories(ctx context.Context) ([]models.Category, error)
	LoadReviews(ctx context.Context) (map[string][]models.Review, error)
}

// CatalogService is the read-only product store. Lookups never fail:
// absence is reported as (zero, false) or an empty slice.
type CatalogService interface {
	GetAll() []models.Product
	GetByID(id string) (models.Product, bool)
	GetByDeviceType(deviceType string) []models.Product
	GetByBrand(brandID string) []models.Product

	Categories() []models.Category
	DeviceTypeLabel(deviceType string) string
	ResolvePath(deviceType, brandID string) models.CategoryPath
	Brands() []string
	DeviceTypes() []string
	PriceStats() models.PriceStats
	Facets() models.CatalogFacets
}

// FilterService narrows, groups and orders product lists without touching the catalog.
type FilterService interface {
	Filter(products []models.Product, criteria models.FilterCriteria) []models.Product
	GroupByDeviceType(products []models.Product) []models.DeviceTypeGroup
	SortProducts(products []models.Product, sort models.ProductSort) []models.Product
	ActiveFilterCount(criteria models.FilterCriteria, stats models.PriceStats) int
}

// PricingService computes prices and checks selections against a product's variants.
type PricingService interface {
	ComputeTotal(product models.Product, color models.ProductColor, selection models.Selection) int
	Breakdown(product models.Product, color models.ProductColor, selection models.Selection) models.PriceBreakdown
	DefaultSelection(product models.Product) models.Selection
	IsComplete(product models.Product, selection models.Selection) bool
	Resolve(product models.Product, colorID string, selection models.Selection) (models.Configuration, error)
}

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	ReviewsFor(productID string) []models.Review
	AverageRating(productID string) float64
	ReviewCount(productID string) int
	CalculateProductRating(productID string) models.Rating
}

// SessionService manages shopper sessions.
type SessionService interface {
	CreateSession(ctx context.Context) models.SessionSummary
	GetSession(ctx context.Context, sessionID string) (models.SessionSummary, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// CartService defines the interface for cart-related operations
type CartService interface {
	AddCartItem(ctx context.Context, sessionID string, req models.ConfigurationRequest) (models.CartItem, error)
	GetCart(ctx context.Context, sessionID string) (*models.CartSummary, error)
	RemoveCartItem(ctx context.Context, sessionID, itemID string) error
	ClearCart(ctx context.Context, sessionID string) (int, error)

	SetCartItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartQuantityResponse, error)
	IncreaseCartItemQuantity(ctx context.Context, sessionID, itemID string) (*models.CartQuantityResponse, error)
	DecreaseCartItemQuantity(ctx context.Context, sessionID, itemID string) (*models.CartQuantityResponse, error)

	ValidateCartItems(ctx context.Context, sessionID string) (*models.CartValidationResult, error)
}

type WishlistService interface {
	AddWishlistItem(ctx context.Context, sessionID string, req models.ConfigurationRequest) (models.WishlistItem, error)
	GetWishlist(ctx context.Context, sessionID string) ([]models.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, sessionID, itemID string) error
	ClearWishlist(ctx context.Context, sessionID string) (int, error)
	IsInWishlist(ctx context.Context, sessionID, productID string) (bool, error)
}

type CompareService interface {
	AddCompareItem(ctx context.Context, sessionID string, req models.ConfigurationRequest) (*models.CompareAddResponse, error)
	GetCompareItems(ctx context.Context, sessionID string) ([]models.CompareItem, error)
	RemoveCompareItem(ctx context.Context, sessionID, productID string) error
	ClearCompare(ctx context.Context, sessionID string) (int, error)
	IsInCompare(ctx context.Context, sessionID, productID string) (bool, error)
	CompareMetrics(ctx context.Context, sessionID string) (*models.ComparisonMetrics, error)
}

type OrderService interface {
	GetOrders(ctx context.Context, sessionID string) ([]models.OrderItem, error)
	GetOrder(ctx context.Context, sessionID, orderID string) (*models.OrderItem, error)
	ClearOrders(ctx context.Context, sessionID string) (int, error)
}

type CheckoutService interface {
	ValidateStep(step models.CheckoutStep, req models.CheckoutRequest) map[string]string
	Checkout(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.CheckoutResponse, error)
}
