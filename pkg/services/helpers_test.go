package services

import (
	"testing"
	"time"

	"virtual-product-studio/api/pkg/data"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"

	"github.com/stretchr/testify/require"
)

type testServices struct {
	registry *session.Registry
	catalog  CatalogService
	pricing  PricingService
	sessions SessionService
	cart     CartService
	wishlist WishlistService
	compare  CompareService
	orders   OrderService
	checkout CheckoutService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	reviews := NewReviewService(data.Reviews())
	catalog := NewCatalogService(data.Products(), data.Categories(), reviews)
	return newTestServicesWith(t, catalog)
}

func newTestServicesWith(t *testing.T, catalog CatalogService) *testServices {
	t.Helper()
	registry := session.NewRegistry(time.Hour)
	pricing := NewPricingService()
	return &testServices{
		registry: registry,
		catalog:  catalog,
		pricing:  pricing,
		sessions: NewSessionService(registry),
		cart:     NewCartService(registry, catalog, pricing),
		wishlist: NewWishlistService(registry, catalog, pricing),
		compare:  NewCompareService(registry, catalog, pricing),
		orders:   NewOrderService(registry),
		checkout: NewCheckoutService(registry, catalog, pricing),
	}
}

func (ts *testServices) product(t *testing.T, id string) models.Product {
	t.Helper()
	p, ok := ts.catalog.GetByID(id)
	require.True(t, ok, "product %s", id)
	return p
}

func phoneRequest(colorID string, sel models.Selection) models.ConfigurationRequest {
	return models.ConfigurationRequest{ProductId: "mobile", ColorId: colorID, Variants: sel}
}

func validCheckout() models.CheckoutRequest {
	return models.CheckoutRequest{
		Customer: models.CheckoutCustomer{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "5551234567",
		},
		Shipping: models.ShippingDetails{
			Address: "1 Analytical Way",
			City:    "London",
			State:   "LDN",
			ZipCode: "10001",
		},
		Payment: models.PaymentDetails{
			CardNumber: "4242 4242 4242 4242",
			ExpiryDate: "12/35",
			CVV:        "123",
			CardName:   "Ada Lovelace",
		},
	}
}
