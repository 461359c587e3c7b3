package features

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/session"

	"github.com/cucumber/godog"
)

type studioTestContext struct {
	ctx       context.Context
	catalog   services.CatalogService
	pricing   services.PricingService
	sessions  services.SessionService
	cart      services.CartService
	compare   services.CompareService
	orders    services.OrderService
	checkout  services.CheckoutService
	sessionID string

	product   models.Product
	colorID   string
	selection models.Selection
	total     int
}

func (s *studioTestContext) theBuiltInCatalog() error {
	catalog, _, err := services.LoadCatalog(context.Background(), services.NewStaticCatalogSource())
	if err != nil {
		return err
	}
	registry := session.NewRegistry(0)
	s.ctx = context.Background()
	s.catalog = catalog
	s.pricing = services.NewPricingService()
	s.sessions = services.NewSessionService(registry)
	s.cart = services.NewCartService(registry, catalog, s.pricing)
	s.compare = services.NewCompareService(registry, catalog, s.pricing)
	s.orders = services.NewOrderService(registry)
	s.checkout = services.NewCheckoutService(registry, catalog, s.pricing)
	return nil
}

func (s *studioTestContext) aNewShoppingSession() error {
	s.sessionID = s.sessions.CreateSession(s.ctx).Id
	return nil
}

func (s *studioTestContext) iConfigureWithTheDefaultSelection(productID, colorID string) error {
	p, ok := s.catalog.GetByID(productID)
	if !ok {
		return fmt.Errorf("product %q not in catalog", productID)
	}
	color, ok := p.Color(colorID)
	if !ok {
		return fmt.Errorf("color %q not offered by %s", colorID, productID)
	}
	s.product = p
	s.colorID = colorID
	s.selection = s.pricing.DefaultSelection(p)
	s.total = s.pricing.ComputeTotal(p, color, s.selection)
	return nil
}

func (s *studioTestContext) iSelectOptionForVariant(optionID, variantID string) error {
	s.selection[variantID] = optionID
	if !s.pricing.IsComplete(s.product, s.selection) {
		return fmt.Errorf("selection %s is incomplete", s.selection.Key())
	}
	color, _ := s.product.Color(s.colorID)
	s.total = s.pricing.ComputeTotal(s.product, color, s.selection)
	return nil
}

func (s *studioTestContext) theConfiguredProductIs(name string) error {
	if s.product.Name != name {
		return fmt.Errorf("expected product %q, got %q", name, s.product.Name)
	}
	return nil
}

func (s *studioTestContext) theTotalPriceIs(total int) error {
	if s.total != total {
		return fmt.Errorf("expected total %d, got %d", total, s.total)
	}
	return nil
}

func (s *studioTestContext) request() models.ConfigurationRequest {
	return models.ConfigurationRequest{ProductId: s.product.Id, ColorId: s.colorID, Variants: s.selection.Clone()}
}

func (s *studioTestContext) iAddTheConfigurationToTheCartTimes(times int) error {
	for i := 0; i < times; i++ {
		item, err := s.cart.AddCartItem(s.ctx, s.sessionID, s.request())
		if err != nil {
			return err
		}
		if item.TotalPrice != s.total {
			return fmt.Errorf("cart priced the configuration at %d, expected %d", item.TotalPrice, s.total)
		}
	}
	return nil
}

func (s *studioTestContext) iDecrementTheFirstCartLine() error {
	cart, err := s.cart.GetCart(s.ctx, s.sessionID)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return fmt.Errorf("cart is empty")
	}
	_, err = s.cart.DecreaseCartItemQuantity(s.ctx, s.sessionID, cart.Items[0].Id)
	return err
}

func (s *studioTestContext) theCartHasLineWithQuantity(lines, quantity int) error {
	cart, err := s.cart.GetCart(s.ctx, s.sessionID)
	if err != nil {
		return err
	}
	if len(cart.Items) != lines {
		return fmt.Errorf("expected %d cart lines, got %d", lines, len(cart.Items))
	}
	if cart.Items[0].Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, cart.Items[0].Quantity)
	}
	return nil
}

func (s *studioTestContext) theCartTotalIs(total int) error {
	cart, err := s.cart.GetCart(s.ctx, s.sessionID)
	if err != nil {
		return err
	}
	if cart.Total != total {
		return fmt.Errorf("expected cart total %d, got %d", total, cart.Total)
	}
	return nil
}

func (s *studioTestContext) theCartIsEmpty() error {
	cart, err := s.cart.GetCart(s.ctx, s.sessionID)
	if err != nil {
		return err
	}
	if len(cart.Items) != 0 || cart.Total != 0 || cart.ItemCount != 0 {
		return fmt.Errorf("expected an empty cart, got %d lines", len(cart.Items))
	}
	return nil
}

func (s *studioTestContext) iCheckOutTheCart() error {
	req := models.CheckoutRequest{
		Customer: models.CheckoutCustomer{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Phone: "5550001111"},
		Shipping: models.ShippingDetails{Address: "1 Harbor Rd", City: "Arlington", State: "VA", ZipCode: "22201"},
		Payment:  models.PaymentDetails{CardNumber: "4242424242424242", ExpiryDate: "10/34", CVV: "321", CardName: "Grace Hopper"},
		FromCart: true,
	}
	_, err := s.checkout.Checkout(s.ctx, s.sessionID, req)
	return err
}

func (s *studioTestContext) theOrderHistoryHasOrderWithStatus(count int, status string) error {
	orders, err := s.orders.GetOrders(s.ctx, s.sessionID)
	if err != nil {
		return err
	}
	if len(orders) != count {
		return fmt.Errorf("expected %d orders, got %d", count, len(orders))
	}
	for _, o := range orders {
		if string(o.Status) != status {
			return fmt.Errorf("order %s has status %s", o.Id, o.Status)
		}
		if o.TotalPrice != s.total {
			return fmt.Errorf("order %s priced at %d, expected %d", o.Id, o.TotalPrice, s.total)
		}
	}
	return nil
}

func (s *studioTestContext) iCompareTheProducts(list string) error {
	for _, id := range strings.Split(list, ",") {
		req := models.ConfigurationRequest{ProductId: strings.TrimSpace(id)}
		if _, err := s.compare.AddCompareItem(s.ctx, s.sessionID, req); err != nil {
			return err
		}
	}
	return nil
}

func (s *studioTestContext) theCompareListHasProducts(count int) error {
	items, err := s.compare.GetCompareItems(s.ctx, s.sessionID)
	if err != nil {
		return err
	}
	if len(items) != count {
		return fmt.Errorf("expected %d compare items, got %d", count, len(items))
	}
	return nil
}

func (s *studioTestContext) isNotInTheCompareList(productID string) error {
	in, err := s.compare.IsInCompare(s.ctx, s.sessionID, productID)
	if err != nil {
		return err
	}
	if in {
		return fmt.Errorf("%s should not be in the compare list", productID)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &studioTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*s = studioTestContext{}
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the built-in catalog$`, s.theBuiltInCatalog)
	ctx.Step(`^a new shopping session$`, s.aNewShoppingSession)

	// When steps
	ctx.Step(`^I configure "([^"]*)" in color "([^"]*)" with the default selection$`, s.iConfigureWithTheDefaultSelection)
	ctx.Step(`^I select option "([^"]*)" for variant "([^"]*)"$`, s.iSelectOptionForVariant)
	ctx.Step(`^I add the configuration to the cart (\d+) times$`, s.iAddTheConfigurationToTheCartTimes)
	ctx.Step(`^I decrement the first cart line$`, s.iDecrementTheFirstCartLine)
	ctx.Step(`^I check out the cart$`, s.iCheckOutTheCart)
	ctx.Step(`^I compare the products "([^"]*)"$`, s.iCompareTheProducts)

	// Then steps
	ctx.Step(`^the configured product is "([^"]*)"$`, s.theConfiguredProductIs)
	ctx.Step(`^the total price is (\d+)$`, s.theTotalPriceIs)
	ctx.Step(`^the cart has (\d+) line with quantity (\d+)$`, s.theCartHasLineWithQuantity)
	ctx.Step(`^the cart total is (\d+)$`, s.theCartTotalIs)
	ctx.Step(`^the cart is empty$`, s.theCartIsEmpty)
	ctx.Step(`^the order history has (\d+) order with status "([^"]*)"$`, s.theOrderHistoryHasOrderWithStatus)
	ctx.Step(`^the compare list has (\d+) products$`, s.theCompareListHasProducts)
	ctx.Step(`^"([^"]*)" is not in the compare list$`, s.isNotInTheCompareList)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"configurator.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
