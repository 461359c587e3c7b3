package services

import (
	"context"

	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CartServiceImpl implements the CartService interface
type CartServiceImpl struct {
	configurator
	registry *session.Registry
}

// NewCartService creates a new instance of CartService
func NewCartService(registry *session.Registry, catalog CatalogService, pricing PricingService) CartService {
	return &CartServiceImpl{
		configurator: configurator{catalog: catalog, pricing: pricing},
		registry:     registry,
	}
}

// AddCartItem resolves the request and adds it to the cart. An equal
// configuration already in the cart has its quantity raised instead.
func (cs *CartServiceImpl) AddCartItem(_ context.Context, sessionID string, req models.ConfigurationRequest) (models.CartItem, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return models.CartItem{}, err
	}

	cfg, err := cs.resolve(req)
	if err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	_ = s.Update(func(st session.State) error {
		item = st.Cart.Add(cfg)
		return nil
	})
	util.LogInfo("cart item added",
		zap.String("sessionId", sessionID),
		zap.String("itemId", item.Id),
		zap.Int("quantity", item.Quantity))
	return item, nil
}

func (cs *CartServiceImpl) GetCart(_ context.Context, sessionID string) (*models.CartSummary, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &models.CartSummary{}
	s.View(func(st session.State) {
		summary.Items = st.Cart.Items()
		summary.Total = st.Cart.Total()
		summary.ItemCount = st.Cart.ItemCount()
	})
	return summary, nil
}

// RemoveCartItem removes a single cart line
func (cs *CartServiceImpl) RemoveCartItem(_ context.Context, sessionID, itemID string) error {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return err
	}

	return s.Update(func(st session.State) error {
		if !st.Cart.Remove(itemID) {
			return errors.Wrapf(ErrItemNotFound, "cart item %s", itemID)
		}
		return nil
	})
}

// ClearCart empties the cart and reports how many lines were removed
func (cs *CartServiceImpl) ClearCart(_ context.Context, sessionID string) (int, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return 0, err
	}

	var removed int
	_ = s.Update(func(st session.State) error {
		removed = st.Cart.Clear()
		return nil
	})
	return removed, nil
}

// SetCartItemQuantity sets a line's quantity. A quantity of zero or less removes the line.
func (cs *CartServiceImpl) SetCartItemQuantity(_ context.Context, sessionID, itemID string, quantity int) (*models.CartQuantityResponse, error) {
	return cs.updateCartItemQuantity(sessionID, itemID, func(cart *session.Cart) (models.CartItem, bool) {
		return cart.SetQuantity(itemID, quantity)
	})
}

// IncreaseCartItemQuantity increases the quantity of a cart item
func (cs *CartServiceImpl) IncreaseCartItemQuantity(_ context.Context, sessionID, itemID string) (*models.CartQuantityResponse, error) {
	return cs.updateCartItemQuantity(sessionID, itemID, func(cart *session.Cart) (models.CartItem, bool) {
		return cart.Increment(itemID)
	})
}

// DecreaseCartItemQuantity decreases the quantity of a cart item. Decreasing
// a line with quantity 1 removes it.
func (cs *CartServiceImpl) DecreaseCartItemQuantity(_ context.Context, sessionID, itemID string) (*models.CartQuantityResponse, error) {
	return cs.updateCartItemQuantity(sessionID, itemID, func(cart *session.Cart) (models.CartItem, bool) {
		return cart.Decrement(itemID)
	})
}

func (cs *CartServiceImpl) updateCartItemQuantity(sessionID, itemID string, change func(*session.Cart) (models.CartItem, bool)) (*models.CartQuantityResponse, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return nil, err
	}

	var resp *models.CartQuantityResponse
	err = s.Update(func(st session.State) error {
		before, ok := st.Cart.Get(itemID)
		if !ok {
			return errors.Wrapf(ErrItemNotFound, "cart item %s", itemID)
		}

		item, present := change(st.Cart)
		resp = &models.CartQuantityResponse{
			ItemId:    itemID,
			UnitPrice: before.TotalPrice,
			Removed:   !present,
		}
		if present {
			resp.Quantity = item.Quantity
			resp.TotalPrice = item.LineTotal()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ValidateCartItems checks every line against the current catalog
func (cs *CartServiceImpl) ValidateCartItems(_ context.Context, sessionID string) (*models.CartValidationResult, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	s.View(func(st session.State) {
		items = st.Cart.Items()
	})

	validItems := make([]models.CartItem, 0)
	invalidItems := make([]models.CartItemValidation, 0)

	for _, item := range items {
		check := cs.checkCartItem(item)
		if len(check.Issues) == 0 {
			validItems = append(validItems, item)
		} else {
			invalidItems = append(invalidItems, check)
		}
	}

	return &models.CartValidationResult{
		ValidItems:      validItems,
		InvalidItems:    invalidItems,
		TotalItems:      len(items),
		TotalValid:      len(validItems),
		TotalInvalid:    len(invalidItems),
		HasInvalidItems: len(invalidItems) > 0,
	}, nil
}

func (cs *CartServiceImpl) checkCartItem(item models.CartItem) models.CartItemValidation {
	check := models.CartItemValidation{Item: item, Issues: []models.CartItemIssue{}}

	product, ok := cs.catalog.GetByID(item.Product.Id)
	if !ok {
		check.Issues = append(check.Issues, models.CartItemIssueProductGone)
		return check
	}

	color, ok := product.Color(item.Color.Id)
	if !ok {
		check.Issues = append(check.Issues, models.CartItemIssueColorGone)
	}
	if !cs.pricing.IsComplete(product, item.Variants) {
		check.Issues = append(check.Issues, models.CartItemIssueIncomplete)
	}

	check.CurrentPrice = cs.pricing.ComputeTotal(product, color, item.Variants)
	if ok && check.CurrentPrice != item.TotalPrice {
		check.Issues = append(check.Issues, models.CartItemIssuePriceChanged)
	}
	return check
}
