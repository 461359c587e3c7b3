package services

import (
	"context"

	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type WishlistServiceImpl struct {
	configurator
	registry *session.Registry
}

func NewWishlistService(registry *session.Registry, catalog CatalogService, pricing PricingService) WishlistService {
	return &WishlistServiceImpl{
		configurator: configurator{catalog: catalog, pricing: pricing},
		registry:     registry,
	}
}

// AddWishlistItem always appends; saving the same configuration twice gives two entries.
func (ws *WishlistServiceImpl) AddWishlistItem(_ context.Context, sessionID string, req models.ConfigurationRequest) (models.WishlistItem, error) {
	s, err := lookupSession(ws.registry, sessionID)
	if err != nil {
		return models.WishlistItem{}, err
	}

	cfg, err := ws.resolve(req)
	if err != nil {
		return models.WishlistItem{}, err
	}

	var item models.WishlistItem
	_ = s.Update(func(st session.State) error {
		item = st.Wishlist.Add(cfg)
		return nil
	})
	util.LogInfo("wishlist item added", zap.String("sessionId", sessionID), zap.String("itemId", item.Id))
	return item, nil
}

func (ws *WishlistServiceImpl) GetWishlist(_ context.Context, sessionID string) ([]models.WishlistItem, error) {
	s, err := lookupSession(ws.registry, sessionID)
	if err != nil {
		return nil, err
	}

	var items []models.WishlistItem
	s.View(func(st session.State) {
		items = st.Wishlist.Items()
	})
	return items, nil
}

func (ws *WishlistServiceImpl) RemoveWishlistItem(_ context.Context, sessionID, itemID string) error {
	s, err := lookupSession(ws.registry, sessionID)
	if err != nil {
		return err
	}

	return s.Update(func(st session.State) error {
		if !st.Wishlist.Remove(itemID) {
			return errors.Wrapf(ErrItemNotFound, "wishlist item %s", itemID)
		}
		return nil
	})
}

func (ws *WishlistServiceImpl) ClearWishlist(_ context.Context, sessionID string) (int, error) {
	s, err := lookupSession(ws.registry, sessionID)
	if err != nil {
		return 0, err
	}

	var removed int
	_ = s.Update(func(st session.State) error {
		removed = st.Wishlist.Clear()
		return nil
	})
	return removed, nil
}

// IsInWishlist matches on product id only, whatever the configuration.
func (ws *WishlistServiceImpl) IsInWishlist(_ context.Context, sessionID, productID string) (bool, error) {
	s, err := lookupSession(ws.registry, sessionID)
	if err != nil {
		return false, err
	}

	var found bool
	s.View(func(st session.State) {
		found = st.Wishlist.Contains(productID)
	})
	return found, nil
}
