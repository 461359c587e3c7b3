package session

import (
	"fmt"
	"time"

	"virtual-product-studio/api/pkg/models"
)

// Wishlist is an append-only list of saved configurations. Adding the same
// configuration twice yields two entries with distinct ids.
type Wishlist struct {
	items []models.WishlistItem
	stamp stamper
	now   Clock
}

func NewWishlist(now Clock) *Wishlist {
	if now == nil {
		now = time.Now
	}
	return &Wishlist{now: now}
}

func (w *Wishlist) Add(cfg models.Configuration) models.WishlistItem {
	now := w.now()
	cfg.Variants = cfg.Variants.Clone()
	item := models.WishlistItem{
		Id:            fmt.Sprintf("%s-%s-%d", cfg.Product.Id, cfg.Color.Id, w.stamp.next(now)),
		Configuration: cfg,
		AddedAt:       now,
	}
	w.items = append(w.items, item)
	return item
}

func (w *Wishlist) Remove(itemID string) bool {
	for i := range w.items {
		if w.items[i].Id == itemID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains matches on product id only.
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.items {
		if item.Product.Id == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() int {
	n := len(w.items)
	w.items = nil
	return n
}

func (w *Wishlist) Items() []models.WishlistItem {
	out := make([]models.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) Count() int {
	return len(w.items)
}
