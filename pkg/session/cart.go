package session

import (
	"fmt"

	"virtual-product-studio/api/pkg/models"
)

// CartItemID is the composite key shared by equal configurations.
func CartItemID(cfg models.Configuration) string {
	return fmt.Sprintf("%s-%s-%s", cfg.Product.Id, cfg.Color.Id, cfg.Variants.Key())
}

// Cart keeps configurations in insertion order with a quantity per line.
// It is not safe for concurrent use; Session serialises access.
type Cart struct {
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(itemID string) int {
	for i := range c.items {
		if c.items[i].Id == itemID {
			return i
		}
	}
	return -1
}

// Add inserts the configuration with quantity 1, or bumps the quantity of the
// line with the same composite key. The stored price of an existing line is kept.
func (c *Cart) Add(cfg models.Configuration) models.CartItem {
	id := CartItemID(cfg)
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity++
		return c.items[i]
	}

	cfg.Variants = cfg.Variants.Clone()
	item := models.CartItem{Id: id, Configuration: cfg, Quantity: 1}
	c.items = append(c.items, item)
	return item
}

// Get returns the line with the given id.
func (c *Cart) Get(itemID string) (models.CartItem, bool) {
	if i := c.indexOf(itemID); i >= 0 {
		return c.items[i], true
	}
	return models.CartItem{}, false
}

// Remove deletes the line. Unknown ids are a no-op reporting false.
func (c *Cart) Remove(itemID string) bool {
	i := c.indexOf(itemID)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// SetQuantity sets the quantity of a line; n <= 0 removes it.
// The returned bool is false when the line is no longer in the cart.
func (c *Cart) SetQuantity(itemID string, n int) (models.CartItem, bool) {
	i := c.indexOf(itemID)
	if i < 0 {
		return models.CartItem{}, false
	}
	if n <= 0 {
		item := c.items[i]
		item.Quantity = 0
		c.items = append(c.items[:i], c.items[i+1:]...)
		return item, false
	}
	c.items[i].Quantity = n
	return c.items[i], true
}

func (c *Cart) Increment(itemID string) (models.CartItem, bool) {
	i := c.indexOf(itemID)
	if i < 0 {
		return models.CartItem{}, false
	}
	return c.SetQuantity(itemID, c.items[i].Quantity+1)
}

// Decrement lowers the quantity by one; a line at quantity 1 is removed.
func (c *Cart) Decrement(itemID string) (models.CartItem, bool) {
	i := c.indexOf(itemID)
	if i < 0 {
		return models.CartItem{}, false
	}
	return c.SetQuantity(itemID, c.items[i].Quantity-1)
}

// Clear empties the cart and returns how many lines were dropped.
func (c *Cart) Clear() int {
	n := len(c.items)
	c.items = nil
	return n
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price times quantity over every line.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Len() int {
	return len(c.items)
}
