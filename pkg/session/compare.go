package session

import "virtual-product-studio/api/pkg/models"

const MaxCompareItems = 3

// Compare holds up to MaxCompareItems configurations, one per product.
type Compare struct {
	items []models.CompareItem
}

func NewCompare() *Compare {
	return &Compare{}
}

// Add appends the configuration unless the product is already present or
// the list is full. Both cases are no-ops reporting false.
func (c *Compare) Add(cfg models.Configuration) bool {
	if len(c.items) >= MaxCompareItems || c.Contains(cfg.Product.Id) {
		return false
	}
	cfg.Variants = cfg.Variants.Clone()
	c.items = append(c.items, models.CompareItem{Configuration: cfg})
	return true
}

func (c *Compare) Remove(productID string) bool {
	for i := range c.items {
		if c.items[i].Product.Id == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Compare) Contains(productID string) bool {
	for _, item := range c.items {
		if item.Product.Id == productID {
			return true
		}
	}
	return false
}

func (c *Compare) Full() bool {
	return len(c.items) >= MaxCompareItems
}

func (c *Compare) Clear() int {
	n := len(c.items)
	c.items = nil
	return n
}

func (c *Compare) Items() []models.CompareItem {
	out := make([]models.CompareItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Compare) Count() int {
	return len(c.items)
}
