package session

import (
	"testing"

	"virtual-product-studio/api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemIDIgnoresSelectionOrder(t *testing.T) {
	a := configure(phone, "ocean", models.Selection{"storage": "1tb", "ram": "8gb"}, 1449)
	b := configure(phone, "ocean", models.Selection{"ram": "8gb", "storage": "1tb"}, 1449)

	assert.Equal(t, CartItemID(a), CartItemID(b))
	assert.Equal(t, `mobile-ocean-{"ram":"8gb","storage":"1tb"}`, CartItemID(a))
}

func TestCartAddMergesEqualConfigurations(t *testing.T) {
	cart := NewCart()
	cfg := configure(phone, "ocean", models.Selection{"storage": "128gb", "ram": "8gb"}, 1049)

	first := cart.Add(cfg)
	second := cart.Add(cfg)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, 2098, cart.Total())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartAddDistinctConfigurations(t *testing.T) {
	cart := NewCart()
	cart.Add(configure(phone, "ocean", models.Selection{"storage": "128gb", "ram": "8gb"}, 1049))
	cart.Add(configure(phone, "ocean", models.Selection{"storage": "1tb", "ram": "8gb"}, 1449))
	cart.Add(configure(phone, "midnight", models.Selection{"storage": "1tb", "ram": "8gb"}, 1399))

	assert.Equal(t, 3, cart.Len())
	assert.Equal(t, 1049+1449+1399, cart.Total())
}

func TestCartAddKeepsExistingPrice(t *testing.T) {
	cart := NewCart()
	sel := models.Selection{"storage": "128gb", "ram": "8gb"}
	cart.Add(configure(phone, "ocean", sel, 1049))
	item := cart.Add(configure(phone, "ocean", sel, 1))

	assert.Equal(t, 1049, item.TotalPrice)
	assert.Equal(t, 2098, cart.Total())
}

func TestCartAddCopiesSelection(t *testing.T) {
	cart := NewCart()
	sel := models.Selection{"storage": "128gb", "ram": "8gb"}
	item := cart.Add(configure(phone, "ocean", sel, 1049))

	sel["storage"] = "1tb"

	stored, ok := cart.Get(item.Id)
	require.True(t, ok)
	assert.Equal(t, "128gb", stored.Variants["storage"])
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	item := cart.Add(configure(phone, "ocean", models.Selection{"storage": "128gb", "ram": "8gb"}, 1049))

	updated, ok := cart.SetQuantity(item.Id, 5)
	require.True(t, ok)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 5245, cart.Total())

	_, ok = cart.SetQuantity(item.Id, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0, cart.Total())
}

func TestCartSetQuantityNegativeRemoves(t *testing.T) {
	cart := NewCart()
	item := cart.Add(configure(laptop, "space", nil, 1499))

	_, ok := cart.SetQuantity(item.Id, -3)
	assert.False(t, ok)
	assert.Equal(t, 0, cart.Len())
}

func TestCartUnknownItemIsNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(configure(laptop, "space", nil, 1499))

	assert.False(t, cart.Remove("missing"))
	_, ok := cart.SetQuantity("missing", 4)
	assert.False(t, ok)
	_, ok = cart.Increment("missing")
	assert.False(t, ok)
	_, ok = cart.Decrement("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartIncrementDecrement(t *testing.T) {
	cart := NewCart()
	item := cart.Add(configure(laptop, "space", nil, 1499))

	up, ok := cart.Increment(item.Id)
	require.True(t, ok)
	assert.Equal(t, 2, up.Quantity)

	down, ok := cart.Decrement(item.Id)
	require.True(t, ok)
	assert.Equal(t, 1, down.Quantity)

	_, ok = cart.Decrement(item.Id)
	assert.False(t, ok)
	assert.Equal(t, 0, cart.Len())
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	a := cart.Add(configure(laptop, "space", nil, 1499))
	cart.Add(configure(phone, "ocean", models.Selection{"storage": "128gb", "ram": "8gb"}, 1049))

	assert.True(t, cart.Remove(a.Id))
	assert.Equal(t, 1049, cart.Total())

	assert.Equal(t, 1, cart.Clear())
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.Total())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCartTotalMatchesLines(t *testing.T) {
	cart := NewCart()
	a := cart.Add(configure(laptop, "space", nil, 1499))
	cart.Add(configure(phone, "ocean", models.Selection{"storage": "1tb", "ram": "8gb"}, 1449))
	cart.SetQuantity(a.Id, 3)

	sum, count := 0, 0
	for _, item := range cart.Items() {
		sum += item.TotalPrice * item.Quantity
		count += item.Quantity
	}
	assert.Equal(t, sum, cart.Total())
	assert.Equal(t, count, cart.ItemCount())
}
