package session

import (
	"strings"
	"testing"

	"virtual-product-studio/api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamperStrictlyIncreasing(t *testing.T) {
	clock := fixedClock()
	var s stamper

	first := s.next(clock())
	second := s.next(clock())
	third := s.next(clock())

	assert.Equal(t, clock().UnixMilli(), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestWishlistAddNeverDeduplicates(t *testing.T) {
	wl := NewWishlist(fixedClock())
	cfg := configure(laptop, "space", nil, 1499)

	a := wl.Add(cfg)
	b := wl.Add(cfg)

	assert.NotEqual(t, a.Id, b.Id)
	assert.True(t, strings.HasPrefix(a.Id, "laptop-space-"))
	assert.Equal(t, 2, wl.Count())
	assert.True(t, wl.Contains("laptop"))
	assert.False(t, wl.Contains("mobile"))
}

func TestWishlistRemove(t *testing.T) {
	wl := NewWishlist(fixedClock())
	a := wl.Add(configure(laptop, "space", nil, 1499))
	b := wl.Add(configure(laptop, "space", nil, 1499))

	assert.True(t, wl.Remove(a.Id))
	assert.False(t, wl.Remove(a.Id))
	require.Len(t, wl.Items(), 1)
	assert.Equal(t, b.Id, wl.Items()[0].Id)
	assert.True(t, wl.Contains("laptop"))

	assert.Equal(t, 1, wl.Clear())
	assert.False(t, wl.Contains("laptop"))
}

func TestCompareCapAndDedup(t *testing.T) {
	cmp := NewCompare()

	assert.True(t, cmp.Add(configure(productWithID("a"), "space", nil, 1)))
	assert.False(t, cmp.Add(configure(productWithID("a"), "space", nil, 2)))
	assert.True(t, cmp.Add(configure(productWithID("b"), "space", nil, 1)))
	assert.True(t, cmp.Add(configure(productWithID("c"), "space", nil, 1)))
	assert.True(t, cmp.Full())
	assert.False(t, cmp.Add(configure(productWithID("d"), "space", nil, 1)))

	items := cmp.Items()
	require.Len(t, items, MaxCompareItems)
	assert.Equal(t, "a", items[0].Product.Id)
	assert.Equal(t, 1, items[0].TotalPrice)
	assert.False(t, cmp.Contains("d"))
}

func TestCompareRemoveFreesSlot(t *testing.T) {
	cmp := NewCompare()
	for _, id := range []string{"a", "b", "c"} {
		cmp.Add(configure(productWithID(id), "space", nil, 1))
	}

	assert.True(t, cmp.Remove("b"))
	assert.False(t, cmp.Remove("b"))
	assert.True(t, cmp.Add(configure(productWithID("d"), "space", nil, 1)))
	assert.Equal(t, 3, cmp.Count())

	assert.Equal(t, 3, cmp.Clear())
	assert.Equal(t, 0, cmp.Count())
}

func TestOrderHistoryPrependsPending(t *testing.T) {
	orders := NewOrderHistory(fixedClock())

	first := orders.Add(configure(laptop, "space", nil, 1499), 1, nil)
	second := orders.Add(configure(phone, "ocean", models.Selection{"storage": "1tb", "ram": "8gb"}, 1449), 0, nil)

	assert.NotEqual(t, first.Id, second.Id)
	assert.True(t, strings.HasPrefix(first.Id, "ORD-"))
	assert.Equal(t, models.OrderStatusPending, first.Status)
	assert.Equal(t, 1, second.Quantity)

	items := orders.Items()
	require.Len(t, items, 2)
	assert.Equal(t, second.Id, items[0].Id)
	assert.Equal(t, first.Id, items[1].Id)

	got, ok := orders.Get(first.Id)
	require.True(t, ok)
	assert.Equal(t, 1499, got.TotalPrice)

	_, ok = orders.Get("ORD-0")
	assert.False(t, ok)

	assert.Equal(t, 2, orders.Clear())
	assert.Equal(t, 0, orders.Count())
}
