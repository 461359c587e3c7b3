package services

import (
	"context"
	"testing"

	"virtual-product-studio/api/pkg/data"
	"virtual-product-studio/api/pkg/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	summary := ts.sessions.CreateSession(ctx)
	require.NotEmpty(t, summary.Id)

	got, err := ts.sessions.GetSession(ctx, summary.Id)
	require.NoError(t, err)
	assert.Equal(t, summary.Id, got.Id)

	require.NoError(t, ts.sessions.DeleteSession(ctx, summary.Id))
	_, err = ts.sessions.GetSession(ctx, summary.Id)
	assert.Equal(t, ErrSessionNotFound, errors.Cause(err))
	assert.Equal(t, ErrSessionNotFound, errors.Cause(ts.sessions.DeleteSession(ctx, summary.Id)))
}

func TestCartAddMergesAndTotals(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	id := ts.sessions.CreateSession(ctx).Id

	first, err := ts.cart.AddCartItem(ctx, id, phoneRequest("ocean", nil))
	require.NoError(t, err)
	assert.Equal(t, 1049, first.TotalPrice)
	assert.Equal(t, 1, first.Quantity)

	again, err := ts.cart.AddCartItem(ctx, id, phoneRequest("ocean", models.Selection{"camera": "12mp", "ram": "8gb", "storage": "128gb"}))
	require.NoError(t, err)
	assert.Equal(t, first.Id, again.Id)
	assert.Equal(t, 2, again.Quantity)

	_, err = ts.cart.AddCartItem(ctx, id, phoneRequest("ocean", models.Selection{"storage": "1tb", "ram": "8gb", "camera": "12mp"}))
	require.NoError(t, err)

	cart, err := ts.cart.GetCart(ctx, id)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemCount)
	assert.Equal(t, 2*1049+1449, cart.Total)
}

func TestCartAddRejectsBadRequests(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	id := ts.sessions.CreateSession(ctx).Id

	_, err := ts.cart.AddCartItem(ctx, id, models.ConfigurationRequest{ProductId: "toaster"})
	assert.Equal(t, ErrProductNotFound, errors.Cause(err))

	_, err = ts.cart.AddCartItem(ctx, id, phoneRequest("plaid", nil))
	assert.Equal(t, ErrColorNotFound, errors.Cause(err))

	_, err = ts.cart.AddCartItem(ctx, id, phoneRequest("", models.Selection{"storage": "1tb"}))
	assert.Equal(t, ErrIncompleteConfiguration, errors.Cause(err))

	_, err = ts.cart.AddCartItem(ctx, id, models.ConfigurationRequest{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "productId")

	_, err = ts.cart.AddCartItem(ctx, "missing", phoneRequest("", nil))
	assert.Equal(t, ErrSessionNotFound, errors.Cause(err))

	cart, err := ts.cart.GetCart(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartQuantityChanges(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	id := ts.sessions.CreateSession(ctx).Id
	item, err := ts.cart.AddCartItem(ctx, id, phoneRequest("ocean", nil))
	require.NoError(t, err)

	resp, err := ts.cart.IncreaseCartItemQuantity(ctx, id, item.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Quantity)
	assert.Equal(t, 2098, resp.TotalPrice)
	assert.Equal(t, 1049, resp.UnitPrice)

	resp, err = ts.cart.SetCartItemQuantity(ctx, id, item.Id, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Quantity)

	_, err = ts.cart.SetCartItemQuantity(ctx, id, item.Id, 1)
	require.NoError(t, err)
	resp, err = ts.cart.DecreaseCartItemQuantity(ctx, id, item.Id)
	require.NoError(t, err)
	assert.True(t, resp.Removed)
	assert.Zero(t, resp.Quantity)

	_, err = ts.cart.DecreaseCartItemQuantity(ctx, id, item.Id)
	assert.Equal(t, ErrItemNotFound, errors.Cause(err))
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	id := ts.sessions.CreateSession(ctx).Id
	item, _ := ts.cart.AddCartItem(ctx, id, phoneRequest("", nil))

	resp, err := ts.cart.SetCartItemQuantity(ctx, id, item.Id, 0)
	require.NoError(t, err)
	assert.True(t, resp.Removed)

	cart, _ := ts.cart.GetCart(ctx, id)
	assert.Empty(t, cart.Items)
}

func TestCartRemoveAndClear(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	id := ts.sessions.CreateSession(ctx).Id
	phone, _ := ts.cart.AddCartItem(ctx, id, phoneRequest("", nil))
	_, _ = ts.cart.AddCartItem(ctx, id, models.ConfigurationRequest{ProductId: "laptop"})

	require.NoError(t, ts.cart.RemoveCartItem(ctx, id, phone.Id))
	assert.Equal(t, ErrItemNotFound, errors.Cause(ts.cart.RemoveCartItem(ctx, id, phone.Id)))

	removed, err := ts.cart.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = ts.cart.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestValidateCartItemsAgainstChangedCatalog(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	id := ts.sessions.CreateSession(ctx).Id
	_, err := ts.cart.AddCartItem(ctx, id, phoneRequest("ocean", nil))
	require.NoError(t, err)
	_, err = ts.cart.AddCartItem(ctx, id, models.ConfigurationRequest{ProductId: "laptop"})
	require.NoError(t, err)
	_, err = ts.cart.AddCartItem(ctx, id, models.ConfigurationRequest{ProductId: "watch"})
	require.NoError(t, err)

	// Reprice the phone and drop the watch from the catalog.
	products := data.Products()
	repriced := products[:0]
	for _, p := range products {
		switch p.Id {
		case "mobile":
			p.BasePrice = 899
		case "watch":
			continue
		}
		repriced = append(repriced, p)
	}
	cart := NewCartService(ts.registry, NewCatalogService(repriced, data.Categories(), nil), NewPricingService())

	result, err := cart.ValidateCartItems(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalItems)
	assert.Equal(t, 1, result.TotalValid)
	assert.True(t, result.HasInvalidItems)
	require.Len(t, result.InvalidItems, 2)

	assert.Equal(t, []models.CartItemIssue{models.CartItemIssuePriceChanged}, result.InvalidItems[0].Issues)
	assert.Equal(t, 949, result.InvalidItems[0].CurrentPrice)
	assert.Equal(t, []models.CartItemIssue{models.CartItemIssueProductGone}, result.InvalidItems[1].Issues)
}
