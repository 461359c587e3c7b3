package data

import (
	"testing"

	"virtual-product-studio/api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsAreOnePerDeviceType(t *testing.T) {
	products := Products()
	require.Len(t, products, 12)

	for _, p := range products {
		assert.Equal(t, string(p.DeviceType), p.Id)
		assert.NotEmpty(t, p.Colors, p.Id)
		for _, v := range p.Variants {
			require.NotEmpty(t, v.Options, "%s/%s", p.Id, v.Id)
			assert.Zero(t, v.Options[0].Price, "default option of %s/%s", p.Id, v.Id)
		}
		_, labelled := DeviceTypeLabels[models.ProductType(p.Id)]
		assert.True(t, labelled, p.Id)
	}
}

func TestProductsReturnsFreshCopies(t *testing.T) {
	first := Products()
	first[0].Name = "changed"
	first[0].Colors[0].Price = 999
	second := Products()
	assert.NotEqual(t, "changed", second[0].Name)
	assert.NotEqual(t, 999, second[0].Colors[0].Price)
}

func TestReviewsReferenceCatalogProducts(t *testing.T) {
	ids := make(map[string]bool)
	for _, p := range Products() {
		ids[p.Id] = true
	}
	for productID, reviews := range Reviews() {
		assert.True(t, ids[productID], productID)
		for _, r := range reviews {
			assert.GreaterOrEqual(t, r.Rating, 1)
			assert.LessOrEqual(t, r.Rating, 5)
		}
	}
}
