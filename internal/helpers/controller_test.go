package helpers

import (
	"net/http/httptest"
	"testing"

	"virtual-product-studio/api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetFilterCriteria(t *testing.T) {
	stats := models.PriceStats{Min: 199, Max: 2499}
	c := contextFor("/products?q=pro&brand=Pulse,Sonic&brand=Quantum&deviceType=watch&maxPrice=900&minRating=4.5&sort=price_desc")

	criteria, err := GetFilterCriteria(c, stats)
	require.NoError(t, err)
	assert.Equal(t, "pro", criteria.TextQuery)
	assert.Equal(t, []string{"Pulse", "Sonic", "Quantum"}, criteria.Brands)
	assert.Equal(t, []string{"watch"}, criteria.DeviceTypes)
	assert.Equal(t, &models.PriceRange{Min: 199, Max: 900}, criteria.PriceRange)
	assert.Equal(t, 4.5, criteria.MinRating)
	assert.Equal(t, models.ProductSortPriceDesc, criteria.Sort)
}

func TestGetFilterCriteriaDefaults(t *testing.T) {
	criteria, err := GetFilterCriteria(contextFor("/products?sort=bogus"), models.PriceStats{})
	require.NoError(t, err)
	assert.Nil(t, criteria.PriceRange)
	assert.Empty(t, criteria.Brands)
	assert.Equal(t, models.ProductSortDefault, criteria.Sort)
}

func TestGetFilterCriteriaRejectsBadNumbers(t *testing.T) {
	_, err := GetFilterCriteria(contextFor("/products?minPrice=cheap"), models.PriceStats{})
	assert.Error(t, err)

	_, err = GetFilterCriteria(contextFor("/products?minRating=high"), models.PriceStats{})
	assert.Error(t, err)

	_, err = GetFilterCriteria(contextFor("/products?minRating=7"), models.PriceStats{})
	assert.Error(t, err)
}

func TestGetPaginationArgs(t *testing.T) {
	args := GetPaginationArgs(contextFor("/products?limit=5&skip=10"))
	assert.Equal(t, 5, args.Limit)
	assert.Equal(t, 10, args.Skip)

	args = GetPaginationArgs(contextFor("/products"))
	assert.Zero(t, args.Limit)
}
