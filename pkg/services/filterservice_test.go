package services

import (
	"testing"

	"virtual-product-studio/api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.Id
	}
	return ids
}

func newTestFilter() (FilterService, CatalogService) {
	catalog := newTestCatalog()
	return NewFilterService(catalog.DeviceTypeLabel), catalog
}

func TestFilterEmptyCriteriaKeepsInput(t *testing.T) {
	filter, catalog := newTestFilter()
	all := catalog.GetAll()

	assert.Equal(t, productIDs(all), productIDs(filter.Filter(all, models.FilterCriteria{})))
}

func TestFilterTextQuery(t *testing.T) {
	filter, catalog := newTestFilter()

	cases := []struct {
		query string
		want  []string
	}{
		{"  PRO  ", []string{"mobile", "laptop", "tablet", "camera", "drone", "vr", "audio", "accessories"}},
		{"quantum", []string{"mobile"}},
		{"headphones", []string{"audio"}},
		{"nothing matches this", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := filter.Filter(catalog.GetAll(), models.FilterCriteria{TextQuery: tc.query})
			assert.Equal(t, tc.want, productIDs(got))
		})
	}
}

func TestFilterPriceRangeIsInclusive(t *testing.T) {
	filter, catalog := newTestFilter()

	got := filter.Filter(catalog.GetAll(), models.FilterCriteria{PriceRange: &models.PriceRange{Min: 399, Max: 799}})
	assert.Equal(t, []string{"tablet", "watch", "vr", "gaming"}, productIDs(got))
}

func TestFilterBrandsDeviceTypesAndRating(t *testing.T) {
	filter, catalog := newTestFilter()
	all := catalog.GetAll()

	got := filter.Filter(all, models.FilterCriteria{Brands: []string{"Pulse", "Sonic"}})
	assert.Equal(t, []string{"watch", "audio"}, productIDs(got))

	got = filter.Filter(all, models.FilterCriteria{DeviceTypes: []string{"tv", "mobile"}})
	assert.Equal(t, []string{"mobile", "tv"}, productIDs(got))

	got = filter.Filter(all, models.FilterCriteria{MinRating: 4.6})
	assert.Equal(t, []string{"mobile", "watch"}, productIDs(got))

	got = filter.Filter(all, models.FilterCriteria{MinRating: 4.6, DeviceTypes: []string{"watch", "laptop"}})
	assert.Equal(t, []string{"watch"}, productIDs(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	filter, catalog := newTestFilter()
	criteria := models.FilterCriteria{TextQuery: "pro", PriceRange: &models.PriceRange{Min: 300, Max: 1500}}

	once := filter.Filter(catalog.GetAll(), criteria)
	twice := filter.Filter(once, criteria)
	assert.Equal(t, productIDs(once), productIDs(twice))
}

func TestGroupByDeviceType(t *testing.T) {
	filter, catalog := newTestFilter()
	laptop, _ := catalog.GetByID("laptop")
	phone, _ := catalog.GetByID("mobile")
	second := phone
	second.Id = "mobile-2"

	groups := filter.GroupByDeviceType([]models.Product{laptop, phone, second})
	require.Len(t, groups, 2)
	assert.Equal(t, models.ProductTypeLaptop, groups[0].DeviceType)
	assert.Equal(t, "Laptops", groups[0].Label)
	assert.Equal(t, []string{"mobile", "mobile-2"}, productIDs(groups[1].Products))

	assert.Empty(t, filter.GroupByDeviceType(nil))
}

func TestSortProducts(t *testing.T) {
	filter, catalog := newTestFilter()
	all := catalog.GetAll()

	byPrice := filter.SortProducts(all, models.ProductSortPriceAsc)
	assert.Equal(t, "accessories", byPrice[0].Id)
	assert.Equal(t, "pc", byPrice[len(byPrice)-1].Id)
	// vr and gaming share a price and keep catalog order.
	assert.Equal(t, []string{"vr", "gaming"}, productIDs(byPrice[3:5]))

	byRating := filter.SortProducts(all, models.ProductSortRatingDesc)
	assert.Equal(t, []string{"watch", "mobile", "laptop", "pc"}, productIDs(byRating[:4]))

	byName := filter.SortProducts(all, models.ProductSortNameDesc)
	assert.Equal(t, "VisionX Pro", byName[0].Name)

	assert.Equal(t, productIDs(all), productIDs(filter.SortProducts(all, models.ProductSortDefault)))
	assert.Equal(t, "mobile", all[0].Id, "input must not be reordered")
}

func TestActiveFilterCount(t *testing.T) {
	filter, catalog := newTestFilter()
	stats := catalog.PriceStats()

	assert.Zero(t, filter.ActiveFilterCount(models.FilterCriteria{}, stats))
	assert.Zero(t, filter.ActiveFilterCount(models.FilterCriteria{PriceRange: &models.PriceRange{Min: stats.Min, Max: stats.Max}}, stats))

	criteria := models.FilterCriteria{
		Brands:      []string{"Pulse", "Sonic"},
		DeviceTypes: []string{"watch"},
		MinRating:   4,
		PriceRange:  &models.PriceRange{Min: stats.Min, Max: 1000},
	}
	assert.Equal(t, 4, filter.ActiveFilterCount(criteria, stats))
}
