package services

import (
	"sort"
	"strings"

	"virtual-product-studio/api/pkg/models"
)

type FilterServiceImpl struct {
	labels func(deviceType string) string
}

// NewFilterService takes the label lookup used to title device-type groups.
// A nil lookup labels groups with the raw tag.
func NewFilterService(labels func(deviceType string) string) FilterService {
	if labels == nil {
		labels = func(deviceType string) string { return deviceType }
	}
	return &FilterServiceImpl{labels: labels}
}

// Filter returns the products matching every non-empty criterion, in input order.
func (fs *FilterServiceImpl) Filter(products []models.Product, criteria models.FilterCriteria) []models.Product {
	query := strings.ToLower(strings.TrimSpace(criteria.TextQuery))
	brands := toSet(criteria.Brands)
	deviceTypes := toSet(criteria.DeviceTypes)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesText(p, query) {
			continue
		}
		if criteria.PriceRange != nil && !criteria.PriceRange.Contains(p.BasePrice) {
			continue
		}
		if len(brands) > 0 && !brands[p.BrandName] {
			continue
		}
		if len(deviceTypes) > 0 && !deviceTypes[string(p.DeviceType)] {
			continue
		}
		if criteria.MinRating > 0 && p.Rating() < criteria.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesText(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.BrandName), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// GroupByDeviceType buckets products by device type. Groups appear in the
// order their first product does and keep input order inside.
func (fs *FilterServiceImpl) GroupByDeviceType(products []models.Product) []models.DeviceTypeGroup {
	groups := []models.DeviceTypeGroup{}
	index := make(map[models.ProductType]int)
	for _, p := range products {
		i, ok := index[p.DeviceType]
		if !ok {
			i = len(groups)
			index[p.DeviceType] = i
			groups = append(groups, models.DeviceTypeGroup{
				DeviceType: p.DeviceType,
				Label:      fs.labels(string(p.DeviceType)),
			})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// SortProducts returns a sorted copy. Ties keep their input order.
func (fs *FilterServiceImpl) SortProducts(products []models.Product, order models.ProductSort) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	var less func(a, b models.Product) bool
	switch order {
	case models.ProductSortPriceAsc:
		less = func(a, b models.Product) bool { return a.BasePrice < b.BasePrice }
	case models.ProductSortPriceDesc:
		less = func(a, b models.Product) bool { return a.BasePrice > b.BasePrice }
	case models.ProductSortNameAsc:
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case models.ProductSortNameDesc:
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) > strings.ToLower(b.Name) }
	case models.ProductSortRatingDesc:
		less = func(a, b models.Product) bool { return a.Rating() > b.Rating() }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ActiveFilterCount counts restricting facets: brands, device types, rating,
// and a price range narrower than the catalog's.
func (fs *FilterServiceImpl) ActiveFilterCount(criteria models.FilterCriteria, stats models.PriceStats) int {
	count := 0
	if len(criteria.Brands) > 0 {
		count++
	}
	if len(criteria.DeviceTypes) > 0 {
		count++
	}
	if criteria.MinRating > 0 {
		count++
	}
	if r := criteria.PriceRange; r != nil && (r.Min > stats.Min || r.Max < stats.Max) {
		count++
	}
	return count
}
