package models

// PriceRange is an inclusive bound on a product's base price.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether price lies inside the range.
func (r PriceRange) Contains(price int) bool {
	return price >= r.Min && price <= r.Max
}

// FilterCriteria holds the catalog filter. Zero-valued fields do not restrict.
type FilterCriteria struct {
	TextQuery   string      `json:"textQuery,omitempty"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
	Brands      []string    `json:"brands,omitempty"`
	DeviceTypes []string    `json:"deviceTypes,omitempty"`
	MinRating   float64     `json:"minRating,omitempty" validate:"gte=0,lte=5"`
	Sort        ProductSort `json:"sort,omitempty"`
}

type ProductSort string

const (
	ProductSortDefault    ProductSort = ""
	ProductSortPriceAsc   ProductSort = "price_asc"
	ProductSortPriceDesc  ProductSort = "price_desc"
	ProductSortNameAsc    ProductSort = "name_asc"
	ProductSortNameDesc   ProductSort = "name_desc"
	ProductSortRatingDesc ProductSort = "rating_desc"
)

// ParseProductSort maps a query value to a sort. Unknown values keep catalog order.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case ProductSortPriceAsc, ProductSortPriceDesc, ProductSortNameAsc, ProductSortNameDesc, ProductSortRatingDesc:
		return ProductSort(s)
	default:
		return ProductSortDefault
	}
}

type PriceStats struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DeviceTypeGroup is one bucket of GroupByDeviceType.
type DeviceTypeGroup struct {
	DeviceType ProductType `json:"deviceType"`
	Label      string      `json:"label"`
	Products   []Product   `json:"products"`
}

type CatalogFacets struct {
	Brands      []string   `json:"brands"`
	DeviceTypes []string   `json:"deviceTypes"`
	PriceStats  PriceStats `json:"priceStats"`
}
