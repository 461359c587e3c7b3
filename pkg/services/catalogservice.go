package services

import (
	"sort"

	"virtual-product-studio/api/pkg/data"
	"virtual-product-studio/api/pkg/models"

	slug2 "github.com/gosimple/slug"
)

// CatalogServiceImpl is an immutable in-memory catalog built once at startup.
type CatalogServiceImpl struct {
	products   []models.Product
	byID       map[string]int
	categories []models.Category
	labels     map[string]string
	stats      models.PriceStats
}

// NewCatalogService builds the catalog. Products get their rating and review
// count from reviews; missing taxonomy slugs are derived from names.
func NewCatalogService(products []models.Product, categories []models.Category, reviews ReviewService) CatalogService {
	cs := &CatalogServiceImpl{
		products:   make([]models.Product, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: normalizeCategories(categories),
		labels:     make(map[string]string),
	}

	for i, p := range products {
		if reviews != nil {
			if count := reviews.ReviewCount(p.Id); count > 0 {
				avg := reviews.AverageRating(p.Id)
				p.AverageRating = &avg
				p.ReviewCount = count
			}
		}
		cs.products[i] = p
		if _, dup := cs.byID[p.Id]; !dup {
			cs.byID[p.Id] = i
		}
	}

	for _, c := range cs.categories {
		for _, dt := range c.DeviceTypes {
			cs.labels[dt.Id] = dt.Name
		}
	}

	if len(cs.products) > 0 {
		cs.stats = models.PriceStats{Min: cs.products[0].BasePrice, Max: cs.products[0].BasePrice}
		for _, p := range cs.products[1:] {
			cs.stats.Min = min(cs.stats.Min, p.BasePrice)
			cs.stats.Max = max(cs.stats.Max, p.BasePrice)
		}
	}

	return cs
}

func normalizeCategories(categories []models.Category) []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		if c.Slug == "" {
			c.Slug = slug2.Make(c.Name)
		}
		deviceTypes := make([]models.DeviceType, len(c.DeviceTypes))
		for j, dt := range c.DeviceTypes {
			if dt.Slug == "" {
				dt.Slug = slug2.Make(dt.Name)
			}
			brands := make([]models.Brand, len(dt.Brands))
			for k, b := range dt.Brands {
				if b.Slug == "" {
					b.Slug = slug2.Make(b.Name)
				}
				brands[k] = b
			}
			dt.Brands = brands
			deviceTypes[j] = dt
		}
		c.DeviceTypes = deviceTypes
		out[i] = c
	}
	return out
}

func (cs *CatalogServiceImpl) GetAll() []models.Product {
	out := make([]models.Product, len(cs.products))
	copy(out, cs.products)
	return out
}

func (cs *CatalogServiceImpl) GetByID(id string) (models.Product, bool) {
	i, ok := cs.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return cs.products[i], true
}

func (cs *CatalogServiceImpl) GetByDeviceType(deviceType string) []models.Product {
	return cs.where(func(p models.Product) bool { return string(p.DeviceType) == deviceType })
}

func (cs *CatalogServiceImpl) GetByBrand(brandID string) []models.Product {
	return cs.where(func(p models.Product) bool { return p.BrandId == brandID })
}

func (cs *CatalogServiceImpl) where(match func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range cs.products {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (cs *CatalogServiceImpl) Categories() []models.Category {
	return normalizeCategories(cs.categories)
}

// DeviceTypeLabel falls back to the tag itself for unknown device types.
func (cs *CatalogServiceImpl) DeviceTypeLabel(deviceType string) string {
	if label, ok := cs.labels[deviceType]; ok {
		return label
	}
	if label, ok := data.DeviceTypeLabels[models.ProductType(deviceType)]; ok {
		return label
	}
	return deviceType
}

// ResolvePath finds the breadcrumb for a device type and brand. With no device
// type, the brand is looked up across the whole taxonomy.
func (cs *CatalogServiceImpl) ResolvePath(deviceType, brandID string) models.CategoryPath {
	var path models.CategoryPath
	if deviceType == "" && brandID == "" {
		return path
	}

	for ci := range cs.categories {
		c := cs.categories[ci]
		for di := range c.DeviceTypes {
			dt := c.DeviceTypes[di]
			if deviceType != "" && dt.Id != deviceType {
				continue
			}
			if brandID == "" {
				path.Category = &c
				path.DeviceType = &dt
				return path
			}
			for bi := range dt.Brands {
				if dt.Brands[bi].Id == brandID {
					b := dt.Brands[bi]
					path.Category = &c
					path.DeviceType = &dt
					path.Brand = &b
					return path
				}
			}
			if deviceType != "" {
				path.Category = &c
				path.DeviceType = &dt
				return path
			}
		}
	}
	return path
}

// Brands lists the distinct brand names of catalog products, sorted.
func (cs *CatalogServiceImpl) Brands() []string {
	return cs.distinct(func(p models.Product) string { return p.BrandName })
}

// DeviceTypes lists the distinct device-type tags of catalog products, sorted.
func (cs *CatalogServiceImpl) DeviceTypes() []string {
	return cs.distinct(func(p models.Product) string { return string(p.DeviceType) })
}

func (cs *CatalogServiceImpl) distinct(field func(models.Product) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range cs.products {
		v := field(p)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (cs *CatalogServiceImpl) PriceStats() models.PriceStats {
	return cs.stats
}

func (cs *CatalogServiceImpl) Facets() models.CatalogFacets {
	return models.CatalogFacets{
		Brands:      cs.Brands(),
		DeviceTypes: cs.DeviceTypes(),
		PriceStats:  cs.stats,
	}
}
