package session

import (
	"time"

	"virtual-product-studio/api/pkg/models"
)

var phone = models.Product{
	Id:         "mobile",
	Name:       "Quantum Phone Pro",
	BasePrice:  999,
	BrandId:    "quantum",
	BrandName:  "Quantum",
	DeviceType: models.ProductTypeMobile,
	Colors: []models.ProductColor{
		{Id: "midnight", Name: "Midnight Black", Hex: "#1a1a2e", Price: 0},
		{Id: "ocean", Name: "Ocean Blue", Hex: "#0ea5e9", Price: 50},
	},
	Variants: []models.ProductVariant{
		{Id: "storage", Name: "Storage", Options: []models.VariantOption{
			{Id: "128gb", Label: "128 GB", Price: 0},
			{Id: "1tb", Label: "1 TB", Price: 400},
		}},
		{Id: "ram", Name: "RAM", Options: []models.VariantOption{
			{Id: "8gb", Label: "8 GB", Price: 0},
		}},
	},
}

var laptop = models.Product{
	Id:         "laptop",
	Name:       "NovaPro Laptop",
	BasePrice:  1499,
	BrandId:    "novapro",
	BrandName:  "NovaPro",
	DeviceType: models.ProductTypeLaptop,
	Colors:     []models.ProductColor{{Id: "space", Name: "Space Gray", Hex: "#374151"}},
}

func configure(p models.Product, colorID string, sel models.Selection, total int) models.Configuration {
	color, _ := p.Color(colorID)
	return models.Configuration{Product: p, Color: color, Variants: sel, TotalPrice: total}
}

func productWithID(id string) models.Product {
	p := laptop
	p.Id = id
	return p
}

// fixedClock never advances, so every stamp has to be bumped.
func fixedClock() Clock {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t }
}

type manualClock struct {
	t time.Time
}

func (m *manualClock) Now() time.Time { return m.t }

func (m *manualClock) Advance(d time.Duration) { m.t = m.t.Add(d) }
