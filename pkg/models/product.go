package models

import (
	"encoding/json"
	"sort"
)

// ProductType is the device-type tag a product is filed under.
type ProductType string

const (
	ProductTypeMobile      ProductType = "mobile"
	ProductTypeLaptop      ProductType = "laptop"
	ProductTypePC          ProductType = "pc"
	ProductTypeTablet      ProductType = "tablet"
	ProductTypeWatch       ProductType = "watch"
	ProductTypeTV          ProductType = "tv"
	ProductTypeCamera      ProductType = "camera"
	ProductTypeDrone       ProductType = "drone"
	ProductTypeVR          ProductType = "vr"
	ProductTypeAudio       ProductType = "audio"
	ProductTypeGaming      ProductType = "gaming"
	ProductTypeAccessories ProductType = "accessories"
)

type ProductColor struct {
	Id    string `bson:"id" json:"id" validate:"required"`
	Name  string `bson:"name" json:"name" validate:"required"`
	Hex   string `bson:"hex" json:"hex" validate:"required,hexcolor"`
	Price int    `bson:"price" json:"price" validate:"gte=0"`
}

// VariantOption price is a delta over the base price and may be negative.
type VariantOption struct {
	Id    string `bson:"id" json:"id" validate:"required"`
	Label string `bson:"label" json:"label" validate:"required"`
	Price int    `bson:"price" json:"price"`
}

type ProductVariant struct {
	Id      string          `bson:"id" json:"id" validate:"required"`
	Name    string          `bson:"name" json:"name" validate:"required"`
	Options []VariantOption `bson:"options" json:"options" validate:"min=1,dive"`
}

// Option looks up one of the variant's options by id.
func (v ProductVariant) Option(optionID string) (VariantOption, bool) {
	for _, o := range v.Options {
		if o.Id == optionID {
			return o, true
		}
	}
	return VariantOption{}, false
}

type Product struct {
	Id            string           `bson:"_id" json:"id" validate:"required"`
	Name          string           `bson:"name" json:"name" validate:"required"`
	BasePrice     int              `bson:"base_price" json:"basePrice" validate:"gte=0"`
	Description   string           `bson:"description" json:"description"`
	BrandId       string           `bson:"brand_id" json:"brandId" validate:"required"`
	BrandName     string           `bson:"brand_name" json:"brandName" validate:"required"`
	DeviceType    ProductType      `bson:"device_type" json:"deviceType" validate:"required"`
	Colors        []ProductColor   `bson:"colors" json:"colors" validate:"min=1,dive"`
	Variants      []ProductVariant `bson:"variants" json:"variants" validate:"dive"`
	AverageRating *float64         `bson:"-" json:"averageRating,omitempty"`
	ReviewCount   int              `bson:"-" json:"reviewCount,omitempty"`
	Position      int              `bson:"position" json:"-"`
}

// Color looks up a color offered by the product.
func (p Product) Color(colorID string) (ProductColor, bool) {
	for _, c := range p.Colors {
		if c.Id == colorID {
			return c, true
		}
	}
	return ProductColor{}, false
}

// Variant looks up a declared variant of the product.
func (p Product) Variant(variantID string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.Id == variantID {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// Rating returns the average rating, 0 when the product has none.
func (p Product) Rating() float64 {
	if p.AverageRating == nil {
		return 0
	}
	return *p.AverageRating
}

// Selection maps a variant id to the chosen option id.
type Selection map[string]string

// Key renders the selection as JSON with sorted keys, so two selections
// with the same entries always produce the same key.
func (s Selection) Key() string {
	if len(s) == 0 {
		return "{}"
	}
	data, err := json.Marshal(map[string]string(s))
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// VariantIds returns the selected variant ids in sorted order.
func (s Selection) VariantIds() []string {
	ids := make([]string, 0, len(s))
	for k := range s {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}

// Configuration is a product with a chosen color, variant selection and
// the total price computed at the time it was resolved.
type Configuration struct {
	Product    Product      `json:"product"`
	Color      ProductColor `json:"color"`
	Variants   Selection    `json:"variants"`
	TotalPrice int          `json:"totalPrice"`
}

// ConfigurationRequest is the client-side description of a configuration.
// An empty color picks the product's first color and an empty selection
// resolves to the product defaults.
type ConfigurationRequest struct {
	ProductId string    `json:"productId" validate:"required"`
	ColorId   string    `json:"colorId"`
	Variants  Selection `json:"variants"`
}

type PriceLineKind string

const (
	PriceLineBase    PriceLineKind = "base"
	PriceLineColor   PriceLineKind = "color"
	PriceLineVariant PriceLineKind = "variant"
)

type PriceLine struct {
	Kind     PriceLineKind `json:"kind"`
	Id       string        `json:"id"`
	Label    string        `json:"label"`
	OptionId string        `json:"optionId,omitempty"`
	Amount   int           `json:"amount"`
}

type PriceBreakdown struct {
	ProductId string      `json:"productId"`
	Lines     []PriceLine `json:"lines"`
	Total     int         `json:"total"`
	Negative  bool        `json:"negative"`
}
