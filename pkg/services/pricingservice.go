package services

import (
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PricingServiceImpl struct{}

func NewPricingService() PricingService {
	return &PricingServiceImpl{}
}

// ComputeTotal adds the base price, the color surcharge and the price of every
// selected option. Selections naming unknown variants or options add nothing.
func (ps *PricingServiceImpl) ComputeTotal(product models.Product, color models.ProductColor, selection models.Selection) int {
	total := product.BasePrice + color.Price
	for _, v := range product.Variants {
		optionID, ok := selection[v.Id]
		if !ok {
			continue
		}
		if option, ok := v.Option(optionID); ok {
			total += option.Price
		}
	}
	return total
}

// Breakdown itemises ComputeTotal. Variant lines follow declaration order.
func (ps *PricingServiceImpl) Breakdown(product models.Product, color models.ProductColor, selection models.Selection) models.PriceBreakdown {
	lines := []models.PriceLine{
		{Kind: models.PriceLineBase, Id: product.Id, Label: product.Name, Amount: product.BasePrice},
		{Kind: models.PriceLineColor, Id: color.Id, Label: color.Name, Amount: color.Price},
	}
	for _, v := range product.Variants {
		optionID, ok := selection[v.Id]
		if !ok {
			continue
		}
		option, ok := v.Option(optionID)
		if !ok {
			continue
		}
		lines = append(lines, models.PriceLine{
			Kind:     models.PriceLineVariant,
			Id:       v.Id,
			Label:    v.Name + ": " + option.Label,
			OptionId: option.Id,
			Amount:   option.Price,
		})
	}

	total := ps.ComputeTotal(product, color, selection)
	return models.PriceBreakdown{
		ProductId: product.Id,
		Lines:     lines,
		Total:     total,
		Negative:  total < 0,
	}
}

// DefaultSelection picks the first option of every variant.
func (ps *PricingServiceImpl) DefaultSelection(product models.Product) models.Selection {
	selection := make(models.Selection, len(product.Variants))
	for _, v := range product.Variants {
		if len(v.Options) > 0 {
			selection[v.Id] = v.Options[0].Id
		}
	}
	return selection
}

// IsComplete reports whether every declared variant names one of its own options.
func (ps *PricingServiceImpl) IsComplete(product models.Product, selection models.Selection) bool {
	for _, v := range product.Variants {
		optionID, ok := selection[v.Id]
		if !ok {
			return false
		}
		if _, ok := v.Option(optionID); !ok {
			return false
		}
	}
	return true
}

// Resolve turns a client selection into a priced configuration. An empty color
// picks the first color and an empty selection picks the defaults; any other
// selection must be complete. Keys for undeclared variants are dropped.
func (ps *PricingServiceImpl) Resolve(product models.Product, colorID string, selection models.Selection) (models.Configuration, error) {
	var color models.ProductColor
	switch {
	case colorID == "" && len(product.Colors) > 0:
		color = product.Colors[0]
	case colorID == "":
		return models.Configuration{}, errors.Wrapf(ErrColorNotFound, "product %s has no colors", product.Id)
	default:
		c, ok := product.Color(colorID)
		if !ok {
			return models.Configuration{}, errors.Wrapf(ErrColorNotFound, "color %s on product %s", colorID, product.Id)
		}
		color = c
	}

	var resolved models.Selection
	if len(selection) == 0 {
		resolved = ps.DefaultSelection(product)
	} else {
		if !ps.IsComplete(product, selection) {
			return models.Configuration{}, errors.Wrapf(ErrIncompleteConfiguration, "product %s", product.Id)
		}
		resolved = make(models.Selection, len(product.Variants))
		for _, v := range product.Variants {
			resolved[v.Id] = selection[v.Id]
		}
	}

	total := ps.ComputeTotal(product, color, resolved)
	if total < 0 {
		util.LogWarning("configuration resolved to a negative total",
			zap.String("productId", product.Id),
			zap.String("colorId", color.Id),
			zap.Int("total", total))
	}

	return models.Configuration{
		Product:    product,
		Color:      color,
		Variants:   resolved,
		TotalPrice: total,
	}, nil
}
