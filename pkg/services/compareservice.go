package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type CompareServiceImpl struct {
	configurator
	registry *session.Registry
}

func NewCompareService(registry *session.Registry, catalog CatalogService, pricing PricingService) CompareService {
	return &CompareServiceImpl{
		configurator: configurator{catalog: catalog, pricing: pricing},
		registry:     registry,
	}
}

// AddCompareItem adds a configuration to the compare list. A product already
// in the list, or a full list, leaves it unchanged with Added false.
func (cs *CompareServiceImpl) AddCompareItem(_ context.Context, sessionID string, req models.ConfigurationRequest) (*models.CompareAddResponse, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return nil, err
	}

	cfg, err := cs.resolve(req)
	if err != nil {
		return nil, err
	}

	resp := &models.CompareAddResponse{}
	_ = s.Update(func(st session.State) error {
		resp.Added = st.Compare.Add(cfg)
		resp.Items = st.Compare.Items()
		return nil
	})
	util.LogInfo("compare add",
		zap.String("sessionId", sessionID),
		zap.String("productId", cfg.Product.Id),
		zap.Bool("added", resp.Added))
	return resp, nil
}

func (cs *CompareServiceImpl) GetCompareItems(_ context.Context, sessionID string) ([]models.CompareItem, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return nil, err
	}

	var items []models.CompareItem
	s.View(func(st session.State) {
		items = st.Compare.Items()
	})
	return items, nil
}

func (cs *CompareServiceImpl) RemoveCompareItem(_ context.Context, sessionID, productID string) error {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return err
	}

	return s.Update(func(st session.State) error {
		if !st.Compare.Remove(productID) {
			return errors.Wrapf(ErrItemNotFound, "compare product %s", productID)
		}
		return nil
	})
}

func (cs *CompareServiceImpl) ClearCompare(_ context.Context, sessionID string) (int, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return 0, err
	}

	var removed int
	_ = s.Update(func(st session.State) error {
		removed = st.Compare.Clear()
		return nil
	})
	return removed, nil
}

func (cs *CompareServiceImpl) IsInCompare(_ context.Context, sessionID, productID string) (bool, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return false, err
	}

	var found bool
	s.View(func(st session.State) {
		found = st.Compare.Contains(productID)
	})
	return found, nil
}

func (cs *CompareServiceImpl) CompareMetrics(ctx context.Context, sessionID string) (*models.ComparisonMetrics, error) {
	items, err := cs.GetCompareItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	metrics := ComputeComparisonMetrics(items)
	return &metrics, nil
}

const maxFeatureVariants = 5

var firstNumber = regexp.MustCompile(`\d+`)

// ComputeComparisonMetrics scores compare items against each other. Price
// scores are relative to the most expensive item, so cheaper is higher.
func ComputeComparisonMetrics(items []models.CompareItem) models.ComparisonMetrics {
	out := models.ComparisonMetrics{Items: make([]models.ComparisonMetric, 0, len(items))}
	for i, item := range items {
		if i == 0 || item.TotalPrice > out.MaxPrice {
			out.MaxPrice = item.TotalPrice
		}
	}

	for _, item := range items {
		rating := item.Product.Rating()

		var radar models.RadarScores
		if out.MaxPrice != 0 {
			radar.Price = 1 - float64(item.TotalPrice)/float64(out.MaxPrice)
		}
		radar.Rating = rating / 5
		radar.Features = float64(len(item.Product.Variants)) / maxFeatureVariants
		radar.Value = radar.Rating * radar.Price

		out.Items = append(out.Items, models.ComparisonMetric{
			ProductId:  item.Product.Id,
			Name:       item.Product.Name,
			TotalPrice: item.TotalPrice,
			Rating:     rating,
			Storage:    storageMetric(item.Configuration),
			Radar:      radar,
		})
	}
	return out
}

// storageMetric reads the selected storage option, e.g. "256GB" or "1TB".
func storageMetric(cfg models.Configuration) *models.StorageMetric {
	for _, v := range cfg.Product.Variants {
		if !strings.Contains(strings.ToLower(v.Name), "storage") {
			continue
		}
		option, ok := v.Option(cfg.Variants[v.Id])
		if !ok {
			return nil
		}
		match := firstNumber.FindString(option.Label)
		if match == "" {
			return nil
		}
		gb, err := strconv.Atoi(match)
		if err != nil {
			return nil
		}
		if strings.Contains(option.Label, "TB") {
			gb *= 1000
		}
		return &models.StorageMetric{ProductId: cfg.Product.Id, Label: option.Label, GB: gb}
	}
	return nil
}
