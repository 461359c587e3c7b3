package services

import (
	"context"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"
	"virtual-product-studio/api/pkg/util"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type SessionServiceImpl struct {
	registry *session.Registry
}

func NewSessionService(registry *session.Registry) SessionService {
	return &SessionServiceImpl{registry: registry}
}

func (ss *SessionServiceImpl) CreateSession(_ context.Context) models.SessionSummary {
	s := ss.registry.Create()
	util.LogDebug("session created", zap.String("sessionId", s.Id))
	return s.Summary()
}

func (ss *SessionServiceImpl) GetSession(_ context.Context, sessionID string) (models.SessionSummary, error) {
	s, err := lookupSession(ss.registry, sessionID)
	if err != nil {
		return models.SessionSummary{}, err
	}
	return s.Summary(), nil
}

func (ss *SessionServiceImpl) DeleteSession(_ context.Context, sessionID string) error {
	if !ss.registry.Delete(sessionID) {
		return errors.Wrapf(ErrSessionNotFound, "session %s", sessionID)
	}
	util.LogDebug("session deleted", zap.String("sessionId", sessionID))
	return nil
}

// lookupSession returns a live session or ErrSessionNotFound.
func lookupSession(registry *session.Registry, sessionID string) (*session.Session, error) {
	s, ok := registry.Get(sessionID)
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "session %s", sessionID)
	}
	return s, nil
}

// configurator gates client configuration requests against the catalog.
type configurator struct {
	catalog CatalogService
	pricing PricingService
}

func (c configurator) resolve(req models.ConfigurationRequest) (models.Configuration, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return models.Configuration{}, &ValidationError{Fields: common.FieldErrors(err)}
	}
	product, ok := c.catalog.GetByID(req.ProductId)
	if !ok {
		return models.Configuration{}, errors.Wrapf(ErrProductNotFound, "product %s", req.ProductId)
	}
	return c.pricing.Resolve(product, req.ColorId, req.Variants)
}
