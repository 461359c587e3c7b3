package controllers

import (
	"context"
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/internal/middleware"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// WithTimeout creates a context with the standard request timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}

// SessionID returns the session id checked by middleware.RequireSession,
// falling back to the path parameter.
func SessionID(c *gin.Context) string {
	if id := c.GetString(middleware.SessionIDKey); id != "" {
		return id
	}
	return c.Param("sessionid")
}

// BindJSONAndValidate binds JSON and handles validation errors
func BindJSONAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	if err := common.Validate.Struct(obj); err != nil {
		if fields := common.FieldErrors(err); fields != nil {
			util.HandleFieldErrors(c, http.StatusBadRequest, "validation failed", fields)
			return false
		}
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	return true
}

// HandleServiceError maps service errors to HTTP statuses
func HandleServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		util.HandleFieldErrors(c, http.StatusBadRequest, "validation failed", verr.Fields)
		return
	}

	switch errors.Cause(err) {
	case services.ErrProductNotFound, services.ErrColorNotFound, services.ErrSessionNotFound,
		services.ErrItemNotFound, services.ErrOrderNotFound:
		util.HandleError(c, http.StatusNotFound, err)
	case services.ErrIncompleteConfiguration, services.ErrEmptyCart, services.ErrNothingToCheckout:
		util.HandleError(c, http.StatusBadRequest, err)
	default:
		util.HandleError(c, http.StatusInternalServerError, err)
	}
}

// HandlePaginationAndResponse is a utility for common pagination responses
func HandlePaginationAndResponse(c *gin.Context, data any, count int64, paginationArgs util.PaginationArgs, message string) {
	util.HandleSuccessMeta(c, http.StatusOK, message, data, gin.H{
		"pagination": util.Pagination{
			Limit: paginationArgs.Limit,
			Skip:  paginationArgs.Skip,
			Count: count,
		},
	})
}

// publishEvent announces a session change without holding up the response.
func publishEvent(events internal.EventPublisher, eventType internal.SessionEventType, sessionID, payload string) {
	go func() {
		if err := events.Publish(context.Background(), eventType, sessionID, payload); err != nil {
			util.LogError("Failed to publish session event", err,
				zap.String("type", string(eventType)),
				zap.String("sessionId", sessionID))
		}
	}()
}
