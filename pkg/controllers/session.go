package controllers

import (
	"net/http"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessionService services.SessionService
	events         internal.EventPublisher
}

func InitSessionController(sessionService services.SessionService, events internal.EventPublisher) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		events:         events,
	}
}

// CreateSession handles POST /v1/sessions
func (sc *SessionController) CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		summary := sc.sessionService.CreateSession(ctx)
		publishEvent(sc.events, internal.EventSessionCreated, summary.Id, "")

		util.HandleSuccess(c, http.StatusCreated, "Session created", summary)
	}
}

// GetSession handles GET /v1/sessions/:sessionid
func (sc *SessionController) GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		summary, err := sc.sessionService.GetSession(ctx, SessionID(c))
		if err != nil {
			HandleServiceError(c, err)
			return
		}
		util.HandleSuccess(c, http.StatusOK, "success", summary)
	}
}

// DeleteSession handles DELETE /v1/sessions/:sessionid
func (sc *SessionController) DeleteSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		sessionID := SessionID(c)
		if err := sc.sessionService.DeleteSession(ctx, sessionID); err != nil {
			HandleServiceError(c, err)
			return
		}
		publishEvent(sc.events, internal.EventSessionDeleted, sessionID, "")

		util.HandleSuccess(c, http.StatusOK, "Session deleted", nil)
	}
}
