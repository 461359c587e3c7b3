package middleware

import (
	"context"
	"net/http"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/util"

	"github.com/gin-gonic/gin"
)

const SessionIDKey = "sessionID"

// RequireSession rejects requests whose :sessionid is unknown or expired and
// stores the id under SessionIDKey for the handlers.
func RequireSession(sessions services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), common.REQUEST_TIMEOUT_SECS)
		defer cancel()

		sessionID := c.Param("sessionid")
		if _, err := sessions.GetSession(ctx, sessionID); err != nil {
			util.HandleError(c, http.StatusNotFound, err)
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
