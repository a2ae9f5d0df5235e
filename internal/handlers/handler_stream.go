package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/sabzimandi/mandi_backend/internal/middleware"
	"github.com/sabzimandi/mandi_backend/internal/realtime"
)

// registerStreamRoutes registers the websocket change feed.
func registerStreamRoutes(r *gin.Engine, hub *realtime.Hub) {
	r.GET("/stream", streamHandler(hub))
}

// streamHandler godoc
// @Summary Subscribe to the change feed
// @Description Upgrades to a websocket and pushes committed record changes as JSON events
// @Tags stream
// @Success 101 "Switching Protocols"
// @Router /stream [get]
func streamHandler(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if err := hub.Subscribe(c.Writer, c.Request); err != nil {
			logger.Warn("Failed to upgrade stream connection", slog.String("error", err.Error()))
		}
	}
}
