package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focusflow/focusflow-engine/internal/adapters/handler/http/middleware"
	"github.com/focusflow/focusflow-engine/internal/core/services"
)

type BadgeHandler struct {
	svc *services.BadgeService
}

func NewBadgeHandler(svc *services.BadgeService) *BadgeHandler {
	return &BadgeHandler{svc: svc}
}

func (h *BadgeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/badges", h.List)
}

func (h *BadgeHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	badges, err := h.svc.Evaluate(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, badges)
}
