package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/focusflow/focusflow-engine/internal/adapters/handler/http/middleware"
	"github.com/focusflow/focusflow-engine/internal/core/domain"
	"github.com/focusflow/focusflow-engine/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetPeriodSummary)
}

// GetPeriodSummary serves the scored daily series plus derived
// insights for the trailing window. The window defaults to 14 days
// and is clamped to a sane range rather than trusted from the client.
func (h *StatsHandler) GetPeriodSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	window := domain.DefaultStatsWindow
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window, expected an integer number of days"})
			return
		}
		if parsed < domain.MinStatsWindow || parsed > domain.MaxStatsWindow {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window out of range (7-30 days)"})
			return
		}
		window = parsed
	}

	input := domain.StatsInput{
		UserID:     userID,
		WindowDays: window,
		Today:      time.Now().UTC(),
	}

	summary, err := h.svc.GetPeriodSummary(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
