package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focusflow/focusflow-engine/internal/adapters/handler/http/middleware"
	"github.com/focusflow/focusflow-engine/internal/core/services"
)

type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler {
	return &MoodHandler{svc: svc}
}

type logMoodRequest struct {
	Date     string `json:"date" binding:"required"`
	MoodType string `json:"mood_type" binding:"required"`
	Message  string `json:"message"`
}

func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	mood := router.Group("/mood")
	{
		mood.POST("", h.Log)
		mood.GET("", h.Recent)
	}
}

func (h *MoodHandler) Log(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	mood, err := h.svc.Log(c.Request.Context(), services.LogMoodInput{
		UserID:   userID,
		Date:     req.Date,
		MoodType: req.MoodType,
		Message:  req.Message,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mood)
}

func (h *MoodHandler) Recent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	moods, err := h.svc.Recent(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, moods)
}
