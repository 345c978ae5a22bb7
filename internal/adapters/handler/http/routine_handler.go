package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focusflow/focusflow-engine/internal/adapters/handler/http/middleware"
	"github.com/focusflow/focusflow-engine/internal/core/services"
)

type RoutineHandler struct {
	svc *services.RoutineService
}

func NewRoutineHandler(svc *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{svc: svc}
}

type createRoutineRequest struct {
	Title       string `json:"title" binding:"required"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

func (h *RoutineHandler) RegisterRoutes(router *gin.RouterGroup) {
	routines := router.Group("/routines")
	{
		routines.POST("", h.Create)
		routines.GET("", h.List)
		routines.PATCH("/:id/log", h.ToggleLog)
		routines.DELETE("/:id", h.Delete)
	}
}

func (h *RoutineHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	routine, err := h.svc.Create(c.Request.Context(), services.CreateRoutineInput{
		UserID:      userID,
		Title:       req.Title,
		TimeLabel:   req.Time,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, routine)
}

func (h *RoutineHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	routines, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, routines)
}

func (h *RoutineHandler) ToggleLog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req toggleLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.svc.ToggleLog(c.Request.Context(), services.ToggleRoutineLogInput{
		RoutineID: c.Param("id"),
		UserID:    userID,
		Date:      req.Date,
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "completed": *req.Completed})
}

func (h *RoutineHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
