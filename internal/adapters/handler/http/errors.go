package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focusflow/focusflow-engine/internal/core/domain"
)

// handleError maps domain sentinel errors to client-facing statuses.
// Anything unrecognized is logged and reported as a generic 500 so
// upstream read failures never leak driver details.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})

	case errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrHabitNotFound),
		errors.Is(err, domain.ErrRoutineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})

	case errors.Is(err, domain.ErrInvalidDayKey),
		errors.Is(err, domain.ErrInvalidLog),
		errors.Is(err, domain.ErrInvalidMood),
		errors.Is(err, domain.ErrTaskTitleEmpty),
		errors.Is(err, domain.ErrTaskTitleTooLong),
		errors.Is(err, domain.ErrTaskDescTooLong),
		errors.Is(err, domain.ErrHabitTitleEmpty),
		errors.Is(err, domain.ErrHabitTitleTooLong),
		errors.Is(err, domain.ErrHabitDescTooLong),
		errors.Is(err, domain.ErrInvalidColor),
		errors.Is(err, domain.ErrRoutineTitleEmpty),
		errors.Is(err, domain.ErrRoutineTitleTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
