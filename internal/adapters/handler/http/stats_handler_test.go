package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/focusflow/focusflow-engine/internal/adapters/handler/http"
	"github.com/focusflow/focusflow-engine/internal/adapters/handler/http/middleware"
	"github.com/focusflow/focusflow-engine/internal/adapters/repository"
	"github.com/focusflow/focusflow-engine/internal/core/domain"
	"github.com/focusflow/focusflow-engine/internal/core/services"
)

// identityFromHeader mimics the auth middleware without real tokens:
// the X-User-ID header becomes the resolved identity.
func identityFromHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	}
}

type statsEnv struct {
	router    *gin.Engine
	users     *repository.InMemoryUserRepository
	habits    *repository.InMemoryHabitRepository
	habitLogs *repository.InMemoryHabitLogRepository
}

func setupStatsRouter() *statsEnv {
	gin.SetMode(gin.TestMode)

	env := &statsEnv{
		users:     repository.NewInMemoryUserRepository(),
		habits:    repository.NewInMemoryHabitRepository(),
		habitLogs: repository.NewInMemoryHabitLogRepository(),
	}

	svc := services.NewStatsService(
		env.users,
		repository.NewInMemoryTaskRepository(),
		env.habits,
		repository.NewInMemoryRoutineRepository(),
		env.habitLogs,
		repository.NewInMemoryRoutineLogRepository(),
	)
	handler := adapterHTTP.NewStatsHandler(svc)

	env.router = gin.New()
	env.router.Use(identityFromHeader())
	api := env.router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return env
}

func seedUser(t *testing.T, users *repository.InMemoryUserRepository, id string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(id, id+"@example.com", "Handler Tester")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestGetPeriodSummary(t *testing.T) {
	t.Run("Success: Returns the full summary shape", func(t *testing.T) {
		env := setupStatsRouter()
		user := seedUser(t, env.users, "stats-user")

		habit, _ := domain.NewHabit(user.ID, "Stretch", "", "", "")
		require.NoError(t, env.habits.Create(context.Background(), habit))
		env.habitLogs.SetOwner(habit.ID, user.ID)

		today := domain.DayKey(time.Now().UTC())
		log, _ := domain.NewHabitLog(habit.ID, today)
		_, err := env.habitLogs.Upsert(context.Background(), log)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		req.Header.Set("X-User-ID", user.ID)
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		for _, field := range []string{
			"todayProgress", "thisWeekProgress", "lastWeekProgress", "periodAverage",
			"totalXp", "currentXp", "level", "streak",
			"history", "insight", "tips", "bestDay", "worstDay",
		} {
			assert.Contains(t, body, field)
		}

		var history []domain.DailyStat
		require.NoError(t, json.Unmarshal(body["history"], &history))
		assert.Len(t, history, domain.DefaultStatsWindow)
		assert.Equal(t, today, history[len(history)-1].Date)
		assert.Equal(t, 100, history[len(history)-1].Percentage)
	})

	t.Run("Success: Custom window length", func(t *testing.T) {
		env := setupStatsRouter()
		user := seedUser(t, env.users, "stats-window")

		req, _ := http.NewRequest("GET", "/api/v1/stats?window=7", nil)
		req.Header.Set("X-User-ID", user.ID)
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var summary domain.PeriodSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Len(t, summary.History, 7)
	})

	t.Run("Validation: 400 on non-numeric window", func(t *testing.T) {
		env := setupStatsRouter()

		req, _ := http.NewRequest("GET", "/api/v1/stats?window=abc", nil)
		req.Header.Set("X-User-ID", "whoever")
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation: 400 on out-of-range window", func(t *testing.T) {
		env := setupStatsRouter()

		for _, window := range []string{"3", "31", "-1", "0"} {
			req, _ := http.NewRequest("GET", "/api/v1/stats?window="+window, nil)
			req.Header.Set("X-User-ID", "whoever")
			w := httptest.NewRecorder()

			env.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "window=%s", window)
			assert.Contains(t, w.Body.String(), "out of range")
		}
	})

	t.Run("Security: 401 without identity", func(t *testing.T) {
		env := setupStatsRouter()

		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: 404 when the user record is gone", func(t *testing.T) {
		env := setupStatsRouter()

		req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
		req.Header.Set("X-User-ID", "no-such-user")
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "user not found")
	})
}
