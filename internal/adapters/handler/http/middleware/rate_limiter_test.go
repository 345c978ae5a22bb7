package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	rdb.FlushDB(ctx)
	return rdb
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	limitedRouter := func(limit int) *gin.Engine {
		r := gin.New()
		r.Use(RateLimiterMiddleware(rdb, limit, 1*time.Minute))
		r.GET("/ping", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	hit := func(r *gin.Engine, ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Requests under the limit pass with counters", func(t *testing.T) {
		rdb.FlushDB(ctx)

		limit := 5
		router := limitedRouter(limit)

		for i := 1; i <= limit; i++ {
			w := hit(router, "10.1.1.10")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fmt.Sprintf("%d", limit), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, fmt.Sprintf("%d", limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Requests over the limit get 429", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(2)
		ip := "10.1.1.11"

		assert.Equal(t, http.StatusOK, hit(router, ip).Code)
		assert.Equal(t, http.StatusOK, hit(router, ip).Code)

		w := hit(router, ip)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "rate limit exceeded")
	})

	t.Run("Limits are tracked per client IP", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(1)

		assert.Equal(t, http.StatusOK, hit(router, "10.1.1.12").Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(router, "10.1.1.12").Code)
		assert.Equal(t, http.StatusOK, hit(router, "10.1.1.13").Code)
	})

	t.Run("Fails open when Redis is down", func(t *testing.T) {
		badRdb := redis.NewClient(&redis.Options{
			Addr: "localhost:9999",
		})

		router := gin.New()
		router.Use(RateLimiterMiddleware(badRdb, 5, 1*time.Minute))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "passed")
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "passed", w.Body.String())
	})
}
