package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/focusflow/focusflow-engine/docs"
	"github.com/focusflow/focusflow-engine/internal/adapters/cache"
	adapterHTTP "github.com/focusflow/focusflow-engine/internal/adapters/handler/http"
	"github.com/focusflow/focusflow-engine/internal/adapters/repository"
	"github.com/focusflow/focusflow-engine/internal/core/domain"
	"github.com/focusflow/focusflow-engine/internal/core/services"
	"github.com/focusflow/focusflow-engine/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")

	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var rdb *redis.Client
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost != "" {
		rdb, err = cache.NewRedisClient(
			redisHost,
			getEnv("REDIS_PORT", "6379"),
			os.Getenv("REDIS_PASSWORD"),
			0,
		)
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
			rdb = nil
		}
	}

	userRepo := repository.NewPostgresUserRepository(db.DB)
	taskRepo := repository.NewPostgresTaskRepository(db)
	routineRepo := repository.NewPostgresRoutineRepository(db)
	habitLogRepo := repository.NewPostgresHabitLogRepository(db)
	routineLogRepo := repository.NewPostgresRoutineLogRepository(db)
	moodRepo := repository.NewPostgresMoodLogRepository(db)

	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	if rdb != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	streakWorker := workers.NewStreakWorker(habitRepo, habitLogRepo)
	streakWorker.Start(workerCtx)

	tokenService := services.NewTokenService(jwtSecret, "focusflow", 24*time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	habitService := services.NewHabitService(habitRepo, habitLogRepo, userRepo, streakWorker)
	routineService := services.NewRoutineService(routineRepo, routineLogRepo, userRepo)
	moodService := services.NewMoodService(moodRepo)
	badgeService := services.NewBadgeService(habitRepo, habitLogRepo)
	statsService := services.NewStatsService(userRepo, taskRepo, habitRepo, routineRepo, habitLogRepo, routineLogRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:    adapterHTTP.NewAuthHandler(authService),
		TaskHandler:    adapterHTTP.NewTaskHandler(taskService),
		HabitHandler:   adapterHTTP.NewHabitHandler(habitService),
		RoutineHandler: adapterHTTP.NewRoutineHandler(routineService),
		MoodHandler:    adapterHTTP.NewMoodHandler(moodService),
		BadgeHandler:   adapterHTTP.NewBadgeHandler(badgeService),
		UserHandler:    adapterHTTP.NewUserHandler(userService),
		StatsHandler:   adapterHTTP.NewStatsHandler(statsService),
		TokenService:   tokenService,
		DB:             db,
		Redis:          rdb,
		StartTime:      startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("FocusFlow Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
