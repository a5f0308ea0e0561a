package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/database"
	"github.com/campuskit/examsched-backend/internal/handler"
	"github.com/campuskit/examsched-backend/internal/logger"
	"github.com/campuskit/examsched-backend/internal/repository"
	"github.com/campuskit/examsched-backend/internal/router"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/campuskit/examsched-backend/internal/validator"
	"github.com/campuskit/examsched-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ExamSched Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	venueRepo := repository.NewVenueRepository(pool)
	holidayRepo := repository.NewHolidayRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	seatingRepo := repository.NewSeatingRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	courseService := service.NewCourseService(courseRepo, log)
	studentService := service.NewStudentService(studentRepo, enrollmentRepo)
	venueService := service.NewVenueService(venueRepo)
	holidayService := service.NewHolidayService(holidayRepo)
	scheduleService := service.NewScheduleService(cfg, scheduleRepo, courseRepo, enrollmentRepo, holidayRepo, rdb, log)
	seatingService := service.NewSeatingService(scheduleService, enrollmentRepo, venueRepo, seatingRepo, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(authService, adminRepo, log),
		Course:   handler.NewCourseHandler(courseService),
		Student:  handler.NewStudentHandler(studentService),
		Venue:    handler.NewVenueHandler(venueService),
		Holiday:  handler.NewHolidayHandler(holidayService),
		Schedule: handler.NewScheduleHandler(scheduleService, log),
		Seating:  handler.NewSeatingHandler(seatingService, log),
		WS:       handler.NewWSHandler(rdb, scheduleService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	scheduleWorker := worker.NewScheduleWorker(scheduleService, rdb, log)
	go scheduleWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the schedule worker and let an in-flight run record its state.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to wind down.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
