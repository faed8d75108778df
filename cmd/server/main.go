package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/stemsi/unigrade-backend/internal/ai"
	"github.com/stemsi/unigrade-backend/internal/config"
	"github.com/stemsi/unigrade-backend/internal/database"
	"github.com/stemsi/unigrade-backend/internal/handler"
	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/middleware"
	"github.com/stemsi/unigrade-backend/internal/repository"
	"github.com/stemsi/unigrade-backend/internal/router"
	"github.com/stemsi/unigrade-backend/internal/service"
	"github.com/stemsi/unigrade-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("store", cfg.StoreDriver).
		Str("log_level", cfg.LogLevel).
		Msg("Starting UniGrade Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Initialize Stores ─────────────────────────────────────────────
	var (
		catalog repository.Catalog
		marks   repository.MarkStore
		probes  []database.Probe
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		if cfg.SeedDemoData {
			if err := repository.SeedCatalog(ctx, pool, repository.DemoUsers(), repository.DemoCourses(), repository.DemoAllocations()); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed reference data")
			}
		}
		catalog = repository.NewPostgresCatalog(pool)
		marks = repository.NewPostgresMarkStore(pool)
		probes = append(probes, database.PostgresProbe(pool))
	case config.StoreDriverMemory:
		if cfg.SeedDemoData {
			catalog = repository.NewMemoryCatalog(repository.DemoUsers(), repository.DemoCourses(), repository.DemoAllocations())
			marks = repository.NewMemoryMarkStore(repository.DemoMarks()...)
		} else {
			catalog = repository.NewMemoryCatalog(nil, nil, nil)
			marks = repository.NewMemoryMarkStore()
		}
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("Unknown STORE_DRIVER")
	}

	// ─── Session Store ─────────────────────────────────────────────────
	var sessions repository.SessionStore = repository.NewMemorySessionStore()
	sessionDriver := "memory"
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		sessions = repository.NewRedisSessionStore(rdb)
		sessionDriver = "redis"
		probes = append(probes, database.RedisProbe(rdb))
	}

	// ─── Text Generation ───────────────────────────────────────────────
	// Without a key the analysis endpoint answers with its fixed reply.
	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gen, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("Gemini client unavailable, analysis disabled")
		} else {
			generator = gen
		}
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, catalog, sessions, log)
	courseService := service.NewCourseService(catalog)
	rosterService := service.NewRosterService(catalog, marks, log)
	markService := service.NewMarkService(catalog, marks, log)
	dashboardService := service.NewDashboardService(catalog, marks)
	transcriptService := service.NewTranscriptService(catalog, marks)
	analysisService := service.NewAnalysisService(marks, generator, cfg.AnalysisTimeout, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Health:     handler.NewHealthHandler(cfg.StoreDriver, sessionDriver, probes...),
		Auth:       handler.NewAuthHandler(authService),
		Course:     handler.NewCourseHandler(courseService, rosterService, markService),
		Approval:   handler.NewApprovalHandler(markService, analysisService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Transcript: handler.NewTranscriptHandler(transcriptService),
	}

	// ─── Login Rate Limiter ────────────────────────────────────────────
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, time.Minute)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authLimiter.Cleanup(3 * time.Minute)
			}
		}
	}()

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, authLimiter, cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	cancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
