package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stemsi/unigrade-backend/internal/config"
	"github.com/stemsi/unigrade-backend/internal/handler"
	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/middleware"
	"github.com/stemsi/unigrade-backend/internal/response"
	"github.com/stemsi/unigrade-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Course     *handler.CourseHandler
	Approval   *handler.ApprovalHandler
	Dashboard  *handler.DashboardHandler
	Transcript *handler.TranscriptHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	authLimiter *middleware.RateLimiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the access log and every envelope carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(response.RequestLogger(logger.Component(log, "http")))
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", handlers.Health.Check)

	requireSession := middleware.RequireSession(authService)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	if authLimiter != nil {
		auth.Use(authLimiter.Middleware())
	}
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", requireSession, handlers.Auth.Me)
		auth.POST("/logout", requireSession, handlers.Auth.Logout)
	}

	// ─── 2. Session Group ──────────────────────────────────────────────
	// Any logged-in user may call these. Views decide what each role sees.
	api := router.Group("/api/v1")
	api.Use(requireSession)
	{
		// Teacher dashboard
		api.GET("/teachers/:id/courses", handlers.Course.ListTeacherCourses)
		api.GET("/courses/:id/roster", handlers.Course.GetRoster)
		api.POST("/courses/:id/marks", handlers.Course.SaveMarks)
		api.POST("/grades/preview", handlers.Course.PreviewGrade)

		// Student portal
		api.GET("/students/:id/transcript", handlers.Transcript.GetTranscript)

		// Admin approvals
		admin := api.Group("/admin")
		{
			admin.GET("/marks/pending", handlers.Approval.ListPending)
			admin.POST("/marks/approve", handlers.Approval.Approve)
			admin.POST("/marks/reject", handlers.Approval.Reject)
			admin.POST("/analysis", handlers.Approval.Analyze)
			admin.GET("/stats", handlers.Dashboard.GetStats)
		}
	}

	return router
}
