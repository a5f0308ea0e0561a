package router

import (
	"net/http"
	"time"

	"github.com/campuskit/examsched-backend/internal/config"
	"github.com/campuskit/examsched-backend/internal/handler"
	"github.com/campuskit/examsched-backend/internal/middleware"
	"github.com/campuskit/examsched-backend/internal/response"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Course   *handler.CourseHandler
	Student  *handler.StudentHandler
	Venue    *handler.VenueHandler
	Holiday  *handler.HolidayHandler
	Schedule *handler.ScheduleHandler
	Seating  *handler.SeatingHandler
	WS       *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Public Group (No Auth) ─────────────────────────────────────
	// The published exam calendar is world-readable; clients may cache it
	// briefly.
	public := router.Group("/api/v1")
	{
		public.GET("/schedule", middleware.CacheControl(60), handlers.Schedule.GetCurrent)
	}

	// ─── 3. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/me", handlers.Auth.Me)

		// Course management
		adminAPI.GET("/courses", handlers.Course.GetAll)
		adminAPI.POST("/courses", handlers.Course.Create)
		adminAPI.GET("/courses/:id", handlers.Course.GetByID)
		adminAPI.PUT("/courses/:id", handlers.Course.Update)
		adminAPI.DELETE("/courses/:id", handlers.Course.Delete)

		// Student management
		adminAPI.GET("/students", handlers.Student.GetAll)
		adminAPI.POST("/students", handlers.Student.Create)
		adminAPI.GET("/students/:id", handlers.Student.GetByID)
		adminAPI.PUT("/students/:id", handlers.Student.Update)
		adminAPI.DELETE("/students/:id", handlers.Student.Delete)
		adminAPI.GET("/students/:id/enrollments", handlers.Student.GetEnrollments)
		adminAPI.PUT("/students/:id/enrollments", handlers.Student.SetEnrollments)

		// Venue management
		adminAPI.GET("/venues", handlers.Venue.GetAll)
		adminAPI.POST("/venues", handlers.Venue.Create)
		adminAPI.GET("/venues/:id", handlers.Venue.GetByID)
		adminAPI.PUT("/venues/:id", handlers.Venue.Update)
		adminAPI.DELETE("/venues/:id", handlers.Venue.Delete)

		// Holiday calendar
		adminAPI.GET("/holidays", handlers.Holiday.GetAll)
		adminAPI.POST("/holidays", handlers.Holiday.Create)
		adminAPI.DELETE("/holidays/:id", handlers.Holiday.Delete)

		// Schedule runs
		adminAPI.POST("/schedule/runs", handlers.Schedule.CreateRun)
		adminAPI.GET("/schedule/runs/:run_id", handlers.Schedule.GetRun)

		// Seating plans
		adminAPI.POST("/seating/:date/generate", handlers.Seating.Generate)
		adminAPI.GET("/seating/:date", handlers.Seating.Get)
		adminAPI.POST("/seating/:date/swap", handlers.Seating.Swap)
		adminAPI.DELETE("/seating/:date", handlers.Seating.Delete)
	}

	// ─── 4. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/admin/schedule/runs/:run_id/stream", handlers.WS.RunProgressStream)
	}

	return router
}
