package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/server/handlers"
	"github.com/mamadbah2/poultry/internal/server/middleware"
)

// Handlers groups the route handlers the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Eggs      *handlers.EggHandler
	Feed      *handlers.FeedHandler
	Mortality *handlers.MortalityHandler
	Reports   *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares. Every route
// under /api except auth requires a bearer credential.
func New(h Handlers, jwtSecret []byte, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Poultry Farm Management API"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", h.Auth.Register)
	authRoutes.POST("/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(jwtSecret, logger))

	protected.GET("/dashboard/stats", h.Dashboard.Stats)

	protected.GET("/eggs/production", h.Eggs.List)
	protected.POST("/eggs/production", h.Eggs.Create)
	protected.GET("/eggs/analytics", h.Eggs.Analytics)

	protected.GET("/feed/stock", h.Feed.List)
	protected.POST("/feed/stock", h.Feed.Create)
	protected.PUT("/feed/stock/:id", h.Feed.Update)
	protected.GET("/feed/alerts", h.Feed.Alerts)

	protected.GET("/mortality/records", h.Mortality.List)
	protected.POST("/mortality/records", h.Mortality.Create)
	protected.GET("/mortality/analytics", h.Mortality.Analytics)

	protected.GET("/reports/generate", h.Reports.Generate)
	protected.GET("/reports/export/:format", h.Reports.Export)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
