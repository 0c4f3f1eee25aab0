package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/eqrng/internal/api/handlers"
	"github.com/jroosing/eqrng/internal/api/middleware"
	"github.com/jroosing/eqrng/internal/config"
	"github.com/jroosing/eqrng/internal/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/eqrng/internal/api/docs" // swagger docs
)

// ratingBurst is the number of back to back submissions allowed per client.
const ratingBurst = 3

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config, m *metrics.Metrics) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/random_zone", h.RandomZone)
	r.GET("/random_instance", h.RandomInstance)
	r.GET("/random_race", h.RandomRace)
	r.GET("/random_class", h.RandomClass)
	r.GET("/version", h.Version)
	r.GET("/flag-types", h.FlagTypes)

	limiter := middleware.NewRateLimiter(cfg.Ratings.RequestsPerMinute, ratingBurst)
	r.GET("/zones/:zone_id/rating", h.GetZoneRating)
	r.POST("/zones/:zone_id/rating",
		limiter.Middleware(func(*gin.Context) { m.ObserveRating("limited") }),
		h.SubmitZoneRating)
	r.GET("/zones/:zone_id/ratings", h.ZoneRatings)
	r.GET("/zones/:zone_id/notes", h.ZoneNotes)
	r.GET("/instances/:instance_id/notes", h.InstanceNotes)

	r.GET("/api/links", h.Links)
	r.GET("/api/links/by-category", h.LinksByCategory)
	r.GET("/api/links/categories", h.LinkCategories)
	r.GET("/api/links/:id", h.GetLink)

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)

	// Optional API key protection.
	protected := api.Group("")
	if cfg.Admin.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.Admin.APIKey))
	}
	protected.GET("/stats", h.Stats)

	if !cfg.Admin.Enabled {
		return
	}
	admin := protected.Group("/admin")
	admin.GET("/zones", h.AdminZones)
	admin.GET("/instances", h.AdminInstances)
	admin.GET("/links", h.AdminLinks)
	admin.GET("/ratings", h.AdminRatings)
	admin.POST("/reload", h.AdminReload)
}
