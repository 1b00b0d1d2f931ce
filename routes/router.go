package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
	"github.com/propilkki-tournament/stats-api/internal/competition"
	"github.com/propilkki-tournament/stats-api/internal/session"
	"github.com/propilkki-tournament/stats-api/internal/stats"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = appConfig.App.CORSOrigins
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Propilkki Tournament API",
			"docs":    "/swagger/index.html",
			"version": "1.0.0",
		})
	})

	r.GET("/health", healthHandler)

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")

	statsGroup := api.Group("/stats")
	stats.RegisterStatsRoutes(statsGroup, db, appConfig)
	competition.RegisterCompetitionRoutes(statsGroup, db, appConfig)

	sessionGroup := api.Group("/sessions")
	session.RegisterSessionRoutes(sessionGroup, db, appConfig)

	return r
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// @Summary Health Check
// @Description Check if the server is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
