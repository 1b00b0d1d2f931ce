package session

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
	"github.com/propilkki-tournament/stats-api/internal/stats"
)

// RegisterSessionRoutes mounts the playtime and efficiency endpoints on the
// /api/sessions group.
func RegisterSessionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewSessionRepository(db)
	statsRepo := stats.NewStatsRepository(db)
	controller := NewSessionController(repo, statsRepo, appConfig)

	router.GET("/recent", controller.GetRecentSessions)
	router.GET("/active", controller.GetActiveSessions)
	router.GET("/player/:name", controller.GetPlayerSessions)
	router.GET("/stats/:name", controller.GetPlayerSessionStats)
	router.GET("/top-players", controller.GetTopPlayers)
	router.GET("/daily-activity", controller.GetDailyActivity)
	router.GET("/hourly-activity", controller.GetHourlyActivity)
	router.GET("/efficiency/:name", controller.GetPlayerEfficiency)
	router.GET("/activity-vs-catches", controller.GetAllPlayersEfficiency)
}
