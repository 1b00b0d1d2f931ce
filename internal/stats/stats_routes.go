package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
)

// RegisterStatsRoutes mounts the leaderboard and catch-record endpoints on
// the /api/stats group.
func RegisterStatsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewStatsRepository(db)
	controller := NewStatsController(repo, appConfig)

	router.GET("/leaderboard", controller.GetLeaderboard)
	router.GET("/species", controller.GetSpeciesStats)
	router.GET("/lakes", controller.GetLakeStats)
	router.GET("/recent", controller.GetRecentCatches)
	router.GET("/species/:species/record", controller.GetSpeciesRecord)
	router.GET("/species-records", controller.GetSpeciesRecords)
	router.GET("/top-catches", controller.GetTopCatches)
}
