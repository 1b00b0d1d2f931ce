package competition

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
)

// RegisterCompetitionRoutes mounts the competition endpoints on the /api/stats
// group, next to the catch statistics they belong with.
func RegisterCompetitionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCompetitionRepository(db)
	controller := NewCompetitionController(repo, appConfig)

	router.GET("/competitions", controller.GetCompetitions)
	router.GET("/latest-competition", controller.GetLatestCompetition)
	router.GET("/current-competition", controller.GetCurrentCompetition)
}
