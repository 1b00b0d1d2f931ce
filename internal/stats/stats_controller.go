package stats

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
	"github.com/propilkki-tournament/stats-api/pkg/responses"
	"github.com/propilkki-tournament/stats-api/pkg/validator"
)

// StatsController handles API requests for leaderboards and catch records.
type StatsController struct {
	repo   StatsRepository
	config *config.Config
}

// NewStatsController creates a new StatsController.
func NewStatsController(repo StatsRepository, cfg *config.Config) *StatsController {
	return &StatsController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs ---

type LeaderboardQuery struct {
	Limit int    `form:"limit,default=10" binding:"min=1,max=100"`
	Lake  string `form:"lake" binding:"omitempty,max=100"`
}

type SpeciesQuery struct {
	Lake string `form:"lake" binding:"omitempty,max=100"`
}

type RecentCatchesQuery struct {
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Player string `form:"player" binding:"omitempty,max=100"`
}

type TopCatchesQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// --- Handlers ---

// GetLeaderboard godoc
// @Summary Player leaderboard
// @Description Top players by total catch weight, with per-player totals and the species of their heaviest fish
// @Tags statistics
// @Produce json
// @Param limit query int false "Max players to return (1-100)" default(10)
// @Param lake query string false "Restrict to catches on one lake"
// @Success 200 {array} LeaderboardEntry
// @Failure 422 {object} responses.ErrorResponse "Query parameter out of range"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/leaderboard [get]
func (sc *StatsController) GetLeaderboard(c *gin.Context) {
	var query LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	entries, err := sc.repo.Leaderboard(CatchFilter{Lake: query.Lake}, query.Limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to load leaderboard")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetSpeciesStats godoc
// @Summary Statistics by species
// @Description Per-species totals and average weight per fish, busiest species first
// @Tags statistics
// @Produce json
// @Param lake query string false "Restrict to catches on one lake"
// @Success 200 {array} SpeciesStats
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/species [get]
func (sc *StatsController) GetSpeciesStats(c *gin.Context) {
	var query SpeciesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	rows, err := sc.repo.SpeciesStats(CatchFilter{Lake: query.Lake})
	if err != nil {
		responses.InternalServerError(c, "Failed to load species statistics")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetLakeStats godoc
// @Summary Statistics by lake
// @Description Per-lake catch totals; lakes without catches still appear with zero fish
// @Tags statistics
// @Produce json
// @Success 200 {array} LakeStats
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/lakes [get]
func (sc *StatsController) GetLakeStats(c *gin.Context) {
	rows, err := sc.repo.LakeStats()
	if err != nil {
		responses.InternalServerError(c, "Failed to load lake statistics")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetRecentCatches godoc
// @Summary Most recent catches
// @Description Newest catch records with player, species and lake context
// @Tags statistics
// @Produce json
// @Param limit query int false "Max catches to return (1-100)" default(20)
// @Param player query string false "Restrict to one player"
// @Success 200 {array} CatchRecord
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/recent [get]
func (sc *StatsController) GetRecentCatches(c *gin.Context) {
	var query RecentCatchesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	rows, err := sc.repo.RecentCatches(CatchFilter{Player: query.Player}, query.Limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to load recent catches")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetSpeciesRecord godoc
// @Summary Record catch for one species
// @Description The heaviest fish of the given species ever recorded
// @Tags statistics
// @Produce json
// @Param species path string true "Species name"
// @Success 200 {object} CatchRecord
// @Failure 404 {object} responses.ErrorResponse "Species has no catches"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/species/{species}/record [get]
func (sc *StatsController) GetSpeciesRecord(c *gin.Context) {
	species := c.Param("species")

	record, err := sc.repo.SpeciesRecord(species)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, fmt.Sprintf("No record found for species: %s", species))
			return
		}
		responses.InternalServerError(c, "Failed to load species record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetSpeciesRecords godoc
// @Summary Record catches for every species
// @Description One heaviest catch per species, alphabetical by species
// @Tags statistics
// @Produce json
// @Success 200 {array} CatchRecord
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/species-records [get]
func (sc *StatsController) GetSpeciesRecords(c *gin.Context) {
	records, err := sc.repo.SpeciesRecords()
	if err != nil {
		responses.InternalServerError(c, "Failed to load species records")
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetTopCatches godoc
// @Summary Heaviest individual catches
// @Description Flat ranking of catch records by largest fish weight; the same player may appear several times
// @Tags statistics
// @Produce json
// @Param limit query int false "Max catches to return (1-100)" default(10)
// @Success 200 {array} CatchRecord
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/top-catches [get]
func (sc *StatsController) GetTopCatches(c *gin.Context) {
	var query TopCatchesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	rows, err := sc.repo.TopCatches(query.Limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to load top catches")
		return
	}
	c.JSON(http.StatusOK, rows)
}
