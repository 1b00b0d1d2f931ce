package competition

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
	"github.com/propilkki-tournament/stats-api/pkg/responses"
	"github.com/propilkki-tournament/stats-api/pkg/validator"
)

// CompetitionController handles API requests for competition status and
// history.
type CompetitionController struct {
	repo   CompetitionRepository
	config *config.Config
}

// NewCompetitionController creates a new CompetitionController.
func NewCompetitionController(repo CompetitionRepository, cfg *config.Config) *CompetitionController {
	return &CompetitionController{
		repo:   repo,
		config: cfg,
	}
}

// --- DTOs ---

type ListCompetitionsQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// PausedResponse is the sentinel returned when no competition is running.
// This is a documented success shape, not an error.
type PausedResponse struct {
	Status  string `json:"status" example:"paused"`
	Message string `json:"message" example:"No competition currently running"`
}

// --- Handlers ---

// GetCompetitions godoc
// @Summary List completed competitions
// @Description Paginated list of scored competitions, newest first, each with final standings, participant count and the biggest fish of the round
// @Tags statistics
// @Produce json
// @Param limit query int false "Max competitions to return (1-100)" default(10)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} Summary
// @Failure 422 {object} responses.ErrorResponse "Query parameter out of range"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/competitions [get]
func (cc *CompetitionController) GetCompetitions(c *gin.Context) {
	var query ListCompetitionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	summaries, err := cc.repo.CompetitionSummaries(query.Limit, query.Offset)
	if err != nil {
		responses.InternalServerError(c, "Failed to list competitions")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetLatestCompetition godoc
// @Summary Latest completed competition
// @Description The most recently started competition that has final ranks assigned, with standings and time progress
// @Tags statistics
// @Produce json
// @Success 200 {object} Info
// @Failure 404 {object} responses.ErrorResponse "No completed competition exists"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/latest-competition [get]
func (cc *CompetitionController) GetLatestCompetition(c *gin.Context) {
	info, err := cc.repo.LatestCompletedCompetition(time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "No completed competition found")
			return
		}
		responses.InternalServerError(c, "Failed to load latest competition")
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetCurrentCompetition godoc
// @Summary Currently running competition
// @Description The most recently started competition with no ranks assigned yet, with live roster and remaining time. Returns a paused marker when nothing is running.
// @Tags statistics
// @Produce json
// @Success 200 {object} Info "Running competition, or PausedResponse when none"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/stats/current-competition [get]
func (cc *CompetitionController) GetCurrentCompetition(c *gin.Context) {
	info, err := cc.repo.CurrentCompetition(time.Now().UTC())
	if err != nil {
		responses.InternalServerError(c, "Failed to load current competition")
		return
	}
	if info == nil {
		c.JSON(http.StatusOK, PausedResponse{
			Status:  "paused",
			Message: "No competition currently running",
		})
		return
	}
	c.JSON(http.StatusOK, info)
}
