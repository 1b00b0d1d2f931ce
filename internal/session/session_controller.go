package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/config"
	"github.com/propilkki-tournament/stats-api/internal/stats"
	"github.com/propilkki-tournament/stats-api/pkg/responses"
	"github.com/propilkki-tournament/stats-api/pkg/validator"
)

// SessionController handles API requests for playtime and efficiency
// statistics. It needs the stats repository as well: efficiency merges the
// session side with the catch side of a player's history.
type SessionController struct {
	repo      SessionRepository
	statsRepo stats.StatsRepository
	config    *config.Config
}

// NewSessionController creates a new SessionController.
func NewSessionController(repo SessionRepository, statsRepo stats.StatsRepository, cfg *config.Config) *SessionController {
	return &SessionController{
		repo:      repo,
		statsRepo: statsRepo,
		config:    cfg,
	}
}

// --- DTOs ---

type RecentSessionsQuery struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

type PlayerSessionsQuery struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=200"`
}

type TopPlayersQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

type DailyActivityQuery struct {
	Days int `form:"days,default=30" binding:"min=1,max=365"`
}

type EfficiencyListQuery struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// --- Handlers ---

// GetRecentSessions godoc
// @Summary Most recent sessions
// @Description Newest player sessions, active or finished
// @Tags sessions
// @Produce json
// @Param limit query int false "Max sessions to return (1-100)" default(20)
// @Success 200 {array} PlayerSession
// @Failure 422 {object} responses.ErrorResponse "Query parameter out of range"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/recent [get]
func (sc *SessionController) GetRecentSessions(c *gin.Context) {
	var query RecentSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	sessions, err := sc.repo.RecentSessions(query.Limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to load recent sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetActiveSessions godoc
// @Summary Currently active sessions
// @Description Players connected right now (no leave time recorded yet)
// @Tags sessions
// @Produce json
// @Success 200 {array} PlayerSession
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/active [get]
func (sc *SessionController) GetActiveSessions(c *gin.Context) {
	sessions, err := sc.repo.ActiveSessions()
	if err != nil {
		responses.InternalServerError(c, "Failed to load active sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetPlayerSessions godoc
// @Summary Session history for one player
// @Description A player's sessions, newest first
// @Tags sessions
// @Produce json
// @Param name path string true "Player name"
// @Param limit query int false "Max sessions to return (1-200)" default(50)
// @Success 200 {array} PlayerSession
// @Failure 404 {object} responses.ErrorResponse "Player has no sessions"
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/player/{name} [get]
func (sc *SessionController) GetPlayerSessions(c *gin.Context) {
	name := c.Param("name")

	var query PlayerSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	sessions, err := sc.repo.PlayerSessions(name, query.Limit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, fmt.Sprintf("No sessions found for player: %s", name))
			return
		}
		responses.InternalServerError(c, "Failed to load player sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetPlayerSessionStats godoc
// @Summary Aggregated session statistics for one player
// @Description Session count, total and average playtime, first and last seen
// @Tags sessions
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} PlayerSessionStats
// @Failure 404 {object} responses.ErrorResponse "Player has no sessions"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/stats/{name} [get]
func (sc *SessionController) GetPlayerSessionStats(c *gin.Context) {
	name := c.Param("name")

	playerStats, err := sc.repo.PlayerSessionStats(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, fmt.Sprintf("No sessions found for player: %s", name))
			return
		}
		responses.InternalServerError(c, "Failed to load player session statistics")
		return
	}
	c.JSON(http.StatusOK, playerStats)
}

// GetTopPlayers godoc
// @Summary Players ranked by playtime
// @Description Total hours played per player, finished sessions only
// @Tags sessions
// @Produce json
// @Param limit query int false "Max players to return (1-50)" default(10)
// @Success 200 {array} TopPlayer
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/top-players [get]
func (sc *SessionController) GetTopPlayers(c *gin.Context) {
	var query TopPlayersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	players, err := sc.repo.TopPlayersByPlaytime(query.Limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to load top players")
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetDailyActivity godoc
// @Summary Daily activity
// @Description Sessions, unique players and playtime per calendar day
// @Tags sessions
// @Produce json
// @Param days query int false "How many days back to include (1-365)" default(30)
// @Success 200 {array} DailyActivity
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/daily-activity [get]
func (sc *SessionController) GetDailyActivity(c *gin.Context) {
	var query DailyActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	activity, err := sc.repo.DailyActivity(query.Days, time.Now().UTC())
	if err != nil {
		responses.InternalServerError(c, "Failed to load daily activity")
		return
	}
	c.JSON(http.StatusOK, activity)
}

// GetHourlyActivity godoc
// @Summary Activity by hour of day
// @Description When people play: sessions and average length per hour of day (0-23)
// @Tags sessions
// @Produce json
// @Success 200 {array} HourlyActivity
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/hourly-activity [get]
func (sc *SessionController) GetHourlyActivity(c *gin.Context) {
	activity, err := sc.repo.HourlyActivity()
	if err != nil {
		responses.InternalServerError(c, "Failed to load hourly activity")
		return
	}
	c.JSON(http.StatusOK, activity)
}

// GetPlayerEfficiency godoc
// @Summary Efficiency metrics for one player
// @Description Fish and grams caught per hour of playtime. A player with sessions but no catches (or the reverse) still gets a result with zeros on the missing side.
// @Tags sessions
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} PlayerEfficiency
// @Failure 404 {object} responses.ErrorResponse "Player has no sessions and no catches"
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/efficiency/{name} [get]
func (sc *SessionController) GetPlayerEfficiency(c *gin.Context) {
	name := c.Param("name")

	sessions, err := sc.repo.SessionTotals(name)
	if err != nil {
		responses.InternalServerError(c, "Failed to load session totals")
		return
	}
	catches, err := sc.statsRepo.CatchTotals(name)
	if err != nil {
		responses.InternalServerError(c, "Failed to load catch totals")
		return
	}

	merged := mergeEfficiency(sessions, catches)
	if len(merged) == 0 {
		responses.NotFound(c, fmt.Sprintf("No data found for player: %s", name))
		return
	}
	c.JSON(http.StatusOK, merged[0])
}

// GetAllPlayersEfficiency godoc
// @Summary Efficiency metrics for all players
// @Description Activity vs catches across the player base, best grams-per-hour first
// @Tags sessions
// @Produce json
// @Param limit query int false "Max players to return (1-100)" default(20)
// @Success 200 {array} PlayerEfficiency
// @Failure 422 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/sessions/activity-vs-catches [get]
func (sc *SessionController) GetAllPlayersEfficiency(c *gin.Context) {
	var query EfficiencyListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		responses.UnprocessableEntity(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	sessions, err := sc.repo.SessionTotals("")
	if err != nil {
		responses.InternalServerError(c, "Failed to load session totals")
		return
	}
	catches, err := sc.statsRepo.CatchTotals("")
	if err != nil {
		responses.InternalServerError(c, "Failed to load catch totals")
		return
	}

	merged := mergeEfficiency(sessions, catches)
	if len(merged) > query.Limit {
		merged = merged[:query.Limit]
	}
	c.JSON(http.StatusOK, merged)
}
