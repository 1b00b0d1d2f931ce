package session

import (
	"time"

	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/pkg/utils"
)

type SessionRepository interface {
	RecentSessions(limit int) ([]PlayerSession, error)
	// ActiveSessions lists players currently connected (no left_at yet).
	ActiveSessions() ([]PlayerSession, error)
	// PlayerSessions returns one player's session history, newest first.
	// gorm.ErrRecordNotFound when the player has no sessions at all.
	PlayerSessions(name string, limit int) ([]PlayerSession, error)
	PlayerSessionStats(name string) (*PlayerSessionStats, error)
	TopPlayersByPlaytime(limit int) ([]TopPlayer, error)
	// DailyActivity buckets sessions per calendar day back to now - days.
	DailyActivity(days int, now time.Time) ([]DailyActivity, error)
	// HourlyActivity buckets finished sessions by hour of day (0-23).
	HourlyActivity() ([]HourlyActivity, error)
	// SessionTotals aggregates playtime per player for the efficiency merge.
	// An empty player string means all players.
	SessionTotals(player string) ([]SessionTotals, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) RecentSessions(limit int) ([]PlayerSession, error) {
	sessions := make([]PlayerSession, 0, limit)
	err := r.db.Order("joined_at DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) ActiveSessions() ([]PlayerSession, error) {
	sessions := make([]PlayerSession, 0)
	err := r.db.Where("left_at IS NULL").Order("joined_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) PlayerSessions(name string, limit int) ([]PlayerSession, error) {
	sessions := make([]PlayerSession, 0, limit)
	err := r.db.Where("player_name = ?", name).
		Order("joined_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return sessions, nil
}

func (r *sessionRepository) PlayerSessionStats(name string) (*PlayerSessionStats, error) {
	var rows []struct {
		PlayerName           string
		TotalSessions        int
		TotalPlaytimeSeconds int
		AvgSeconds           *float64
	}
	err := r.db.Model(&PlayerSession{}).
		Select("player_name, COUNT(*) AS total_sessions, "+
			"COALESCE(SUM(session_duration_seconds), 0) AS total_playtime_seconds, "+
			"AVG(session_duration_seconds) AS avg_seconds").
		Where("player_name = ?", name).
		Group("player_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	// MIN/MAX over a timestamp column lose the declared column type on some
	// drivers and come back as raw strings, so first/last seen are plain
	// ordered reads of the column itself.
	var first, last PlayerSession
	if err := r.db.Where("player_name = ?", name).Order("joined_at ASC").First(&first).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("player_name = ?", name).Order("joined_at DESC").First(&last).Error; err != nil {
		return nil, err
	}

	row := rows[0]
	stats := &PlayerSessionStats{
		PlayerName:           row.PlayerName,
		TotalSessions:        row.TotalSessions,
		TotalPlaytimeSeconds: row.TotalPlaytimeSeconds,
		TotalPlaytimeHours:   utils.Round2(float64(row.TotalPlaytimeSeconds) / 3600.0),
		FirstSeen:            first.JoinedAt,
		LastSeen:             last.JoinedAt,
	}
	if row.AvgSeconds != nil {
		stats.AvgSessionDurationSeconds = int(*row.AvgSeconds)
	}
	return stats, nil
}

func (r *sessionRepository) TopPlayersByPlaytime(limit int) ([]TopPlayer, error) {
	var rows []struct {
		PlayerName           string
		TotalSessions        int
		TotalPlaytimeSeconds float64
		AvgSessionSeconds    float64
	}
	err := r.db.Model(&PlayerSession{}).
		Select("player_name, COUNT(*) AS total_sessions, "+
			"SUM(session_duration_seconds) AS total_playtime_seconds, "+
			"AVG(session_duration_seconds) AS avg_session_seconds").
		Where("session_duration_seconds IS NOT NULL").
		Group("player_name").
		Order("total_playtime_seconds DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	players := make([]TopPlayer, len(rows))
	for i, row := range rows {
		players[i] = TopPlayer{
			PlayerName:         row.PlayerName,
			TotalSessions:      row.TotalSessions,
			TotalPlaytimeHours: utils.Round2(row.TotalPlaytimeSeconds / 3600.0),
			AvgSessionHours:    utils.Round2(row.AvgSessionSeconds / 3600.0),
		}
	}
	return players, nil
}

func (r *sessionRepository) DailyActivity(days int, now time.Time) ([]DailyActivity, error) {
	cutoff := now.UTC().AddDate(0, 0, -days)

	var rows []struct {
		Date                 string
		TotalSessions        int
		UniquePlayers        int
		TotalPlaytimeSeconds int
	}
	err := r.db.Model(&PlayerSession{}).
		Select(r.dateExpr()+" AS date, COUNT(*) AS total_sessions, "+
			"COUNT(DISTINCT player_name) AS unique_players, "+
			"COALESCE(SUM(session_duration_seconds), 0) AS total_playtime_seconds").
		Where("joined_at >= ?", cutoff).
		Group(r.dateExpr()).
		Order("date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	activity := make([]DailyActivity, len(rows))
	for i, row := range rows {
		activity[i] = DailyActivity{
			Date:               row.Date,
			TotalSessions:      row.TotalSessions,
			UniquePlayers:      row.UniquePlayers,
			TotalPlaytimeHours: utils.Round2(float64(row.TotalPlaytimeSeconds) / 3600.0),
		}
	}
	return activity, nil
}

func (r *sessionRepository) HourlyActivity() ([]HourlyActivity, error) {
	var rows []struct {
		Hour              int
		TotalSessions     int
		AvgSessionSeconds float64
	}
	err := r.db.Model(&PlayerSession{}).
		Select(r.hourExpr()+" AS hour, COUNT(*) AS total_sessions, "+
			"AVG(session_duration_seconds) AS avg_session_seconds").
		Where("session_duration_seconds IS NOT NULL").
		Group(r.hourExpr()).
		Order("hour ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	activity := make([]HourlyActivity, len(rows))
	for i, row := range rows {
		activity[i] = HourlyActivity{
			Hour:                      row.Hour,
			TotalSessions:             row.TotalSessions,
			AvgSessionDurationMinutes: utils.Round1(row.AvgSessionSeconds / 60.0),
		}
	}
	return activity, nil
}

func (r *sessionRepository) SessionTotals(player string) ([]SessionTotals, error) {
	q := r.db.Model(&PlayerSession{}).
		Select("player_name, COALESCE(SUM(session_duration_seconds), 0) AS total_playtime_seconds").
		Group("player_name")
	if player != "" {
		q = q.Where("player_name = ?", player)
	}

	var rows []struct {
		PlayerName           string
		TotalPlaytimeSeconds int
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]SessionTotals, len(rows))
	for i, row := range rows {
		totals[i] = SessionTotals{
			PlayerName:         row.PlayerName,
			TotalPlaytimeHours: float64(row.TotalPlaytimeSeconds) / 3600.0,
		}
	}
	return totals, nil
}

// dateExpr and hourExpr pick the time-bucket expression for the connected
// dialect. Production runs on postgres; repository tests run on sqlite.
func (r *sessionRepository) dateExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "TO_CHAR(joined_at, 'YYYY-MM-DD')"
	}
	return "STRFTIME('%Y-%m-%d', joined_at)"
}

func (r *sessionRepository) hourExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "EXTRACT(HOUR FROM joined_at)::int"
	}
	return "CAST(STRFTIME('%H', joined_at) AS INTEGER)"
}
