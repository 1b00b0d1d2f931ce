package session

import "time"

// PlayerSession is one join/leave record from the game server's connection
// log. It is independent of competitions; the only link to catch data is the
// player name, a soft reference to users.base_nickname (no foreign key - a
// renamed player fragments their history across both names). The source rows
// carry the client IP as well; that column is never mapped or selected here,
// so no derived statistic can surface it.
type PlayerSession struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	PlayerName             string     `gorm:"not null;index" json:"player_name"`
	JoinedAt               time.Time  `gorm:"not null;index" json:"joined_at"`
	LeftAt                 *time.Time `json:"left_at"`
	SessionDurationSeconds *int       `json:"session_duration_seconds"` // NULL while the session is active
	PlayerVersion          string     `json:"player_version"`
}

func (PlayerSession) TableName() string { return "player_sessions" }

// PlayerSessionStats aggregates one player's whole session history.
type PlayerSessionStats struct {
	PlayerName                string    `json:"player_name"`
	TotalSessions             int       `json:"total_sessions"`
	TotalPlaytimeSeconds      int       `json:"total_playtime_seconds"`
	TotalPlaytimeHours        float64   `json:"total_playtime_hours"`
	AvgSessionDurationSeconds int       `json:"avg_session_duration_seconds"`
	FirstSeen                 time.Time `json:"first_seen"`
	LastSeen                  time.Time `json:"last_seen"`
}

// TopPlayer is one row of the playtime ranking. Only finished sessions
// (non-null duration) count.
type TopPlayer struct {
	PlayerName         string  `json:"player_name"`
	TotalSessions      int     `json:"total_sessions"`
	TotalPlaytimeHours float64 `json:"total_playtime_hours"`
	AvgSessionHours    float64 `json:"avg_session_hours"`
}

// DailyActivity is one calendar-day bucket of session activity.
type DailyActivity struct {
	Date               string  `json:"date"`
	TotalSessions      int     `json:"total_sessions"`
	UniquePlayers      int     `json:"unique_players"`
	TotalPlaytimeHours float64 `json:"total_playtime_hours"`
}

// HourlyActivity is one hour-of-day bucket (0-23), date-independent.
type HourlyActivity struct {
	Hour                      int     `json:"hour"`
	TotalSessions             int     `json:"total_sessions"`
	AvgSessionDurationMinutes float64 `json:"avg_session_duration_minutes"`
}

// SessionTotals is a player's playtime side of the efficiency merge.
type SessionTotals struct {
	PlayerName         string  `json:"player_name"`
	TotalPlaytimeHours float64 `json:"total_playtime_hours"`
}

// PlayerEfficiency cross-references playtime with catch totals for one
// player name. Either side may be missing; zeros stand in for it. Rates are
// zero whenever playtime is zero, never a division fault.
type PlayerEfficiency struct {
	PlayerName         string  `json:"player_name"`
	TotalPlaytimeHours float64 `json:"total_playtime_hours"`
	TotalFish          int     `json:"total_fish"`
	TotalWeightGrams   int     `json:"total_weight_grams"`
	FishPerHour        float64 `json:"fish_per_hour"`
	GramsPerHour       float64 `json:"grams_per_hour"`
	CompetitionsCount  int     `json:"competitions_count"`
}
