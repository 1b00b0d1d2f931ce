package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep every statement on the same in-memory database

	require.NoError(t, db.AutoMigrate(&PlayerSession{}))
	return db
}

func seedSession(t *testing.T, db *gorm.DB, name string, joined time.Time, durationSeconds *int) PlayerSession {
	t.Helper()
	s := PlayerSession{
		PlayerName:             name,
		JoinedAt:               joined,
		SessionDurationSeconds: durationSeconds,
		PlayerVersion:          "1.9",
	}
	if durationSeconds != nil {
		left := joined.Add(time.Duration(*durationSeconds) * time.Second)
		s.LeftAt = &left
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func seconds(v int) *int { return &v }

func seedSessionData(t *testing.T, db *gorm.DB) {
	t.Helper()
	// Anna: three finished hours on two days plus a session still open.
	seedSession(t, db, "Anna", time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), seconds(3600))
	seedSession(t, db, "Anna", time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC), seconds(3600))
	seedSession(t, db, "Anna", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), seconds(3600))
	seedSession(t, db, "Anna", time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC), nil)
	// Ville: one short finished session.
	seedSession(t, db, "Ville", time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC), seconds(1800))
	// Liisa: connected right now, nothing finished yet.
	seedSession(t, db, "Liisa", time.Date(2026, 8, 30, 11, 30, 0, 0, time.UTC), nil)
	// Ancient session outside every queried window.
	seedSession(t, db, "Anna", time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC), seconds(7200))
}

func TestRecentSessions(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	sessions, err := repo.RecentSessions(3)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "Liisa", sessions[0].PlayerName)
	assert.Equal(t, "Anna", sessions[1].PlayerName)
	assert.True(t, sessions[0].JoinedAt.After(sessions[2].JoinedAt))
}

func TestActiveSessions(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	sessions, err := repo.ActiveSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	for _, s := range sessions {
		assert.Nil(t, s.LeftAt)
		assert.Nil(t, s.SessionDurationSeconds)
	}
}

func TestPlayerSessions(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	sessions, err := repo.PlayerSessions("Anna", 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].JoinedAt.After(sessions[1].JoinedAt))

	_, err = repo.PlayerSessions("Nobody", 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlayerSessionStats(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	stats, err := repo.PlayerSessionStats("Anna")
	require.NoError(t, err)

	assert.Equal(t, "Anna", stats.PlayerName)
	assert.Equal(t, 5, stats.TotalSessions, "active sessions count too")
	assert.Equal(t, 18000, stats.TotalPlaytimeSeconds)
	assert.InDelta(t, 5.0, stats.TotalPlaytimeHours, 0.001)
	assert.Equal(t, 4500, stats.AvgSessionDurationSeconds, "average over finished sessions only")
	assert.WithinDuration(t, time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC), stats.FirstSeen, time.Second)
	assert.WithinDuration(t, time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC), stats.LastSeen, time.Second)

	_, err = repo.PlayerSessionStats("Nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTopPlayersByPlaytime(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	players, err := repo.TopPlayersByPlaytime(10)
	require.NoError(t, err)
	require.Len(t, players, 2, "players with no finished sessions are not ranked")

	assert.Equal(t, "Anna", players[0].PlayerName)
	assert.Equal(t, 4, players[0].TotalSessions)
	assert.InDelta(t, 5.0, players[0].TotalPlaytimeHours, 0.001)
	assert.InDelta(t, 1.25, players[0].AvgSessionHours, 0.001)

	assert.Equal(t, "Ville", players[1].PlayerName)
	assert.InDelta(t, 0.5, players[1].TotalPlaytimeHours, 0.001)
}

func TestDailyActivity(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	activity, err := repo.DailyActivity(30, testNow)
	require.NoError(t, err)
	require.Len(t, activity, 3, "the July session is outside the window")

	assert.Equal(t, "2026-08-30", activity[0].Date)
	assert.Equal(t, 2, activity[0].TotalSessions)
	assert.Equal(t, 2, activity[0].UniquePlayers)
	assert.Equal(t, 0.0, activity[0].TotalPlaytimeHours, "only open sessions that day")

	assert.Equal(t, "2026-08-29", activity[1].Date)
	assert.Equal(t, 2, activity[1].TotalSessions)
	assert.Equal(t, 1, activity[1].UniquePlayers)
	assert.InDelta(t, 2.0, activity[1].TotalPlaytimeHours, 0.001)

	assert.Equal(t, "2026-08-28", activity[2].Date)
	assert.Equal(t, 2, activity[2].UniquePlayers)
	assert.InDelta(t, 1.5, activity[2].TotalPlaytimeHours, 0.001)
}

func TestHourlyActivity(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	activity, err := repo.HourlyActivity()
	require.NoError(t, err)
	require.Len(t, activity, 4)

	assert.Equal(t, 9, activity[0].Hour)
	assert.Equal(t, 1, activity[0].TotalSessions)
	assert.InDelta(t, 30.0, activity[0].AvgSessionDurationMinutes, 0.001)

	assert.Equal(t, 10, activity[1].Hour)
	assert.Equal(t, 2, activity[1].TotalSessions)
	assert.InDelta(t, 60.0, activity[1].AvgSessionDurationMinutes, 0.001)

	assert.Equal(t, 12, activity[2].Hour, "hour of day, independent of date")
	assert.Equal(t, 20, activity[3].Hour)
}

func TestSessionTotals(t *testing.T) {
	db := setupTestDB(t)
	seedSessionData(t, db)
	repo := NewSessionRepository(db)

	anna, err := repo.SessionTotals("Anna")
	require.NoError(t, err)
	require.Len(t, anna, 1)
	assert.InDelta(t, 5.0, anna[0].TotalPlaytimeHours, 0.001)

	all, err := repo.SessionTotals("")
	require.NoError(t, err)
	require.Len(t, all, 3)

	byName := map[string]SessionTotals{}
	for _, row := range all {
		byName[row.PlayerName] = row
	}
	assert.Equal(t, 0.0, byName["Liisa"].TotalPlaytimeHours, "open-only players sum to zero, not NULL")
}
