package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/propilkki-tournament/stats-api/internal/competition"
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

	require.NoError(t, db.AutoMigrate(
		&competition.User{}, &competition.Competition{},
		&competition.CompetitionParticipant{},
		&competition.FishSpecies{}, &competition.FishCatch{},
	))
	return db
}

// seedCatchData builds two scored competitions on different lakes plus one
// catchless lake. Eero is disqualified in the first round; his monster pike
// must never surface in any aggregate.
func seedCatchData(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := map[string]*competition.User{}
	for _, name := range []string{"Anna", "Ville", "Eero"} {
		u := &competition.User{BaseNickname: name}
		require.NoError(t, db.Create(u).Error)
		users[name] = u
	}

	species := map[string]*competition.FishSpecies{}
	for _, name := range []string{"Perch", "Pike", "Burbot", "Zander"} {
		s := &competition.FishSpecies{Name: name}
		require.NoError(t, db.Create(s).Error)
		species[name] = s
	}

	comps := map[string]*competition.Competition{}
	for _, c := range []struct {
		key   string
		lake  string
		start time.Time
	}{
		{"c1", "Kuivajärvi", testNow.Add(-6 * time.Hour)},
		{"c2", "Siikajärvi", testNow.Add(-3 * time.Hour)},
		{"c3", "Haukijärvi", testNow.Add(-1 * time.Hour)},
	} {
		comp := &competition.Competition{Lake: c.lake, StartTime: c.start, DurationMinutes: 60}
		require.NoError(t, db.Create(comp).Error)
		comps[c.key] = comp
	}

	rank := func(v int) *int { return &v }
	participants := []competition.CompetitionParticipant{
		{CompetitionID: comps["c1"].ID, UserID: users["Anna"].ID, Rank: rank(1), JoinedAt: comps["c1"].StartTime},
		{CompetitionID: comps["c1"].ID, UserID: users["Ville"].ID, Rank: rank(2), JoinedAt: comps["c1"].StartTime},
		{CompetitionID: comps["c1"].ID, UserID: users["Eero"].ID, Disqualified: true, JoinedAt: comps["c1"].StartTime},
		{CompetitionID: comps["c2"].ID, UserID: users["Anna"].ID, Rank: rank(2), JoinedAt: comps["c2"].StartTime},
		{CompetitionID: comps["c2"].ID, UserID: users["Ville"].ID, Rank: rank(1), JoinedAt: comps["c2"].StartTime},
		{CompetitionID: comps["c3"].ID, UserID: users["Anna"].ID, Rank: rank(1), JoinedAt: comps["c3"].StartTime},
	}
	for i := range participants {
		require.NoError(t, db.Create(&participants[i]).Error)
	}

	catches := []competition.FishCatch{
		{CompetitionID: comps["c1"].ID, UserID: users["Anna"].ID, SpeciesID: species["Perch"].ID, Count: 5, TotalWeightGrams: 2500, LargestWeightGrams: 700},
		{CompetitionID: comps["c1"].ID, UserID: users["Anna"].ID, SpeciesID: species["Pike"].ID, Count: 1, TotalWeightGrams: 1800, LargestWeightGrams: 1800},
		{CompetitionID: comps["c1"].ID, UserID: users["Ville"].ID, SpeciesID: species["Perch"].ID, Count: 3, TotalWeightGrams: 1500, LargestWeightGrams: 600},
		{CompetitionID: comps["c1"].ID, UserID: users["Anna"].ID, SpeciesID: species["Burbot"].ID, Count: 0, TotalWeightGrams: 0, LargestWeightGrams: 0},
		{CompetitionID: comps["c1"].ID, UserID: users["Eero"].ID, SpeciesID: species["Pike"].ID, Count: 10, TotalWeightGrams: 9000, LargestWeightGrams: 3000},
		{CompetitionID: comps["c2"].ID, UserID: users["Anna"].ID, SpeciesID: species["Perch"].ID, Count: 2, TotalWeightGrams: 1000, LargestWeightGrams: 700},
		{CompetitionID: comps["c2"].ID, UserID: users["Ville"].ID, SpeciesID: species["Pike"].ID, Count: 1, TotalWeightGrams: 2200, LargestWeightGrams: 2200},
	}
	for i := range catches {
		require.NoError(t, db.Create(&catches[i]).Error)
	}
}

func TestLeaderboard(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	entries, err := repo.Leaderboard(CatchFilter{}, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2, "disqualified Eero must not appear")

	anna := entries[0]
	assert.Equal(t, "Anna", anna.PlayerName)
	assert.Equal(t, 8, anna.TotalFish)
	assert.Equal(t, 5300, anna.TotalWeightGrams)
	assert.Equal(t, 2, anna.CompetitionsCount)
	assert.Equal(t, 1800, anna.BiggestCatchGrams)
	assert.Equal(t, "Pike", anna.BiggestCatchSpecies)

	ville := entries[1]
	assert.Equal(t, "Ville", ville.PlayerName)
	assert.Equal(t, 4, ville.TotalFish)
	assert.Equal(t, 3700, ville.TotalWeightGrams)
	assert.Equal(t, 2200, ville.BiggestCatchGrams)
	assert.Equal(t, "Pike", ville.BiggestCatchSpecies)

	// A limit returns a strict prefix of the same ordering.
	top, err := repo.Leaderboard(CatchFilter{}, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, entries[0], top[0])
}

func TestLeaderboardWeightTieOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository(db)

	// Insertion order is the reverse of the expected output order.
	ville := competition.User{BaseNickname: "Ville"}
	anna := competition.User{BaseNickname: "Anna"}
	require.NoError(t, db.Create(&ville).Error)
	require.NoError(t, db.Create(&anna).Error)
	perch := competition.FishSpecies{Name: "Perch"}
	require.NoError(t, db.Create(&perch).Error)

	comp := competition.Competition{Lake: "Kuivajärvi", StartTime: testNow.Add(-2 * time.Hour), DurationMinutes: 60}
	require.NoError(t, db.Create(&comp).Error)
	for _, u := range []*competition.User{&ville, &anna} {
		p := competition.CompetitionParticipant{CompetitionID: comp.ID, UserID: u.ID, JoinedAt: comp.StartTime}
		require.NoError(t, db.Create(&p).Error)
		require.NoError(t, db.Create(&competition.FishCatch{
			CompetitionID: comp.ID, UserID: u.ID, SpeciesID: perch.ID,
			Count: 2, TotalWeightGrams: 1000, LargestWeightGrams: 600,
		}).Error)
	}

	// Equal total weight falls back to name order, so a limit still returns
	// a strict prefix of the full ordering.
	entries, err := repo.Leaderboard(CatchFilter{}, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Anna", entries[0].PlayerName)
	assert.Equal(t, "Ville", entries[1].PlayerName)

	top, err := repo.Leaderboard(CatchFilter{}, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Anna", top[0].PlayerName)
}

func TestLeaderboardLakeFilter(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	entries, err := repo.Leaderboard(CatchFilter{Lake: "Kuivajärvi"}, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Anna", entries[0].PlayerName)
	assert.Equal(t, 4300, entries[0].TotalWeightGrams)
	assert.Equal(t, 1, entries[0].CompetitionsCount)
	assert.Equal(t, "Ville", entries[1].PlayerName)
	assert.Equal(t, 1500, entries[1].TotalWeightGrams)
}

func TestSpeciesStats(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	rows, err := repo.SpeciesStats(CatchFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := map[string]SpeciesStats{}
	for _, row := range rows {
		byName[row.Species] = row
	}

	perch := byName["Perch"]
	assert.Equal(t, 10, perch.TotalCaught)
	assert.Equal(t, 5000, perch.TotalWeightGrams)
	assert.InDelta(t, 500.0, perch.AvgWeightGrams, 0.001, "group total over group count, not average of averages")

	pike := byName["Pike"]
	assert.Equal(t, 2, pike.TotalCaught, "disqualified catches excluded from the sum")
	assert.InDelta(t, 2000.0, pike.AvgWeightGrams, 0.001)

	burbot := byName["Burbot"]
	assert.Equal(t, 0, burbot.TotalCaught)
	assert.Equal(t, 0.0, burbot.AvgWeightGrams, "zero count never divides")

	// Busiest species first.
	assert.Equal(t, "Perch", rows[0].Species)
	assert.Equal(t, "Pike", rows[1].Species)
}

func TestLakeStats(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	rows, err := repo.LakeStats()
	require.NoError(t, err)
	require.Len(t, rows, 3, "lakes without catches still appear")

	byLake := map[string]LakeStats{}
	for _, row := range rows {
		byLake[row.Lake] = row
	}

	assert.Equal(t, 9, byLake["Kuivajärvi"].TotalFish)
	assert.Equal(t, 1, byLake["Kuivajärvi"].TotalCompetitions)
	assert.Equal(t, 3, byLake["Kuivajärvi"].UniqueSpecies)

	assert.Equal(t, 3, byLake["Siikajärvi"].TotalFish)
	assert.Equal(t, 2, byLake["Siikajärvi"].UniqueSpecies)

	haukij := byLake["Haukijärvi"]
	assert.Equal(t, 0, haukij.TotalFish)
	assert.Equal(t, 1, haukij.TotalCompetitions)
	assert.Equal(t, 0, haukij.UniqueSpecies)

	assert.Equal(t, "Kuivajärvi", rows[0].Lake, "most fish first")
}

func TestSpeciesRecord(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	record, err := repo.SpeciesRecord("Pike")
	require.NoError(t, err)
	assert.Equal(t, "Ville", record.PlayerName)
	assert.Equal(t, 2200, record.LargestWeightGrams)
	assert.Equal(t, "Siikajärvi", record.Lake)

	_, err = repo.SpeciesRecord("Zander")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSpeciesRecords(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	records, err := repo.SpeciesRecords()
	require.NoError(t, err)
	require.Len(t, records, 3, "exactly one winner per species with catches")

	// Alphabetical by species.
	assert.Equal(t, "Burbot", records[0].Species)
	assert.Equal(t, "Perch", records[1].Species)
	assert.Equal(t, "Pike", records[2].Species)

	// Perch record is tied at 700g between two of Anna's catches; the
	// earlier row wins.
	assert.Equal(t, "Anna", records[1].PlayerName)
	assert.Equal(t, 700, records[1].LargestWeightGrams)
	assert.Equal(t, "Kuivajärvi", records[1].Lake)

	// Eero's 3000g pike was disqualified along with him.
	assert.Equal(t, 2200, records[2].LargestWeightGrams)
}

func TestTopCatches(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	rows, err := repo.TopCatches(3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2200, rows[0].LargestWeightGrams)
	assert.Equal(t, "Ville", rows[0].PlayerName)
	assert.Equal(t, 1800, rows[1].LargestWeightGrams)
	assert.Equal(t, "Anna", rows[1].PlayerName)
	assert.Equal(t, 700, rows[2].LargestWeightGrams)
	assert.Equal(t, "Anna", rows[2].PlayerName, "same player may hold several top spots")

	all, err := repo.TopCatches(100)
	require.NoError(t, err)
	assert.Len(t, all, 6, "returns every available row when the limit exceeds them")
}

func TestRecentCatches(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	rows, err := repo.RecentCatches(CatchFilter{}, 10)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Siikajärvi", rows[0].Lake, "newest competition first")

	ville, err := repo.RecentCatches(CatchFilter{Player: "Ville"}, 10)
	require.NoError(t, err)
	require.Len(t, ville, 2)
	for _, row := range ville {
		assert.Equal(t, "Ville", row.PlayerName)
	}
}

func TestCatchTotals(t *testing.T) {
	db := setupTestDB(t)
	seedCatchData(t, db)
	repo := NewStatsRepository(db)

	totals, err := repo.CatchTotals("Anna")
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 8, totals[0].TotalFish)
	assert.Equal(t, 5300, totals[0].TotalWeightGrams)
	assert.Equal(t, 2, totals[0].CompetitionsCount)

	all, err := repo.CatchTotals("")
	require.NoError(t, err)
	assert.Len(t, all, 2, "disqualified-only players have no totals")

	none, err := repo.CatchTotals("Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
