package stats

import (
	"sort"

	"gorm.io/gorm"

	"github.com/propilkki-tournament/stats-api/internal/competition"
)

type StatsRepository interface {
	Leaderboard(filter CatchFilter, limit int) ([]LeaderboardEntry, error)
	SpeciesStats(filter CatchFilter) ([]SpeciesStats, error)
	LakeStats() ([]LakeStats, error)
	RecentCatches(filter CatchFilter, limit int) ([]CatchRecord, error)
	// SpeciesRecord returns the heaviest catch ever recorded for one species.
	// gorm.ErrRecordNotFound when the species has no catches.
	SpeciesRecord(species string) (*CatchRecord, error)
	// SpeciesRecords returns the heaviest catch of every species in one call.
	SpeciesRecords() ([]CatchRecord, error)
	TopCatches(limit int) ([]CatchRecord, error)
	// CatchTotals aggregates per player for the efficiency analyzer. An empty
	// player string means all players.
	CatchTotals(player string) ([]CatchTotals, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// catchQuery is the shared base of every catch aggregation: fish_catches
// joined through competition_participants so disqualified participants drop
// out at the participant boundary, plus player/species/competition context.
// Filter predicates compose on top; they never change the query shape.
func (r *statsRepository) catchQuery(filter CatchFilter) *gorm.DB {
	q := r.db.Model(&competition.FishCatch{}).
		Joins("JOIN competition_participants ON competition_participants.competition_id = fish_catches.competition_id AND competition_participants.user_id = fish_catches.user_id").
		Joins("JOIN users ON users.id = fish_catches.user_id").
		Joins("JOIN fish_species ON fish_species.id = fish_catches.species_id").
		Joins("JOIN competitions ON competitions.id = fish_catches.competition_id").
		Where("competition_participants.disqualified = ?", false)
	if filter.Lake != "" {
		q = q.Where("competitions.lake = ?", filter.Lake)
	}
	if filter.Player != "" {
		q = q.Where("users.base_nickname = ?", filter.Player)
	}
	return q
}

const catchRecordColumns = "fish_catches.competition_id, competitions.start_time, competitions.lake, " +
	"users.base_nickname AS player_name, fish_species.name AS species, " +
	"fish_catches.count AS count, fish_catches.total_weight_grams, fish_catches.largest_weight_grams"

func (r *statsRepository) Leaderboard(filter CatchFilter, limit int) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0, limit)
	err := r.catchQuery(filter).
		Select("users.base_nickname AS player_name, " +
			"SUM(fish_catches.count) AS total_fish, " +
			"SUM(fish_catches.total_weight_grams) AS total_weight_grams, " +
			"COUNT(DISTINCT fish_catches.competition_id) AS competitions_count, " +
			"MAX(fish_catches.largest_weight_grams) AS biggest_catch_grams").
		Group("users.base_nickname").
		Order("total_weight_grams DESC, player_name ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	species, err := r.bestCatchSpecies(filter, entries)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].BiggestCatchSpecies = species[entries[i].PlayerName]
	}
	return entries, nil
}

// bestCatchSpecies resolves, per player on the page, the species of that
// player's single heaviest catch. Ties on weight go to the lowest catch id.
func (r *statsRepository) bestCatchSpecies(filter CatchFilter, entries []LeaderboardEntry) (map[string]string, error) {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.PlayerName
	}

	var rows []struct {
		PlayerName string
		Species    string
	}
	err := r.catchQuery(filter).
		Select("users.base_nickname AS player_name, fish_species.name AS species").
		Where("users.base_nickname IN ?", names).
		Order("users.base_nickname, fish_catches.largest_weight_grams DESC, fish_catches.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	best := make(map[string]string, len(names))
	for _, row := range rows {
		if _, seen := best[row.PlayerName]; !seen {
			best[row.PlayerName] = row.Species
		}
	}
	return best, nil
}

func (r *statsRepository) SpeciesStats(filter CatchFilter) ([]SpeciesStats, error) {
	rows := make([]SpeciesStats, 0)
	err := r.catchQuery(filter).
		Select("fish_species.name AS species, " +
			"SUM(fish_catches.count) AS total_caught, " +
			"SUM(fish_catches.total_weight_grams) AS total_weight_grams").
		Group("fish_species.name").
		Order("total_caught DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Average weight per fish over the whole group. Guard against groups
	// whose catches all have count 0.
	for i := range rows {
		if rows[i].TotalCaught > 0 {
			rows[i].AvgWeightGrams = float64(rows[i].TotalWeightGrams) / float64(rows[i].TotalCaught)
		}
	}
	return rows, nil
}

func (r *statsRepository) LakeStats() ([]LakeStats, error) {
	// Every lake that hosted at least one competition, with its scored-round
	// count. CASE WHEN EXISTS keeps the completeness predicate derived from
	// participant ranks, same as the competition classifier.
	type lakeRow struct {
		Lake              string
		TotalCompetitions int
	}
	var lakes []lakeRow
	err := r.db.Model(&competition.Competition{}).
		Select("lake, COUNT(DISTINCT CASE WHEN EXISTS (SELECT 1 FROM competition_participants cp WHERE cp.competition_id = competitions.id AND cp.rank IS NOT NULL) THEN competitions.id END) AS total_competitions").
		Group("lake").
		Scan(&lakes).Error
	if err != nil {
		return nil, err
	}

	// Catch totals per lake, inner joins only - lakes without catches are
	// simply absent here and keep their zero totals from the first query.
	type catchRow struct {
		Lake          string
		TotalFish     int
		UniqueSpecies int
	}
	var catches []catchRow
	err = r.catchQuery(CatchFilter{}).
		Select("competitions.lake AS lake, SUM(fish_catches.count) AS total_fish, COUNT(DISTINCT fish_catches.species_id) AS unique_species").
		Group("competitions.lake").
		Scan(&catches).Error
	if err != nil {
		return nil, err
	}

	byLake := make(map[string]catchRow, len(catches))
	for _, c := range catches {
		byLake[c.Lake] = c
	}

	result := make([]LakeStats, 0, len(lakes))
	for _, l := range lakes {
		result = append(result, LakeStats{
			Lake:              l.Lake,
			TotalFish:         byLake[l.Lake].TotalFish,
			TotalCompetitions: l.TotalCompetitions,
			UniqueSpecies:     byLake[l.Lake].UniqueSpecies,
		})
	}

	// Busiest lakes first, matching the catch-count ordering of the other
	// aggregate endpoints.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalFish > result[j].TotalFish
	})
	return result, nil
}

func (r *statsRepository) RecentCatches(filter CatchFilter, limit int) ([]CatchRecord, error) {
	rows := make([]CatchRecord, 0, limit)
	err := r.catchQuery(filter).
		Select(catchRecordColumns).
		Order("competitions.start_time DESC, fish_catches.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) SpeciesRecord(species string) (*CatchRecord, error) {
	var rows []CatchRecord
	err := r.catchQuery(CatchFilter{}).
		Select(catchRecordColumns).
		Where("fish_species.name = ?", species).
		Order("fish_catches.largest_weight_grams DESC, fish_catches.id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *statsRepository) SpeciesRecords() ([]CatchRecord, error) {
	// Join each catch against its species' maximum weight, so only record
	// holders come back. Disqualified participants are excluded from the
	// maximum itself, not just the outer rows.
	var rows []CatchRecord
	err := r.db.Raw(`
		SELECT fish_catches.competition_id, competitions.start_time, competitions.lake,
		       users.base_nickname AS player_name, fish_species.name AS species,
		       fish_catches.count AS count, fish_catches.total_weight_grams, fish_catches.largest_weight_grams
		FROM fish_catches
		JOIN competition_participants ON competition_participants.competition_id = fish_catches.competition_id
		     AND competition_participants.user_id = fish_catches.user_id
		     AND competition_participants.disqualified = ?
		JOIN users ON users.id = fish_catches.user_id
		JOIN fish_species ON fish_species.id = fish_catches.species_id
		JOIN competitions ON competitions.id = fish_catches.competition_id
		JOIN (
			SELECT fc.species_id, MAX(fc.largest_weight_grams) AS max_weight
			FROM fish_catches fc
			JOIN competition_participants cp ON cp.competition_id = fc.competition_id
			     AND cp.user_id = fc.user_id AND cp.disqualified = ?
			GROUP BY fc.species_id
		) best ON best.species_id = fish_catches.species_id
		      AND best.max_weight = fish_catches.largest_weight_grams
		ORDER BY fish_species.name ASC, fish_catches.id ASC`,
		false, false).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Exactly one winner per species: ties on weight go to the lowest catch
	// id, which the ordering put first.
	records := make([]CatchRecord, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.Species] {
			continue
		}
		seen[row.Species] = true
		records = append(records, row)
	}
	return records, nil
}

func (r *statsRepository) TopCatches(limit int) ([]CatchRecord, error) {
	rows := make([]CatchRecord, 0, limit)
	err := r.catchQuery(CatchFilter{}).
		Select(catchRecordColumns).
		Order("fish_catches.largest_weight_grams DESC, fish_catches.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) CatchTotals(player string) ([]CatchTotals, error) {
	totals := make([]CatchTotals, 0)
	err := r.catchQuery(CatchFilter{Player: player}).
		Select("users.base_nickname AS player_name, " +
			"SUM(fish_catches.count) AS total_fish, " +
			"SUM(fish_catches.total_weight_grams) AS total_weight_grams, " +
			"COUNT(DISTINCT fish_catches.competition_id) AS competitions_count").
		Group("users.base_nickname").
		Scan(&totals).Error
	return totals, err
}
