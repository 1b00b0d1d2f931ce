package stats

import "time"

// --- Aggregate row shapes returned by the statistics queries ---

// LeaderboardEntry is one player's all-time catch totals.
type LeaderboardEntry struct {
	PlayerName          string `json:"player_name"`
	TotalFish           int    `json:"total_fish"`
	TotalWeightGrams    int    `json:"total_weight_grams"`
	CompetitionsCount   int    `json:"competitions_count"`
	BiggestCatchGrams   int    `json:"biggest_catch_grams"`
	BiggestCatchSpecies string `json:"biggest_catch_species,omitempty"`
}

// SpeciesStats aggregates catches of one species across all competitions.
// AvgWeightGrams is total weight over total count for the whole group, not
// an average of per-catch averages.
type SpeciesStats struct {
	Species          string  `json:"species"`
	TotalCaught      int     `json:"total_caught"`
	TotalWeightGrams int     `json:"total_weight_grams"`
	AvgWeightGrams   float64 `json:"avg_weight_grams"`
}

// LakeStats aggregates per lake. Lakes that hosted competitions but have no
// recorded catches still appear with TotalFish 0. TotalCompetitions counts
// only scored (rank-bearing) competitions.
type LakeStats struct {
	Lake              string `json:"lake"`
	TotalFish         int    `json:"total_fish"`
	TotalCompetitions int    `json:"total_competitions"`
	UniqueSpecies     int    `json:"unique_species"`
}

// CatchRecord is one fish_catches row joined with its player, species and
// competition context. Remember the row is already aggregated per
// (competition, player, species) by the game server.
type CatchRecord struct {
	CompetitionID      uint      `json:"competition_id"`
	StartTime          time.Time `json:"start_time"`
	Lake               string    `json:"lake"`
	PlayerName         string    `json:"player_name"`
	Species            string    `json:"species"`
	Count              int       `json:"count"`
	TotalWeightGrams   int       `json:"total_weight_grams"`
	LargestWeightGrams int       `json:"largest_weight_grams"`
}

// CatchTotals is a player's catch side of the efficiency merge.
type CatchTotals struct {
	PlayerName        string `json:"player_name"`
	TotalFish         int    `json:"total_fish"`
	TotalWeightGrams  int    `json:"total_weight_grams"`
	CompetitionsCount int    `json:"competitions_count"`
}

// CatchFilter restricts the catch set before aggregation. Zero values mean
// no restriction; predicates compose, they never change the query shape.
type CatchFilter struct {
	Lake   string
	Player string
}
