package competition

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// A competition is "completed" iff at least one participant holds a non-null
// rank. There is no stored status column; the open/scored state is always
// derived from participant rows so it can never drift from the data.
const (
	completedPredicate = "EXISTS (SELECT 1 FROM competition_participants cp WHERE cp.competition_id = competitions.id AND cp.rank IS NOT NULL)"
	openPredicate      = "NOT " + completedPredicate
)

// ParticipantInfo is one roster entry of a running competition.
type ParticipantInfo struct {
	PlayerName string    `json:"player_name"`
	JoinedAt   time.Time `json:"joined_at"`
	IsActive   bool      `json:"is_active"`
}

// RankedResult is one line of a scored competition's final standings.
type RankedResult struct {
	Rank             int    `json:"rank"`
	PlayerName       string `json:"player_name"`
	TotalWeightGrams int    `json:"total_weight_grams"`
}

// BiggestFish is the single heaviest fish taken during one competition.
type BiggestFish struct {
	PlayerName  string `json:"player_name"`
	Species     string `json:"species"`
	WeightGrams int    `json:"weight_grams"`
}

// Info is the full representation of a single competition, decorated with
// time progress and, depending on state, the live roster or final standings.
type Info struct {
	ID              uint      `json:"id"`
	Lake            string    `json:"lake"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Difficulty      string    `json:"difficulty"`
	GameMode        string    `json:"game_mode"`
	IceCondition    string    `json:"ice_condition"`
	Season          string    `json:"season"`
	TimeOfDay       string    `json:"time_of_day"`
	Progress
	Participants []ParticipantInfo `json:"participants,omitempty"`
	Results      []RankedResult    `json:"results,omitempty"`
}

// Summary is one entry of the completed-competition listing.
type Summary struct {
	ID               uint           `json:"id"`
	Lake             string         `json:"lake"`
	StartTime        time.Time      `json:"start_time"`
	DurationMinutes  int            `json:"duration_minutes"`
	Difficulty       string         `json:"difficulty"`
	GameMode         string         `json:"game_mode"`
	IceCondition     string         `json:"ice_condition"`
	Season           string         `json:"season"`
	TimeOfDay        string         `json:"time_of_day"`
	ParticipantCount int            `json:"participant_count"`
	Results          []RankedResult `json:"results"`
	BiggestFish      *BiggestFish   `json:"biggest_fish,omitempty"`
}

type CompetitionRepository interface {
	// CurrentCompetition returns the running round (newest open competition)
	// with roster and progress, or nil when no round is running.
	CurrentCompetition(now time.Time) (*Info, error)
	// LatestCompletedCompetition returns the newest scored round with final
	// standings. gorm.ErrRecordNotFound when nothing has ever been scored.
	LatestCompletedCompetition(now time.Time) (*Info, error)
	// CompetitionSummaries pages over scored rounds, newest first.
	CompetitionSummaries(limit, offset int) ([]Summary, error)
}

type competitionRepository struct {
	db *gorm.DB
}

// NewCompetitionRepository creates a new instance of CompetitionRepository.
func NewCompetitionRepository(db *gorm.DB) CompetitionRepository {
	return &competitionRepository{db: db}
}

func (r *competitionRepository) CurrentCompetition(now time.Time) (*Info, error) {
	var comp Competition
	err := r.db.Where(openPredicate).Order("start_time DESC").First(&comp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // no round running, the "paused" state
	}
	if err != nil {
		return nil, err
	}

	info := r.baseInfo(&comp, now)

	roster, err := r.roster(comp.ID)
	if err != nil {
		return nil, err
	}
	info.Participants = roster
	return info, nil
}

func (r *competitionRepository) LatestCompletedCompetition(now time.Time) (*Info, error) {
	var comp Competition
	if err := r.db.Where(completedPredicate).Order("start_time DESC").First(&comp).Error; err != nil {
		return nil, err
	}

	info := r.baseInfo(&comp, now)

	results, err := r.results([]uint{comp.ID})
	if err != nil {
		return nil, err
	}
	// A round can be scored while its only ranked participants are
	// disqualified; standings must still come back as an empty list.
	info.Results = results[comp.ID]
	if info.Results == nil {
		info.Results = []RankedResult{}
	}
	return info, nil
}

func (r *competitionRepository) CompetitionSummaries(limit, offset int) ([]Summary, error) {
	var comps []Competition
	err := r.db.Where(completedPredicate).
		Order("start_time DESC").
		Limit(limit).Offset(offset).
		Find(&comps).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(comps))
	if len(comps) == 0 {
		return summaries, nil
	}

	ids := make([]uint, len(comps))
	for i, c := range comps {
		ids[i] = c.ID
	}

	results, err := r.results(ids)
	if err != nil {
		return nil, err
	}
	counts, err := r.participantCounts(ids)
	if err != nil {
		return nil, err
	}
	biggest, err := r.biggestFish(ids)
	if err != nil {
		return nil, err
	}

	for _, c := range comps {
		res := results[c.ID]
		if res == nil {
			res = []RankedResult{}
		}
		summaries = append(summaries, Summary{
			ID:               c.ID,
			Lake:             c.Lake,
			StartTime:        c.StartTime,
			DurationMinutes:  c.DurationMinutes,
			Difficulty:       c.Difficulty,
			GameMode:         c.GameMode,
			IceCondition:     c.IceCondition,
			Season:           c.Season,
			TimeOfDay:        c.TimeOfDay,
			ParticipantCount: counts[c.ID],
			Results:          res,
			BiggestFish:      biggest[c.ID],
		})
	}
	return summaries, nil
}

func (r *competitionRepository) baseInfo(c *Competition, now time.Time) *Info {
	return &Info{
		ID:              c.ID,
		Lake:            c.Lake,
		StartTime:       c.StartTime,
		DurationMinutes: c.DurationMinutes,
		Difficulty:      c.Difficulty,
		GameMode:        c.GameMode,
		IceCondition:    c.IceCondition,
		Season:          c.Season,
		TimeOfDay:       c.TimeOfDay,
		Progress:        ComputeProgress(c.StartTime, c.DurationMinutes, now),
	}
}

// roster lists everyone who joined the given round, active or not.
func (r *competitionRepository) roster(competitionID uint) ([]ParticipantInfo, error) {
	var rows []struct {
		PlayerName string
		JoinedAt   time.Time
		LeftAt     *time.Time
	}
	err := r.db.Model(&CompetitionParticipant{}).
		Select("users.base_nickname AS player_name, competition_participants.joined_at, competition_participants.left_at").
		Joins("JOIN users ON users.id = competition_participants.user_id").
		Where("competition_participants.competition_id = ?", competitionID).
		Order("competition_participants.joined_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	roster := make([]ParticipantInfo, len(rows))
	for i, row := range rows {
		roster[i] = ParticipantInfo{
			PlayerName: row.PlayerName,
			JoinedAt:   row.JoinedAt,
			IsActive:   row.LeftAt == nil,
		}
	}
	return roster, nil
}

// results fetches final standings for a batch of competitions in one query,
// grouped by competition id, each ordered by rank ascending.
func (r *competitionRepository) results(competitionIDs []uint) (map[uint][]RankedResult, error) {
	var rows []struct {
		CompetitionID    uint
		Rank             int
		PlayerName       string
		TotalWeightGrams int
	}
	err := r.db.Model(&CompetitionParticipant{}).
		Select("competition_participants.competition_id, competition_participants.rank, users.base_nickname AS player_name, COALESCE(competition_participants.total_weight_grams, 0) AS total_weight_grams").
		Joins("JOIN users ON users.id = competition_participants.user_id").
		Where("competition_participants.competition_id IN ?", competitionIDs).
		Where("competition_participants.rank IS NOT NULL").
		Where("competition_participants.disqualified = ?", false).
		Order("competition_participants.competition_id, competition_participants.rank ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make(map[uint][]RankedResult, len(competitionIDs))
	for _, row := range rows {
		results[row.CompetitionID] = append(results[row.CompetitionID], RankedResult{
			Rank:             row.Rank,
			PlayerName:       row.PlayerName,
			TotalWeightGrams: row.TotalWeightGrams,
		})
	}
	return results, nil
}

func (r *competitionRepository) participantCounts(competitionIDs []uint) (map[uint]int, error) {
	var rows []struct {
		CompetitionID uint
		Total         int
	}
	err := r.db.Model(&CompetitionParticipant{}).
		Select("competition_id, COUNT(DISTINCT user_id) AS total").
		Where("competition_id IN ?", competitionIDs).
		Group("competition_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.CompetitionID] = row.Total
	}
	return counts, nil
}

// biggestFish resolves the single heaviest fish of each competition in the
// batch, skipping disqualified participants' catches. Ties on weight go to
// the lowest catch id. Competitions without eligible catches are absent from
// the map.
func (r *competitionRepository) biggestFish(competitionIDs []uint) (map[uint]*BiggestFish, error) {
	var rows []struct {
		CompetitionID      uint
		PlayerName         string
		Species            string
		LargestWeightGrams int
	}
	err := r.db.Model(&FishCatch{}).
		Select("fish_catches.competition_id, users.base_nickname AS player_name, fish_species.name AS species, fish_catches.largest_weight_grams").
		Joins("JOIN competition_participants ON competition_participants.competition_id = fish_catches.competition_id AND competition_participants.user_id = fish_catches.user_id").
		Joins("JOIN users ON users.id = fish_catches.user_id").
		Joins("JOIN fish_species ON fish_species.id = fish_catches.species_id").
		Where("fish_catches.competition_id IN ?", competitionIDs).
		Where("competition_participants.disqualified = ?", false).
		Order("fish_catches.competition_id, fish_catches.largest_weight_grams DESC, fish_catches.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	biggest := make(map[uint]*BiggestFish, len(competitionIDs))
	for _, row := range rows {
		if _, seen := biggest[row.CompetitionID]; seen {
			continue // rows are ordered, first one per competition wins
		}
		biggest[row.CompetitionID] = &BiggestFish{
			PlayerName:  row.PlayerName,
			Species:     row.Species,
			WeightGrams: row.LargestWeightGrams,
		}
	}
	return biggest, nil
}
