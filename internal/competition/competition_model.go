package competition

import "time"

// The tables below are written by the game server out of band; this API only
// reads them, so none of the models carry gorm.Model bookkeeping columns.

// User is a player identity. BaseNickname is the display name players join
// with; it is not guaranteed unique over time, but it is the grouping key for
// every cross-cutting aggregate (sessions are matched to catches by name, not
// by id). A player who changes nickname fragments their history; a known
// data-quality limitation of the source data, not something to repair here.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BaseNickname string `gorm:"not null;index" json:"base_nickname"`
}

func (User) TableName() string { return "users" }

// Competition is one tournament round. It has no stored status column:
// whether a round is finished is derived from participant ranks (see
// IsCompleted / the repository predicates).
type Competition struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Lake            string    `gorm:"not null;index" json:"lake"`
	StartTime       time.Time `gorm:"not null;index" json:"start_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Difficulty      string    `json:"difficulty"`
	GameMode        string    `json:"game_mode"`
	IceCondition    string    `json:"ice_condition"`
	Season          string    `json:"season"`
	TimeOfDay       string    `json:"time_of_day"`

	Participants []CompetitionParticipant `gorm:"foreignKey:CompetitionID" json:"-"`
}

func (Competition) TableName() string { return "competitions" }

// CompetitionParticipant joins a user into a competition. Rank and
// TotalWeightGrams stay NULL until the round is scored; rank is unique per
// competition among non-null values (the game does not model ties). LeftAt
// is NULL while the player is still connected.
type CompetitionParticipant struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CompetitionID    uint       `gorm:"not null;index" json:"competition_id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	Rank             *int       `json:"rank"`
	TotalWeightGrams *int       `json:"total_weight_grams"`
	Disqualified     bool       `gorm:"not null;default:false" json:"disqualified"`
	JoinedAt         time.Time  `gorm:"not null" json:"joined_at"`
	LeftAt           *time.Time `json:"left_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CompetitionParticipant) TableName() string { return "competition_participants" }

// FishSpecies is a catchable species reference.
type FishSpecies struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;unique" json:"name"`
}

func (FishSpecies) TableName() string { return "fish_species" }

// FishCatch is pre-aggregated per (competition, user, species) by the game
// server: one row summarizes every fish of one species a player took in one
// round, not one row per fish.
type FishCatch struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	CompetitionID      uint `gorm:"not null;index" json:"competition_id"`
	UserID             uint `gorm:"not null;index" json:"user_id"`
	SpeciesID          uint `gorm:"not null;index" json:"species_id"`
	Count              int  `gorm:"not null" json:"count"`
	TotalWeightGrams   int  `gorm:"not null" json:"total_weight_grams"`
	LargestWeightGrams int  `gorm:"not null" json:"largest_weight_grams"`

	User    User        `gorm:"foreignKey:UserID" json:"-"`
	Species FishSpecies `gorm:"foreignKey:SpeciesID" json:"-"`
}

func (FishCatch) TableName() string { return "fish_catches" }

// IsCompleted reports whether any participant holds a final rank. A round
// with no participants at all is vacuously open.
func (c *Competition) IsCompleted() bool {
	for _, p := range c.Participants {
		if p.Rank != nil {
			return true
		}
	}
	return false
}
