package session

import (
	"sort"

	"github.com/propilkki-tournament/stats-api/internal/stats"
	"github.com/propilkki-tournament/stats-api/pkg/utils"
)

// mergeEfficiency cross-references session totals with catch totals, full
// outer join semantics keyed on the player name (the soft session-catch
// identity). A player present on only one side keeps zeros on the other.
// Players with zero playtime and zero fish are dropped. The result is ordered
// by grams per hour descending, names ascending among equals so the order is
// stable across calls.
func mergeEfficiency(sessions []SessionTotals, catches []stats.CatchTotals) []PlayerEfficiency {
	merged := make(map[string]*PlayerEfficiency, len(sessions)+len(catches))

	for _, s := range sessions {
		merged[s.PlayerName] = &PlayerEfficiency{
			PlayerName:         s.PlayerName,
			TotalPlaytimeHours: s.TotalPlaytimeHours,
		}
	}
	for _, c := range catches {
		e, ok := merged[c.PlayerName]
		if !ok {
			e = &PlayerEfficiency{PlayerName: c.PlayerName}
			merged[c.PlayerName] = e
		}
		e.TotalFish = c.TotalFish
		e.TotalWeightGrams = c.TotalWeightGrams
		e.CompetitionsCount = c.CompetitionsCount
	}

	result := make([]PlayerEfficiency, 0, len(merged))
	for _, e := range merged {
		if e.TotalPlaytimeHours == 0 && e.TotalFish == 0 {
			continue
		}
		if e.TotalPlaytimeHours > 0 {
			e.FishPerHour = utils.Round2(float64(e.TotalFish) / e.TotalPlaytimeHours)
			e.GramsPerHour = utils.Round2(float64(e.TotalWeightGrams) / e.TotalPlaytimeHours)
		}
		e.TotalPlaytimeHours = utils.Round2(e.TotalPlaytimeHours)
		result = append(result, *e)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].GramsPerHour != result[j].GramsPerHour {
			return result[i].GramsPerHour > result[j].GramsPerHour
		}
		return result[i].PlayerName < result[j].PlayerName
	})
	return result
}
