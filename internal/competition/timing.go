package competition

import "time"

// Progress holds the time position of a running or finished round relative
// to its planned duration.
type Progress struct {
	ElapsedMinutes       int `json:"elapsed_minutes"`
	TimeRemainingMinutes int `json:"time_remaining_minutes"`
}

// ComputeProgress measures elapsed and remaining whole minutes of a round at
// the instant now. Stored start times are naive UTC, so both sides are
// normalized to UTC before subtracting. Elapsed floors to whole minutes and
// never goes negative (a start_time seconds in the future reads as 0);
// remaining is clamped at 0 once the planned duration is exceeded.
func ComputeProgress(startTime time.Time, durationMinutes int, now time.Time) Progress {
	elapsed := int(now.UTC().Sub(startTime.UTC()).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := durationMinutes - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Progress{
		ElapsedMinutes:       elapsed,
		TimeRemainingMinutes: remaining,
	}
}
