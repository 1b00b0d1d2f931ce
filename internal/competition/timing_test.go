package competition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	now := time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		start           time.Time
		durationMinutes int
		wantElapsed     int
		wantRemaining   int
	}{
		{
			name:            "mid round",
			start:           now.Add(-45 * time.Minute),
			durationMinutes: 60,
			wantElapsed:     45,
			wantRemaining:   15,
		},
		{
			name:            "round overran its duration",
			start:           now.Add(-90 * time.Minute),
			durationMinutes: 60,
			wantElapsed:     90,
			wantRemaining:   0,
		},
		{
			name:            "just started",
			start:           now,
			durationMinutes: 60,
			wantElapsed:     0,
			wantRemaining:   60,
		},
		{
			name:            "partial minute floors down",
			start:           now.Add(-45*time.Minute - 59*time.Second),
			durationMinutes: 60,
			wantElapsed:     45,
			wantRemaining:   15,
		},
		{
			name:            "start time slightly in the future",
			start:           now.Add(30 * time.Second),
			durationMinutes: 60,
			wantElapsed:     0,
			wantRemaining:   60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(tt.start, tt.durationMinutes, now)
			assert.Equal(t, tt.wantElapsed, got.ElapsedMinutes)
			assert.Equal(t, tt.wantRemaining, got.TimeRemainingMinutes)
		})
	}
}

func TestComputeProgressNormalizesZones(t *testing.T) {
	now := time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)
	helsinki := time.FixedZone("EET", 2*60*60)

	// Same instant as now-30m, expressed in a non-UTC zone.
	start := time.Date(2026, 2, 14, 19, 30, 0, 0, helsinki)

	got := ComputeProgress(start, 60, now.In(helsinki))
	assert.Equal(t, 30, got.ElapsedMinutes)
	assert.Equal(t, 30, got.TimeRemainingMinutes)
}
