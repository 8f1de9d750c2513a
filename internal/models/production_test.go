package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageCatalog(t *testing.T) {
	require.Len(t, StageCatalog, StageCount)

	seen := make(map[string]bool)
	for _, def := range StageCatalog {
		assert.NotEmpty(t, def.Name)
		assert.Greater(t, def.DefaultDays, 0)
		assert.False(t, seen[def.Name], "duplicate stage name %q", def.Name)
		seen[def.Name] = true
	}

	assert.Equal(t, "TRIMS IN HOUSE", FirstStageName())
	assert.Equal(t, "INSPECTION", StageCatalog[StageCount-1].Name)
}

func TestParseStageStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "In Progress", "Completed", "Overdue"} {
		status, err := ParseStageStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, StageStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "Done", "IN PROGRESS"} {
		_, err := ParseStageStatus(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Ready for Inspection")
	require.NoError(t, err)
	assert.Equal(t, OrderReadyForInspection, status)

	_, err = ParseOrderStatus("Shipped")
	assert.Error(t, err)
}

func TestOverdueAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	daysAgo := func(n int) *time.Time {
		d := now.AddDate(0, 0, -n)
		return &d
	}

	tests := []struct {
		name  string
		stage ProductionStage
		want  bool
	}{
		{
			name:  "never started",
			stage: ProductionStage{Status: StagePending, ExpectedDuration: 1},
			want:  false,
		},
		{
			name:  "completed is never overdue",
			stage: ProductionStage{Status: StageCompleted, StartDate: daysAgo(10), ExpectedDuration: 1},
			want:  false,
		},
		{
			name:  "started with no expected duration",
			stage: ProductionStage{Status: StageInProgress, StartDate: daysAgo(0), ExpectedDuration: 0},
			want:  true,
		},
		{
			name:  "deadline in the future",
			stage: ProductionStage{Status: StageInProgress, StartDate: daysAgo(1), ExpectedDuration: 3},
			want:  false,
		},
		{
			name:  "on the deadline day",
			stage: ProductionStage{Status: StageInProgress, StartDate: daysAgo(2), ExpectedDuration: 2},
			want:  false,
		},
		{
			name:  "past the deadline",
			stage: ProductionStage{Status: StageInProgress, StartDate: daysAgo(3), ExpectedDuration: 2},
			want:  true,
		},
		{
			name:  "already flagged stays overdue",
			stage: ProductionStage{Status: StageOverdue, StartDate: daysAgo(5), ExpectedDuration: 1},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.OverdueAt(now))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)
	to := time.Date(2026, 3, 4, 0, 5, 0, 0, time.UTC)

	// Calendar dates count, not elapsed hours.
	assert.Equal(t, 3, DaysBetween(from, to))
	assert.Equal(t, 0, DaysBetween(from, from))
	assert.Equal(t, -3, DaysBetween(to, from))
}
