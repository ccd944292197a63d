package services

import (
	"testing"
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildCSVRowsFlattensEveryRecord(t *testing.T) {
	t.Parallel()

	notes := "rough morning"
	when := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	data := ExportData{
		UserID: "user-1",
		HabitCheckIns: []models.HabitCheckIn{
			{HabitID: "habit-1", Completed: true, Date: when},
		},
		MoodEntries: []models.MoodEntry{
			{MoodLevel: 2, Notes: &notes, Date: when},
		},
		StressEntries: []models.StressEntry{
			{StressLevel: 4, Triggers: []string{"traffic", "email"}, CopingStrategies: []string{"breathing"}, Date: when},
		},
		ProductivityEntries: []models.ProductivityEntry{
			{ProductivityScore: 6, TasksCompleted: 4, FocusTimeMinutes: 120, Date: when},
		},
	}

	rows := BuildCSVRows(data)
	assert.Len(t, rows, 4)

	assert.Equal(t, []string{"habit_check_in", "2026-08-30 09:15:00", "", "yes", "habit-1", ""}, rows[0])
	assert.Equal(t, []string{"mood", "2026-08-30 09:15:00", "2", "", "", "rough morning"}, rows[1])
	assert.Equal(t, []string{"stress", "2026-08-30 09:15:00", "4", "", "traffic; email | breathing", ""}, rows[2])
	assert.Equal(t, []string{"productivity", "2026-08-30 09:15:00", "6", "", "tasks=4 focus_minutes=120", ""}, rows[3])

	// Every row lines up with the shared header.
	for _, row := range rows {
		assert.Len(t, row, len(ExportCSVHeaders))
	}
}
