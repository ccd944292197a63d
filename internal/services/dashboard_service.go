package services

import (
	"fmt"
	"math"
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
)

// The dashboard aggregates a fixed trailing window with the same caps the
// underlying store queries used historically.
const (
	DashboardWindowDays = 30

	dashboardHabitCap   = 100
	dashboardCheckInCap = 1000
	dashboardEntryCap   = 100

	defaultMoodAverage         = 3.0
	defaultStressAverage       = 3.0
	defaultProductivityAverage = 5.0
)

type DashboardHabitReader interface {
	ListActiveByUser(userID string, limit int) ([]models.Habit, error)
	ListCheckInsSince(userID string, since time.Time, limit int) ([]models.HabitCheckIn, error)
}

type DashboardEntryReader interface {
	ListMoodSince(userID string, since time.Time, limit int) ([]models.MoodEntry, error)
	ListStressSince(userID string, since time.Time, limit int) ([]models.StressEntry, error)
	ListProductivitySince(userID string, since time.Time, limit int) ([]models.ProductivityEntry, error)
}

type DashboardService struct {
	habits  DashboardHabitReader
	entries DashboardEntryReader
}

func NewDashboardService(habits DashboardHabitReader, entries DashboardEntryReader) *DashboardService {
	return &DashboardService{habits: habits, entries: entries}
}

type WellnessDashboard struct {
	UserID              string  `json:"user_id"`
	DateRange           string  `json:"date_range"`
	WellnessScore       float64 `json:"wellness_score"`
	HabitCompletionRate float64 `json:"habit_completion_rate"`
	MoodAverage         float64 `json:"mood_average"`
	StressAverage       float64 `json:"stress_average"`
	ProductivityAverage float64 `json:"productivity_average"`
	StreakCount         int     `json:"streak_count"`
	ActiveChallenges    int     `json:"active_challenges"`
}

func (service *DashboardService) BuildDashboard(userID string, now time.Time) (WellnessDashboard, error) {
	windowStart := now.AddDate(0, 0, -DashboardWindowDays)

	habits, err := service.habits.ListActiveByUser(userID, dashboardHabitCap)
	if err != nil {
		return WellnessDashboard{}, fmt.Errorf("load habits: %w", err)
	}
	checkIns, err := service.habits.ListCheckInsSince(userID, windowStart, dashboardCheckInCap)
	if err != nil {
		return WellnessDashboard{}, fmt.Errorf("load check-ins: %w", err)
	}
	moods, err := service.entries.ListMoodSince(userID, windowStart, dashboardEntryCap)
	if err != nil {
		return WellnessDashboard{}, fmt.Errorf("load mood entries: %w", err)
	}
	stresses, err := service.entries.ListStressSince(userID, windowStart, dashboardEntryCap)
	if err != nil {
		return WellnessDashboard{}, fmt.Errorf("load stress entries: %w", err)
	}
	productivity, err := service.entries.ListProductivitySince(userID, windowStart, dashboardEntryCap)
	if err != nil {
		return WellnessDashboard{}, fmt.Errorf("load productivity entries: %w", err)
	}

	completionRate := habitCompletionRate(checkIns)

	moodAverage := defaultMoodAverage
	if len(moods) > 0 {
		total := 0
		for _, entry := range moods {
			total += entry.MoodLevel
		}
		moodAverage = float64(total) / float64(len(moods))
	}

	stressAverage := defaultStressAverage
	if len(stresses) > 0 {
		total := 0
		for _, entry := range stresses {
			total += entry.StressLevel
		}
		stressAverage = float64(total) / float64(len(stresses))
	}

	productivityAverage := defaultProductivityAverage
	if len(productivity) > 0 {
		total := 0
		for _, entry := range productivity {
			total += entry.ProductivityScore
		}
		productivityAverage = float64(total) / float64(len(productivity))
	}

	streakCount := 0
	for _, habit := range habits {
		if habit.CurrentStreak > streakCount {
			streakCount = habit.CurrentStreak
		}
	}

	score := WellnessScore(completionRate, moodAverage, stressAverage, productivityAverage)

	return WellnessDashboard{
		UserID:              userID,
		DateRange:           "Last 30 days",
		WellnessScore:       RoundToOneDecimal(score),
		HabitCompletionRate: RoundToOneDecimal(completionRate),
		MoodAverage:         RoundToOneDecimal(moodAverage),
		StressAverage:       RoundToOneDecimal(stressAverage),
		ProductivityAverage: RoundToOneDecimal(productivityAverage),
		StreakCount:         streakCount,
		ActiveChallenges:    0,
	}, nil
}

// habitCompletionRate is the share of completed check-ins in the window as
// a percentage. The denominator floor of 1 keeps the empty window at 0%.
func habitCompletionRate(checkIns []models.HabitCheckIn) float64 {
	completed := 0
	for _, checkIn := range checkIns {
		if checkIn.Completed {
			completed++
		}
	}
	denominator := len(checkIns)
	if denominator < 1 {
		denominator = 1
	}
	return float64(completed) / float64(denominator) * 100
}

// WellnessScore is the fixed weighted blend of the four component metrics.
// Stress enters inverted through (6 - x) over its 1..5 domain so higher
// stress lowers the score.
func WellnessScore(completionRate float64, moodAverage float64, stressAverage float64, productivityAverage float64) float64 {
	return (completionRate/100*0.3 +
		moodAverage/5*0.3 +
		(6-stressAverage)/5*0.2 +
		productivityAverage/10*0.2) * 100
}

func RoundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
