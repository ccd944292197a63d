package api

import (
	"math"
	"net/http"
	"testing"

	"github.com/mindmatehq/mindmate/internal/models"
	"github.com/mindmatehq/mindmate/internal/services"
)

func TestLogMoodBounds(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "mood@example.com", "StrongPass1", "Moody")

	for _, level := range []int{0, 6} {
		response := doJSON(t, app, http.MethodPost, "/api/wellness/mood", token, map[string]any{
			"mood_level": level,
		})
		response.Body.Close()
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("mood_level %d: expected status 400, got %d", level, response.StatusCode)
		}
	}

	response := doJSON(t, app, http.MethodPost, "/api/wellness/mood", token, map[string]any{
		"mood_level": 4,
		"notes":      "good day",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	var entry models.MoodEntry
	decodeBody(t, response.Body, &entry)
	if entry.MoodLevel != 4 {
		t.Fatalf("expected mood_level 4, got %d", entry.MoodLevel)
	}
	if entry.Notes == nil || *entry.Notes != "good day" {
		t.Fatalf("expected notes persisted, got %v", entry.Notes)
	}
}

func TestLogMoodAcceptsQueryParameters(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "moodquery@example.com", "StrongPass1", "Mood Query")

	response := doJSON(t, app, http.MethodPost, "/api/wellness/mood?mood_level=5", token, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	var entry models.MoodEntry
	decodeBody(t, response.Body, &entry)
	if entry.MoodLevel != 5 {
		t.Fatalf("expected mood_level 5 from query, got %d", entry.MoodLevel)
	}
}

func TestLogStressAndProductivityBounds(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "entries@example.com", "StrongPass1", "Entries")

	tooHighStress := doJSON(t, app, http.MethodPost, "/api/wellness/stress", token, map[string]any{
		"stress_level": 9,
	})
	tooHighStress.Body.Close()
	if tooHighStress.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for stress_level 9, got %d", tooHighStress.StatusCode)
	}

	stress := doJSON(t, app, http.MethodPost, "/api/wellness/stress", token, map[string]any{
		"stress_level":      4,
		"triggers":          []string{"deadline"},
		"coping_strategies": []string{"walk"},
	})
	defer stress.Body.Close()
	if stress.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 for stress entry, got %d", stress.StatusCode)
	}
	var stressEntry models.StressEntry
	decodeBody(t, stress.Body, &stressEntry)
	if len(stressEntry.Triggers) != 1 || stressEntry.Triggers[0] != "deadline" {
		t.Fatalf("expected triggers persisted, got %v", stressEntry.Triggers)
	}

	tooHighProductivity := doJSON(t, app, http.MethodPost, "/api/wellness/productivity", token, map[string]any{
		"productivity_score": 11,
	})
	tooHighProductivity.Body.Close()
	if tooHighProductivity.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for productivity_score 11, got %d", tooHighProductivity.StatusCode)
	}

	productivity := doJSON(t, app, http.MethodPost, "/api/wellness/productivity", token, map[string]any{
		"productivity_score": 7,
		"tasks_completed":    3,
		"focus_time_minutes": 90,
	})
	defer productivity.Body.Close()
	if productivity.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201 for productivity entry, got %d", productivity.StatusCode)
	}
	var productivityEntry models.ProductivityEntry
	decodeBody(t, productivity.Body, &productivityEntry)
	if productivityEntry.TasksCompleted != 3 || productivityEntry.FocusTimeMinutes != 90 {
		t.Fatalf("expected task counters persisted, got %+v", productivityEntry)
	}
}

func TestDashboardDefaultsWithNoData(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, user := registerTestUser(t, app, "empty-dashboard@example.com", "StrongPass1", "Empty")

	response := doJSON(t, app, http.MethodGet, "/api/wellness/dashboard", token, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var dashboard services.WellnessDashboard
	decodeBody(t, response.Body, &dashboard)

	if dashboard.UserID != user.ID {
		t.Fatalf("expected dashboard for %s, got %s", user.ID, dashboard.UserID)
	}
	if dashboard.DateRange != "Last 30 days" {
		t.Fatalf("unexpected date_range %q", dashboard.DateRange)
	}
	if dashboard.HabitCompletionRate != 0 {
		t.Fatalf("expected 0%% completion, got %v", dashboard.HabitCompletionRate)
	}
	if dashboard.MoodAverage != 3 || dashboard.StressAverage != 3 || dashboard.ProductivityAverage != 5 {
		t.Fatalf("expected default averages 3/3/5, got %v/%v/%v",
			dashboard.MoodAverage, dashboard.StressAverage, dashboard.ProductivityAverage)
	}
	// 0.30*0 + 0.30*(3/5) + 0.20*((6-3)/5) + 0.20*(5/10) = 0.40
	if math.Abs(dashboard.WellnessScore-40.0) > 1e-9 {
		t.Fatalf("expected wellness_score 40.0 from defaults, got %v", dashboard.WellnessScore)
	}
	if dashboard.StreakCount != 0 {
		t.Fatalf("expected streak_count 0, got %d", dashboard.StreakCount)
	}
	if dashboard.ActiveChallenges != 0 {
		t.Fatalf("expected active_challenges 0, got %d", dashboard.ActiveChallenges)
	}
}

func TestDashboardAggregatesWindow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "dashboard@example.com", "StrongPass1", "Dashboard")

	created := doJSON(t, app, http.MethodPost, "/api/habits", token, map[string]any{
		"name":     "Stretch",
		"category": "exercise",
	})
	var habit models.Habit
	decodeBody(t, created.Body, &habit)
	created.Body.Close()

	// Three completed out of four check-ins: 75% completion, streak 3.
	for _, completed := range []bool{true, true, true, false} {
		checkIn := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/checkin", token, map[string]any{
			"completed": completed,
		})
		checkIn.Body.Close()
	}

	for _, level := range []int{5, 3} {
		mood := doJSON(t, app, http.MethodPost, "/api/wellness/mood", token, map[string]any{
			"mood_level": level,
		})
		mood.Body.Close()
	}

	stress := doJSON(t, app, http.MethodPost, "/api/wellness/stress", token, map[string]any{
		"stress_level": 2,
	})
	stress.Body.Close()

	productivity := doJSON(t, app, http.MethodPost, "/api/wellness/productivity", token, map[string]any{
		"productivity_score": 7,
	})
	productivity.Body.Close()

	response := doJSON(t, app, http.MethodGet, "/api/wellness/dashboard", token, nil)
	defer response.Body.Close()
	var dashboard services.WellnessDashboard
	decodeBody(t, response.Body, &dashboard)

	if dashboard.HabitCompletionRate != 75.0 {
		t.Fatalf("expected habit_completion_rate 75.0, got %v", dashboard.HabitCompletionRate)
	}
	if dashboard.MoodAverage != 4.0 {
		t.Fatalf("expected mood_average 4.0, got %v", dashboard.MoodAverage)
	}
	if dashboard.StressAverage != 2.0 {
		t.Fatalf("expected stress_average 2.0, got %v", dashboard.StressAverage)
	}
	if dashboard.ProductivityAverage != 7.0 {
		t.Fatalf("expected productivity_average 7.0, got %v", dashboard.ProductivityAverage)
	}
	if dashboard.StreakCount != 3 {
		t.Fatalf("expected streak_count 3, got %d", dashboard.StreakCount)
	}

	// 0.30*0.75 + 0.30*0.8 + 0.20*0.8 + 0.20*0.7 = 0.765
	if math.Abs(dashboard.WellnessScore-76.5) > 1e-9 {
		t.Fatalf("expected wellness_score 76.5, got %v", dashboard.WellnessScore)
	}
}
