package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindmatehq/mindmate/internal/models"
)

var ErrHabitNotFound = errors.New("habit not found")

// MaxHabitPageSize caps the habit listing the way the dashboard window
// queries are capped.
const MaxHabitPageSize = 100

type HabitRepository interface {
	Create(habit *models.Habit) error
	ListActiveByUser(userID string, limit int) ([]models.Habit, error)
	FindOwned(habitID string, userID string) (models.Habit, bool, error)
	CreateCheckIn(checkIn *models.HabitCheckIn) error
	IncrementStreak(habitID string) error
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

type HabitSpec struct {
	Name            string
	Description     *string
	Category        string
	TargetFrequency int
	IsActive        bool
}

func (service *HabitService) CreateHabit(userID string, spec HabitSpec) (models.Habit, error) {
	targetFrequency := spec.TargetFrequency
	if targetFrequency <= 0 {
		targetFrequency = models.DefaultTargetFrequency
	}

	habit := models.Habit{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            strings.TrimSpace(spec.Name),
		Description:     spec.Description,
		Category:        spec.Category,
		TargetFrequency: targetFrequency,
		IsActive:        spec.IsActive,
		CurrentStreak:   0,
		BestStreak:      0,
		CreatedAt:       time.Now(),
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, fmt.Errorf("create habit: %w", err)
	}
	return habit, nil
}

func (service *HabitService) ListHabits(userID string) ([]models.Habit, error) {
	return service.habits.ListActiveByUser(userID, MaxHabitPageSize)
}

// CheckIn records the event unconditionally and bumps current_streak when
// the habit was completed. There is no same-day dedup and no gap reset;
// best_streak is never touched on this path.
func (service *HabitService) CheckIn(userID string, habitID string, completed bool, notes *string) (models.HabitCheckIn, error) {
	_, found, err := service.habits.FindOwned(habitID, userID)
	if err != nil {
		return models.HabitCheckIn{}, fmt.Errorf("look up habit: %w", err)
	}
	if !found {
		return models.HabitCheckIn{}, ErrHabitNotFound
	}

	checkIn := models.HabitCheckIn{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		UserID:    userID,
		Completed: completed,
		Notes:     notes,
		Date:      time.Now(),
	}
	if err := service.habits.CreateCheckIn(&checkIn); err != nil {
		return models.HabitCheckIn{}, fmt.Errorf("record check-in: %w", err)
	}

	if completed {
		if err := service.habits.IncrementStreak(habitID); err != nil {
			return models.HabitCheckIn{}, fmt.Errorf("increment streak: %w", err)
		}
	}

	return checkIn, nil
}
