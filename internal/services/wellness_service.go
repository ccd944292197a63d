package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mindmatehq/mindmate/internal/models"
)

type WellnessRepository interface {
	CreateMood(entry *models.MoodEntry) error
	CreateStress(entry *models.StressEntry) error
	CreateProductivity(entry *models.ProductivityEntry) error
	ListMoodSince(userID string, since time.Time, limit int) ([]models.MoodEntry, error)
	ListStressSince(userID string, since time.Time, limit int) ([]models.StressEntry, error)
	ListProductivitySince(userID string, since time.Time, limit int) ([]models.ProductivityEntry, error)
}

type WellnessService struct {
	entries WellnessRepository
}

func NewWellnessService(entries WellnessRepository) *WellnessService {
	return &WellnessService{entries: entries}
}

func (service *WellnessService) LogMood(userID string, level int, notes *string) (models.MoodEntry, error) {
	entry := models.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		MoodLevel: level,
		Notes:     notes,
		Date:      time.Now(),
	}
	if err := service.entries.CreateMood(&entry); err != nil {
		return models.MoodEntry{}, fmt.Errorf("record mood entry: %w", err)
	}
	return entry, nil
}

func (service *WellnessService) LogStress(userID string, level int, triggers []string, strategies []string, notes *string) (models.StressEntry, error) {
	entry := models.StressEntry{
		ID:               uuid.NewString(),
		UserID:           userID,
		StressLevel:      level,
		Triggers:         triggers,
		CopingStrategies: strategies,
		Notes:            notes,
		Date:             time.Now(),
	}
	if err := service.entries.CreateStress(&entry); err != nil {
		return models.StressEntry{}, fmt.Errorf("record stress entry: %w", err)
	}
	return entry, nil
}

func (service *WellnessService) LogProductivity(userID string, score int, tasksCompleted int, focusMinutes int, notes *string) (models.ProductivityEntry, error) {
	entry := models.ProductivityEntry{
		ID:                uuid.NewString(),
		UserID:            userID,
		ProductivityScore: score,
		TasksCompleted:    tasksCompleted,
		FocusTimeMinutes:  focusMinutes,
		Notes:             notes,
		Date:              time.Now(),
	}
	if err := service.entries.CreateProductivity(&entry); err != nil {
		return models.ProductivityEntry{}, fmt.Errorf("record productivity entry: %w", err)
	}
	return entry, nil
}
