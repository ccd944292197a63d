package db

import (
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
	"gorm.io/gorm"
)

type WellnessRepository struct {
	database *gorm.DB
}

func NewWellnessRepository(database *gorm.DB) *WellnessRepository {
	return &WellnessRepository{database: database}
}

func (repo *WellnessRepository) CreateMood(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) CreateStress(entry *models.StressEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) CreateProductivity(entry *models.ProductivityEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) ListMoodSince(userID string, since time.Time, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) ListStressSince(userID string, since time.Time, limit int) ([]models.StressEntry, error) {
	entries := make([]models.StressEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) ListProductivitySince(userID string, since time.Time, limit int) ([]models.ProductivityEntry, error) {
	entries := make([]models.ProductivityEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) ListMoodByUser(userID string) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) ListStressByUser(userID string) ([]models.StressEntry, error) {
	entries := make([]models.StressEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) ListProductivityByUser(userID string) ([]models.ProductivityEntry, error) {
	entries := make([]models.ProductivityEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
