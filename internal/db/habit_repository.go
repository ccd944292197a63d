package db

import (
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) ListActiveByUser(userID string, limit int) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// FindOwned looks the habit up by id and owner regardless of its active
// flag: deactivated habits can still be checked in against.
func (repo *HabitRepository) FindOwned(habitID string, userID string) (models.Habit, bool, error) {
	var habit models.Habit
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) CreateCheckIn(checkIn *models.HabitCheckIn) error {
	return repo.database.Create(checkIn).Error
}

// IncrementStreak bumps current_streak in a single UPDATE so concurrent
// check-ins cannot lose increments. best_streak is left alone.
func (repo *HabitRepository) IncrementStreak(habitID string) error {
	return repo.database.Model(&models.Habit{}).
		Where("id = ?", habitID).
		UpdateColumn("current_streak", gorm.Expr("current_streak + ?", 1)).Error
}

func (repo *HabitRepository) ListCheckInsSince(userID string, since time.Time, limit int) ([]models.HabitCheckIn, error) {
	checkIns := make([]models.HabitCheckIn, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Limit(limit).
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (repo *HabitRepository) ListCheckInsByUser(userID string) ([]models.HabitCheckIn, error) {
	checkIns := make([]models.HabitCheckIn, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}
