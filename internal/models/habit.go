package models

import "time"

const (
	CategoryExercise     = "exercise"
	CategoryNutrition    = "nutrition"
	CategoryMentalHealth = "mental_health"
	CategoryProductivity = "productivity"
	CategorySocial       = "social"
	CategorySleep        = "sleep"
	CategoryLearning     = "learning"
)

const DefaultTargetFrequency = 1

type Habit struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     *string   `json:"description,omitempty"`
	Category        string    `gorm:"not null" json:"category"`
	TargetFrequency int       `gorm:"not null" json:"target_frequency"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	CurrentStreak   int       `gorm:"not null" json:"current_streak"`
	BestStreak      int       `gorm:"not null" json:"best_streak"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

type HabitCheckIn struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	HabitID   string    `gorm:"not null;index" json:"habit_id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Completed bool      `gorm:"not null" json:"completed"`
	Notes     *string   `json:"notes,omitempty"`
	Date      time.Time `gorm:"not null;index" json:"date"`
}
