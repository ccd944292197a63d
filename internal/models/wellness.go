package models

import "time"

// Bounded scales for the append-only wellness entries.
const (
	MoodLevelMin = 1
	MoodLevelMax = 5

	StressLevelMin = 1
	StressLevelMax = 5

	ProductivityScoreMin = 1
	ProductivityScoreMax = 10
)

type MoodEntry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	MoodLevel int       `gorm:"not null" json:"mood_level"`
	Notes     *string   `json:"notes,omitempty"`
	Date      time.Time `gorm:"not null;index" json:"date"`
}

type StressEntry struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	UserID           string    `gorm:"not null;index" json:"user_id"`
	StressLevel      int       `gorm:"not null" json:"stress_level"`
	Triggers         []string  `gorm:"serializer:json" json:"triggers,omitempty"`
	CopingStrategies []string  `gorm:"serializer:json" json:"coping_strategies,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	Date             time.Time `gorm:"not null;index" json:"date"`
}

type ProductivityEntry struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"not null;index" json:"user_id"`
	ProductivityScore int       `gorm:"not null" json:"productivity_score"`
	TasksCompleted    int       `gorm:"not null" json:"tasks_completed"`
	FocusTimeMinutes  int       `gorm:"not null" json:"focus_time_minutes"`
	Notes             *string   `json:"notes,omitempty"`
	Date              time.Time `gorm:"not null;index" json:"date"`
}
