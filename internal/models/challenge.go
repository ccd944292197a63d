package models

import "time"

type Challenge struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"not null" json:"description"`
	Category     string    `gorm:"not null" json:"category"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	CreatedBy    string    `gorm:"not null;index" json:"created_by"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`

	// Participants is resolved from challenge_participants when the
	// challenge is read back; it is not a stored column.
	Participants []string `gorm:"-" json:"participants"`
}

// ChallengeParticipant mirrors Friendship: one membership edge with set
// semantics via the composite key.
type ChallengeParticipant struct {
	ChallengeID string `gorm:"primaryKey"`
	UserID      string `gorm:"primaryKey"`
	CreatedAt   time.Time
}
