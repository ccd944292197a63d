package models

import "time"

type User struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	FullName           string    `gorm:"not null" json:"full_name"`
	Age                *int      `json:"age,omitempty"`
	Bio                *string   `json:"bio,omitempty"`
	ProfilePicture     *string   `json:"profile_picture,omitempty"`
	TotalWellnessScore float64   `gorm:"not null" json:"total_wellness_score"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}

// Friendship is one directed edge of the symmetric friend relation. The
// composite key gives set semantics: re-adding an existing friend conflicts
// on the key and is dropped.
type Friendship struct {
	UserID    string `gorm:"primaryKey"`
	FriendID  string `gorm:"primaryKey"`
	CreatedAt time.Time
}
