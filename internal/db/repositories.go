package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Habits     *HabitRepository
	Wellness   *WellnessRepository
	Challenges *ChallengeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Habits:     NewHabitRepository(database),
		Wellness:   NewWellnessRepository(database),
		Challenges: NewChallengeRepository(database),
	}
}
