package api

type registerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,min=0"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type habitInput struct {
	Name            string  `json:"name" validate:"required"`
	Description     *string `json:"description"`
	Category        string  `json:"category" validate:"required,oneof=exercise nutrition mental_health productivity social sleep learning"`
	TargetFrequency int     `json:"target_frequency" validate:"omitempty,min=1"`
	IsActive        *bool   `json:"is_active"`
}

type checkInInput struct {
	Completed *bool   `json:"completed"`
	Notes     *string `json:"notes"`
}

type moodInput struct {
	MoodLevel int     `json:"mood_level" validate:"required,min=1,max=5"`
	Notes     *string `json:"notes"`
}

type stressInput struct {
	StressLevel      int      `json:"stress_level" validate:"required,min=1,max=5"`
	Triggers         []string `json:"triggers"`
	CopingStrategies []string `json:"coping_strategies"`
	Notes            *string  `json:"notes"`
}

type productivityInput struct {
	ProductivityScore int     `json:"productivity_score" validate:"required,min=1,max=10"`
	TasksCompleted    int     `json:"tasks_completed" validate:"omitempty,min=0"`
	FocusTimeMinutes  int     `json:"focus_time_minutes" validate:"omitempty,min=0"`
	Notes             *string `json:"notes"`
}

type challengeInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=exercise nutrition mental_health productivity social sleep learning"`
	DurationDays int    `json:"duration_days" validate:"required,min=1"`
}
