package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mindmatehq/mindmate/internal/models"
)

const MaxChallengePageSize = 50

type ChallengeRepository interface {
	Create(challenge *models.Challenge) error
	ListActive(limit int) ([]models.Challenge, error)
	AddParticipant(challengeID string, userID string) error
	ParticipantIDsFor(challengeIDs []string) (map[string][]string, error)
}

type ChallengeService struct {
	challenges ChallengeRepository
}

func NewChallengeService(challenges ChallengeRepository) *ChallengeService {
	return &ChallengeService{challenges: challenges}
}

type ChallengeSpec struct {
	Name         string
	Description  string
	Category     string
	DurationDays int
}

func (service *ChallengeService) CreateChallenge(userID string, spec ChallengeSpec) (models.Challenge, error) {
	challenge := models.Challenge{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(spec.Name),
		Description:  spec.Description,
		Category:     spec.Category,
		DurationDays: spec.DurationDays,
		CreatedBy:    userID,
		IsActive:     true,
		CreatedAt:    time.Now(),
		Participants: []string{},
	}
	if err := service.challenges.Create(&challenge); err != nil {
		return models.Challenge{}, fmt.Errorf("create challenge: %w", err)
	}
	return challenge, nil
}

func (service *ChallengeService) ListChallenges() ([]models.Challenge, error) {
	challenges, err := service.challenges.ListActive(MaxChallengePageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(challenges))
	for _, challenge := range challenges {
		ids = append(ids, challenge.ID)
	}
	memberships, err := service.challenges.ParticipantIDsFor(ids)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}

	for index := range challenges {
		participants := memberships[challenges[index].ID]
		if participants == nil {
			participants = []string{}
		}
		challenges[index].Participants = participants
	}
	return challenges, nil
}

// JoinChallenge adds the caller to the participant set. Joining twice, or
// joining an id with no challenge behind it, changes nothing.
func (service *ChallengeService) JoinChallenge(challengeID string, userID string) error {
	if err := service.challenges.AddParticipant(challengeID, userID); err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}
