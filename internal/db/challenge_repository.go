package db

import (
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeRepository struct {
	database *gorm.DB
}

func NewChallengeRepository(database *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{database: database}
}

func (repo *ChallengeRepository) Create(challenge *models.Challenge) error {
	return repo.database.Create(challenge).Error
}

func (repo *ChallengeRepository) ListActive(limit int) ([]models.Challenge, error) {
	challenges := make([]models.Challenge, 0)
	if err := repo.database.
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

// AddParticipant is the set-add counterpart of AddFriendEdges: a single
// conflict-tolerant INSERT, idempotent and atomic. The challenge itself is
// not checked for existence.
func (repo *ChallengeRepository) AddParticipant(challengeID string, userID string) error {
	member := models.ChallengeParticipant{
		ChallengeID: challengeID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error
}

// ParticipantIDsFor loads membership for a batch of challenges so list
// responses can be assembled with one extra query.
func (repo *ChallengeRepository) ParticipantIDsFor(challengeIDs []string) (map[string][]string, error) {
	grouped := make(map[string][]string, len(challengeIDs))
	if len(challengeIDs) == 0 {
		return grouped, nil
	}

	members := make([]models.ChallengeParticipant, 0)
	if err := repo.database.
		Where("challenge_id IN ?", challengeIDs).
		Order("created_at ASC, user_id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	for _, member := range members {
		grouped[member.ChallengeID] = append(grouped[member.ChallengeID], member.UserID)
	}
	return grouped, nil
}

func (repo *ChallengeRepository) CountParticipants(challengeID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ChallengeParticipant{}).
		Where("challenge_id = ?", challengeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
