package db

import (
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) ListOthers(excludeUserID string, limit int) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("id <> ?", excludeUserID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddFriendEdges writes both directions of the symmetric relation in one
// statement. ON CONFLICT DO NOTHING on the composite key makes the call
// idempotent without a prior read, matching an atomic set-add.
func (repo *UserRepository) AddFriendEdges(userID string, friendID string) error {
	now := time.Now()
	edges := []models.Friendship{
		{UserID: userID, FriendID: friendID, CreatedAt: now},
		{UserID: friendID, FriendID: userID, CreatedAt: now},
	}
	return repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error
}

// ListFriends resolves friend edges to user rows. Edges pointing at ids
// that never existed resolve to nothing, so they stay invisible here.
func (repo *UserRepository) ListFriends(userID string, limit int) ([]models.User, error) {
	friends := make([]models.User, 0)
	if err := repo.database.
		Select("users.*").
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Order("users.created_at ASC, users.id ASC").
		Limit(limit).
		Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

func (repo *UserRepository) CountFriendEdges(userID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
