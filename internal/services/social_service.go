package services

import (
	"fmt"

	"github.com/mindmatehq/mindmate/internal/models"
)

const (
	MaxUserPageSize   = 50
	MaxFriendPageSize = 100
)

type SocialUserRepository interface {
	ListOthers(excludeUserID string, limit int) ([]models.User, error)
	AddFriendEdges(userID string, friendID string) error
	ListFriends(userID string, limit int) ([]models.User, error)
}

type SocialService struct {
	users SocialUserRepository
}

func NewSocialService(users SocialUserRepository) *SocialService {
	return &SocialService{users: users}
}

func (service *SocialService) ListOtherUsers(userID string) ([]models.User, error) {
	return service.users.ListOthers(userID, MaxUserPageSize)
}

// AddFriend links both directions and is a no-op when the pair is already
// linked. A friend id that resolves to no user is accepted silently; the
// dangling edge never surfaces in a listing.
func (service *SocialService) AddFriend(userID string, friendID string) error {
	if err := service.users.AddFriendEdges(userID, friendID); err != nil {
		return fmt.Errorf("add friend edges: %w", err)
	}
	return nil
}

func (service *SocialService) ListFriends(userID string) ([]models.User, error) {
	return service.users.ListFriends(userID, MaxFriendPageSize)
}
