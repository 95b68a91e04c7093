package user

import (
	"fmt"
	"strings"

	"coffeemap/models"
)

// GetUserByID retrieves a user by its ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfile applies profile edits for the user themselves.
func (s *DefaultUserService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return nil, fmt.Errorf("nickname must not be empty")
	}
	if len(nickname) > 50 {
		return nil, fmt.Errorf("nickname must be at most 50 characters")
	}

	usr.Nickname = nickname
	usr.AvatarURL = req.AvatarURL
	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// DeleteUser removes a user account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	return s.Repo.Delete(userID)
}
