package user

import (
	userRepo "coffeemap/database/repository/user"
	"coffeemap/models"
	"coffeemap/services/favorite"
)

// AuthResponse contains the signed-in user and their session token.
type AuthResponse struct {
	ID    string       `json:"id"`
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService defines business logic for identity and session
// operations.
type UserService interface {
	// SignInWithGoogle verifies a Google ID token, upserts the user and
	// issues a session token. When anonID names a previous anonymous
	// session, its favorites are migrated into the account.
	SignInWithGoogle(idToken, anonID string) (*AuthResponse, error)
	// SignInAnonymously creates an ephemeral identity and issues a
	// session token for it.
	SignInAnonymously() (*AuthResponse, error)
	// GetUserByID retrieves a user by its ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateProfile applies profile edits for the user themselves.
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	// SignOut revokes the given session token.
	SignOut(token string) error
	// GetAllUsers retrieves all users. Admin surface.
	GetAllUsers() ([]models.User, error)
	// DeleteUser removes a user account. Admin surface.
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Favorites favorite.FavoriteService
	// GoogleClientID is the OAuth audience expected on ID tokens.
	GoogleClientID string
}
