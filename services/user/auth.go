package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coffeemap/models"
	"coffeemap/utils"
)

const sessionTTL = 24 * time.Hour

// SignInWithGoogle verifies the ID token, upserts the user record and
// issues a session token. A pending anonymous session's favorites are
// migrated as a side effect; a failed migration is logged but never
// fails the sign-in, the anonymous bucket stays intact for a retry.
func (s *DefaultUserService) SignInWithGoogle(idToken, anonID string) (*AuthResponse, error) {
	ident, err := s.verifyGoogleToken(idToken)
	if err != nil {
		return nil, err
	}

	usr := &models.User{
		ID:          "google:" + ident.Subject,
		Email:       ident.Email,
		Nickname:    ident.Name,
		AvatarURL:   ident.Picture,
		Role:        models.RoleUser,
		IsAnonymous: false,
	}
	if usr.Nickname == "" {
		usr.Nickname = "Coffee Lover"
	}

	// Preserve an elevated role across re-sign-ins.
	if existing, err := s.Repo.GetByID(usr.ID); err == nil && existing.Role != "" {
		usr.Role = existing.Role
	}

	if err := s.Repo.Upsert(usr); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	if anonID != "" && s.Favorites != nil {
		if _, err := s.Favorites.Migrate(usr.ID, anonID); err != nil {
			utils.GetLogger().Error("favorite migration failed on sign-in",
				zap.String("userID", usr.ID), zap.Error(err))
		}
	}

	return s.issueSession(usr)
}

// SignInAnonymously creates an ephemeral identity and a session for it.
func (s *DefaultUserService) SignInAnonymously() (*AuthResponse, error) {
	usr := &models.User{
		ID:          "anon:" + uuid.NewString(),
		Nickname:    "Guest",
		Role:        models.RoleUser,
		IsAnonymous: true,
	}
	if err := s.Repo.Upsert(usr); err != nil {
		return nil, fmt.Errorf("failed to persist anonymous user: %w", err)
	}
	return s.issueSession(usr)
}

// SignOut revokes the session token.
func (s *DefaultUserService) SignOut(token string) error {
	return utils.DeleteSession(utils.GetAuthCacheClient(), utils.HashToken(token))
}

func (s *DefaultUserService) issueSession(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.IsAnonymous, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := utils.SaveSession(utils.GetAuthCacheClient(), utils.HashToken(token), usr.ID); err != nil {
		return nil, err
	}
	return &AuthResponse{ID: usr.ID, Token: token, User: usr}, nil
}
