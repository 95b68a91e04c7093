// models/user.go
package models

import "time"

// User roles, in increasing order of privilege.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Security levels derived from role and anonymity.
const (
	SecurityAnonymous = 0
	SecurityUser      = 1
	SecurityModerator = 2
	SecurityAdmin     = 3
)

// User represents a directory user. The ID is the identity issued by
// the auth provider (Google subject) or a locally generated UUID for
// anonymous sessions.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Nickname    string    `bson:"nickname" json:"nickname"`
	AvatarURL   string    `bson:"avatarUrl,omitempty" json:"avatar_url,omitempty"`
	Role        string    `bson:"role" json:"role"`
	IsAnonymous bool      `bson:"isAnonymous" json:"is_anonymous"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updated_at"`
}

// SecurityLevel derives the effective level from role and anonymity.
func (u *User) SecurityLevel() int {
	if u.IsAnonymous {
		return SecurityAnonymous
	}
	switch u.Role {
	case RoleAdmin:
		return SecurityAdmin
	case RoleModerator:
		return SecurityModerator
	default:
		return SecurityUser
	}
}

// CanModerate reports whether the user may act on other users' content.
func (u *User) CanModerate() bool {
	return u.SecurityLevel() >= SecurityModerator
}

// UserUpdateRequest carries the fields a user may change on their own
// profile.
type UserUpdateRequest struct {
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
