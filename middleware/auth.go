package middleware

import (
	"net/http"
	"strings"

	userRepo "coffeemap/database/repository/user"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextUser   = "currentUser"
)

// resolveUser validates the bearer token, checks that the session is
// still active and loads the user. It returns an empty ID when the
// request carries no usable credentials.
func resolveUser(c *gin.Context, repo userRepo.UserRepository) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", false
	}

	userID, err := utils.ExtractIDFromToken(tokenString)
	if err != nil || userID == "" {
		return "", false
	}

	// Revoked or expired sessions fail even when the JWT itself is
	// still valid.
	sessionUser, err := utils.SessionUserID(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
	if err != nil || sessionUser != userID {
		return "", false
	}

	usr, err := repo.GetByID(userID)
	if err != nil {
		return "", false
	}

	c.Set(ContextUserID, userID)
	c.Set(ContextUser, usr)
	return userID, true
}

// JWTAuthMiddleware requires a valid, unrevoked session token.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := resolveUser(c, repo); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when credentials are present
// but lets unauthenticated requests through. Handlers read the context
// keys to tier their behavior.
func OptionalAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveUser(c, repo)
		c.Next()
	}
}
