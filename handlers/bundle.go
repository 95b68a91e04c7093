// File: coffeemap/handlers/bundle.go
package handlers

import (
	userRepoPkg "coffeemap/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Shop endpoints
	ListShopsHandler  gin.HandlerFunc
	GetShopHandler    gin.HandlerFunc
	CreateShopHandler gin.HandlerFunc
	UpdateShopHandler gin.HandlerFunc
	DeleteShopHandler gin.HandlerFunc

	// Review endpoints
	ListReviewsHandler           gin.HandlerFunc
	CreateReviewHandler          gin.HandlerFunc
	ListDetailedReviewsHandler   gin.HandlerFunc
	CreateDetailedReviewHandler  gin.HandlerFunc
	ApproveDetailedReviewHandler gin.HandlerFunc

	// Image endpoints
	UploadShopImageHandler gin.HandlerFunc
	DeleteShopImageHandler gin.HandlerFunc

	// Favorite endpoints
	ListFavoritesHandler    gin.HandlerFunc
	AddFavoriteHandler      gin.HandlerFunc
	RemoveFavoriteHandler   gin.HandlerFunc
	MigrateFavoritesHandler gin.HandlerFunc

	// Auth and profile endpoints
	GoogleSignInHandler    gin.HandlerFunc
	AnonymousSignInHandler gin.HandlerFunc
	OAuthCallbackHandler   gin.HandlerFunc
	SessionHandler         gin.HandlerFunc
	SignOutHandler         gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc

	// Admin endpoints
	GetUserHandler    gin.HandlerFunc
	ListUsersHandler  gin.HandlerFunc
	DeleteUserHandler gin.HandlerFunc
}
