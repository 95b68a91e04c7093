package handlers

import (
	"net/http"
	"strconv"

	"coffeemap/services/favorite"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FavoriteHandler serves favorite toggle and migration endpoints.
type FavoriteHandler struct {
	Favorites favorite.FavoriteService
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(favorites favorite.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites}
}

// ListFavoritesHandler handles GET /api/favorites.
func (h *FavoriteHandler) ListFavoritesHandler(c *gin.Context) {
	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to use favorites"})
		return
	}

	var (
		set map[int64]bool
		err error
	)
	if usr.IsAnonymous {
		set, err = h.Favorites.AnonFavoriteIDs(usr.ID)
	} else {
		set, err = h.Favorites.FavoriteIDs(usr.ID)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list favorites", zap.String("userID", usr.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	c.JSON(http.StatusOK, gin.H{"shop_ids": ids})
}

// setFavorite toggles a favorite for the caller in whichever home
// their favorites live in.
func (h *FavoriteHandler) setFavorite(c *gin.Context, on bool) {
	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to use favorites"})
		return
	}

	shopID, err := strconv.ParseInt(c.Param("shopID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	if usr.IsAnonymous {
		err = h.Favorites.SetAnonFavorite(usr.ID, shopID, on)
	} else {
		err = h.Favorites.SetFavorite(usr.ID, shopID, on)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to toggle favorite",
			zap.String("userID", usr.ID), zap.Int64("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop_id": shopID, "is_favorite": on})
}

// AddFavoriteHandler handles PUT /api/favorites/:shopID.
func (h *FavoriteHandler) AddFavoriteHandler(c *gin.Context) {
	h.setFavorite(c, true)
}

// RemoveFavoriteHandler handles DELETE /api/favorites/:shopID.
func (h *FavoriteHandler) RemoveFavoriteHandler(c *gin.Context) {
	h.setFavorite(c, false)
}

// MigrateFavoritesHandler handles POST /api/favorites/migrate. It
// copies a previous anonymous session's favorites into the signed-in
// account; the anonymous bucket survives any failure.
func (h *FavoriteHandler) MigrateFavoritesHandler(c *gin.Context) {
	usr := currentUser(c)
	if usr == nil || usr.IsAnonymous {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in with an account to migrate favorites"})
		return
	}

	var req struct {
		AnonID string `json:"anon_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	migrated, err := h.Favorites.Migrate(usr.ID, req.AnonID)
	if err != nil {
		utils.GetLogger().Error("Favorite migration failed",
			zap.String("userID", usr.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Migration failed; local favorites kept"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrated": migrated})
}
