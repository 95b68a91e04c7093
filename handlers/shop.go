package handlers

import (
	"net/http"
	"strconv"

	"coffeemap/models"
	"coffeemap/services/favorite"
	"coffeemap/services/ratelimit"
	"coffeemap/services/shop"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShopHandler serves the shop listing, detail and CRUD endpoints.
type ShopHandler struct {
	ShopService shop.ShopService
	Favorites   favorite.FavoriteService
	Limiter     *ratelimit.Limiter
}

// NewShopHandler creates a ShopHandler.
func NewShopHandler(shopService shop.ShopService, favorites favorite.FavoriteService, limiter *ratelimit.Limiter) *ShopHandler {
	return &ShopHandler{ShopService: shopService, Favorites: favorites, Limiter: limiter}
}

// favoriteIDsFor resolves the caller's favorite set from whichever home
// their favorites live in.
func (h *ShopHandler) favoriteIDsFor(usr *models.User) map[int64]bool {
	if usr == nil {
		return nil
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
		utils.GetLogger().Warn("failed to load favorite ids",
			zap.String("userID", usr.ID), zap.Error(err))
		return nil
	}
	return set
}

// ListShopsHandler handles GET /api/shops.
func (h *ShopHandler) ListShopsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	query := parseListQuery(c)
	query.FavoriteIDs = h.favoriteIDsFor(currentUser(c))

	result, err := h.ShopService.ListShops(query)
	if err != nil {
		logger.Error("Failed to list shops", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shops"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetShopHandler handles GET /api/shops/:id.
func (h *ShopHandler) GetShopHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	favoriteIDs := h.favoriteIDsFor(currentUser(c))
	result, err := h.ShopService.GetShop(id, parseLocation(c), favoriteIDs)
	if err != nil {
		logger.Error("Shop not found", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateShopHandler handles POST /api/shops.
func (h *ShopHandler) CreateShopHandler(c *gin.Context) {
	logger := utils.GetLogger()

	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to add a shop"})
		return
	}

	allowed, err := h.Limiter.Allow(c.Request.Context(), usr.ID, ratelimit.ActionShopCreate)
	if err != nil {
		logger.Error("Rate limit check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate limit"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Shop creation limit reached. Try again later."})
		return
	}

	var req shop.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.ShopService.CreateShop(req, usr)
	if err != nil {
		logger.Error("Failed to create shop", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateShopHandler handles PUT /api/shops/:id.
func (h *ShopHandler) UpdateShopHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	var req shop.CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.ShopService.UpdateShop(id, req, currentUser(c))
	if err != nil {
		logger.Error("Failed to update shop", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteShopHandler handles DELETE /api/shops/:id.
func (h *ShopHandler) DeleteShopHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return
	}

	if err := h.ShopService.DeleteShop(id, currentUser(c)); err != nil {
		logger.Error("Failed to delete shop", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted"})
}
