package handlers

import (
	"net/http"
	"strconv"

	"coffeemap/services/ratelimit"
	"coffeemap/services/review"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
	Limiter       *ratelimit.Limiter
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(reviewService review.ReviewService, limiter *ratelimit.Limiter) *ReviewHandler {
	return &ReviewHandler{ReviewService: reviewService, Limiter: limiter}
}

func shopIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shop id"})
		return 0, false
	}
	return id, true
}

// checkReviewLimit applies the per-user review counter. Callers without
// a session are keyed by client IP so drive-by submissions are still
// shaped.
func (h *ReviewHandler) checkReviewLimit(c *gin.Context) bool {
	key := c.ClientIP()
	if usr := currentUser(c); usr != nil {
		key = usr.ID
	}

	allowed, err := h.Limiter.Allow(c.Request.Context(), key, ratelimit.ActionReviewCreate)
	if err != nil {
		utils.GetLogger().Error("Rate limit check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate limit"})
		return false
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Review limit reached. Try again later."})
		return false
	}
	return true
}

// ListReviewsHandler handles GET /api/shops/:id/reviews.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	reviews, err := h.ReviewService.ListByShop(shopID)
	if err != nil {
		utils.GetLogger().Error("Failed to list reviews", zap.Int64("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler handles POST /api/shops/:id/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}
	if !h.checkReviewLimit(c) {
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ShopID = shopID

	created, err := h.ReviewService.CreateReview(req, currentUser(c))
	if err != nil {
		utils.GetLogger().Error("Failed to create review", zap.Int64("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListDetailedReviewsHandler handles GET /api/shops/:id/detailed-reviews.
func (h *ReviewHandler) ListDetailedReviewsHandler(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	reviews, err := h.ReviewService.ListDetailedByShop(shopID, currentUser(c))
	if err != nil {
		utils.GetLogger().Error("Failed to list detailed reviews", zap.Int64("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load detailed reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateDetailedReviewHandler handles POST /api/shops/:id/detailed-reviews.
func (h *ReviewHandler) CreateDetailedReviewHandler(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}
	if !h.checkReviewLimit(c) {
		return
	}

	var req review.CreateDetailedReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ShopID = shopID

	created, err := h.ReviewService.CreateDetailedReview(req, currentUser(c))
	if err != nil {
		utils.GetLogger().Error("Failed to create detailed review", zap.Int64("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ApproveDetailedReviewHandler handles
// POST /api/shops/:id/detailed-reviews/:reviewID/approve.
func (h *ReviewHandler) ApproveDetailedReviewHandler(c *gin.Context) {
	reviewID := c.Param("reviewID")

	if err := h.ReviewService.ApproveDetailedReview(reviewID, currentUser(c)); err != nil {
		utils.GetLogger().Error("Failed to approve review", zap.String("reviewID", reviewID), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review approved"})
}
