package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	shopRepo "coffeemap/database/repository/shop"
	"coffeemap/models"
	"coffeemap/services/storage"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxImageSize is the largest upload accepted, in bytes.
const maxImageSize = 10 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// StorageHandler serves shop image upload and deletion.
type StorageHandler struct {
	Storage  storage.StorageService
	ShopRepo shopRepo.ShopRepository
}

func NewStorageHandler(storageService storage.StorageService, repo shopRepo.ShopRepository) *StorageHandler {
	return &StorageHandler{Storage: storageService, ShopRepo: repo}
}

// UploadShopImageHandler handles POST /api/shops/:id/images. The image
// arrives as multipart form field "image", is staged to a temp file and
// uploaded to object storage before the shop document is updated.
func (h *StorageHandler) UploadShopImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to upload images"})
		return
	}

	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}
	if _, err := h.ShopRepo.GetByID(shopID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 10MB limit"})
		return
	}
	ext := filepath.Ext(file.Filename)
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.New().String(), ext))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, publicID, err := h.Storage.UploadShopImage(c.Request.Context(), tmpPath)
	if err != nil {
		logger.Error("Image upload failed", zap.Int64("shopID", shopID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	image := models.ShopImage{
		ID:         uuid.New().String(),
		ShopID:     shopID,
		URL:        url,
		PublicID:   publicID,
		UploadedBy: usr.ID,
		CreatedAt:  time.Now(),
	}
	if err := h.ShopRepo.AddImage(shopID, image); err != nil {
		logger.Error("Failed to attach image to shop", zap.Int64("shopID", shopID), zap.Error(err))
		// Best effort: don't leave an orphan in object storage.
		if delErr := h.Storage.DeleteImage(c.Request.Context(), publicID); delErr != nil {
			logger.Warn("Failed to clean up orphaned image", zap.String("publicID", publicID), zap.Error(delErr))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteShopImageHandler handles DELETE /api/shops/:id/images/:imageId.
// Moderators or the uploader may remove an image.
func (h *StorageHandler) DeleteShopImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to delete images"})
		return
	}

	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}
	imageID := c.Param("imageId")

	shop, err := h.ShopRepo.GetByID(shopID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found"})
		return
	}

	var target *models.ShopImage
	for i := range shop.Images {
		if shop.Images[i].ID == imageID {
			target = &shop.Images[i]
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if target.UploadedBy != usr.ID && !usr.CanModerate() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete this image"})
		return
	}

	removed, err := h.ShopRepo.RemoveImage(shopID, imageID)
	if err != nil {
		logger.Error("Failed to remove image", zap.Int64("shopID", shopID), zap.String("imageID", imageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	// Object storage cleanup is best effort; the record is already gone.
	if h.Storage != nil && removed != nil && removed.PublicID != "" {
		if err := h.Storage.DeleteImage(c.Request.Context(), removed.PublicID); err != nil {
			logger.Warn("Failed to delete stored image", zap.String("publicID", removed.PublicID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
