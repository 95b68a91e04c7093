package shopRepo

import "coffeemap/models"

// ShopRepository defines methods for shop data access.
type ShopRepository interface {
	// GetByID retrieves a shop by its numeric ID.
	GetByID(id int64) (*models.Shop, error)
	// GetAll retrieves the full shop list.
	GetAll() ([]models.Shop, error)
	// Create inserts a new shop document, assigning the next numeric ID.
	Create(shop *models.Shop) error
	// Update modifies an existing shop document.
	Update(shop *models.Shop) error
	// Delete removes a shop document by its ID.
	Delete(id int64) error
	// AddImage appends an image row to a shop.
	AddImage(shopID int64, image models.ShopImage) error
	// RemoveImage pulls an image row from a shop by image ID. It
	// returns the removed image so callers can clean up object storage.
	RemoveImage(shopID int64, imageID string) (*models.ShopImage, error)
}
