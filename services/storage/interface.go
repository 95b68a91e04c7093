package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for shop image storage.
type StorageService interface {
	// UploadShopImage uploads a local file into the shop image folder
	// and returns the public URL plus the permanent identifier used for
	// later deletion.
	UploadShopImage(ctx context.Context, localFilePath string) (url, publicID string, err error)
	// DeleteImage removes an uploaded image by its permanent identifier.
	DeleteImage(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	folder    string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, folder string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
		folder:    folder,
	}
}
