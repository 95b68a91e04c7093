package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadShopImage uploads a file to Cloudinary into the shop image
// folder and returns its public URL and permanent identifier.
func (s *StorageServiceImpl) UploadShopImage(ctx context.Context, localFilePath string) (string, string, error) {
	uploadParams := uploader.UploadParams{
		Folder: s.folder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	return url, result.PublicID, nil
}

// DeleteImage deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
