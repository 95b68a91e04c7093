package userRepo

import "coffeemap/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its provider-issued ID.
	GetByID(id string) (*models.User, error)
	// Upsert inserts the user on first sign-in or refreshes the
	// existing document, keyed by ID.
	Upsert(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
}
