package repositories

import "blogpress/app/models"

// PostRepository defines the interface for post data access. Comments live
// inside their post and are written back through Update.
//
// Implementations hand out copies: mutating a returned post has no effect
// until it is passed to Update.
type PostRepository interface {
	// Create assigns the next ID to post and stores it.
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	// List returns every post in insertion order.
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	Close() error
}
