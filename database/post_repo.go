package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aargomedo/astracore-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts ordered newest first by creation timestamp.
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID, or (nil, nil) when it does not exist.
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post. The backend assigns ID and creation timestamp.
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update rewrites every field of an existing post except the identifier
// and the creation timestamp.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(post).Error
}

// Delete removes a post by id. Comments are left untouched.
func (r *PostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}
