package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aargomedo/astracore-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByPost returns the comments for one post ordered by creation
// timestamp, ascending (conversation order) or descending (moderation
// order). The post is not required to exist: comments orphaned by a
// post delete remain readable.
func (r *CommentRepo) FindByPost(postID uuid.UUID, ascending bool) ([]*models.Comment, error) {
	order := "created_at DESC"
	if ascending {
		order = "created_at ASC"
	}
	var comments []*models.Comment
	err := r.db.Where("post_id = ?", postID).Order(order).Find(&comments).Error
	return comments, err
}

// Add inserts a new comment. The backend assigns ID and creation
// timestamp; comments are never updated afterwards.
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment by id.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}
