package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an unauthenticated reader annotation attached to one post.
// Comments are append-only: created by visitors, deleted by the
// operator, never edited.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PostID    uuid.UUID `json:"post_id" db:"post_id" gorm:"type:uuid;not null;index:idx_comment_post_id"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Comment) TableName() string { return "blog_comments" }
