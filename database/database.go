package database

import (
	"gorm.io/gorm"
)

// Database aggregates the repositories sharing one GORM instance
// against the hosted Postgres. No operation retries and nothing spans
// tables: a post delete and its orphaned comments are separate calls
// the caller chooses (or chooses not) to coordinate.
type Database struct {
	postRepo    *PostRepo
	commentRepo *CommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		postRepo:    NewPostRepo(db),
		commentRepo: NewCommentRepo(db),
	}
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}
