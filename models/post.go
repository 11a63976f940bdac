package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post represents a bilingual archive entry. Spanish is the primary
// language; the *EN fields may be empty and fall back to Spanish for
// display.
type Post struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string                      `json:"title" db:"title" gorm:"type:text;not null"`
	TitleEN       string                      `json:"title_en" db:"title_en" gorm:"column:title_en;type:text;not null;default:''"`
	Summary       string                      `json:"summary" db:"summary" gorm:"type:text;not null;default:''"`
	SummaryEN     string                      `json:"summary_en" db:"summary_en" gorm:"column:summary_en;type:text;not null;default:''"`
	Content       string                      `json:"content" db:"content" gorm:"type:text;not null"`
	ContentEN     string                      `json:"content_en" db:"content_en" gorm:"column:content_en;type:text;not null;default:''"`
	MainImage     string                      `json:"main_image" db:"main_image" gorm:"type:text;not null;default:''"`
	GalleryImages datatypes.JSONSlice[string] `json:"gallery_images,omitempty" db:"gallery_images"`
	Tags          datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	Author        string                      `json:"author" db:"author" gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (Post) TableName() string { return "posts" }

// LocalizedTitle returns the title for lang, falling back to the
// primary-language title when the English one is empty.
func (p Post) LocalizedTitle(lang string) string {
	if lang == "EN" && p.TitleEN != "" {
		return p.TitleEN
	}
	return p.Title
}

func (p Post) LocalizedSummary(lang string) string {
	if lang == "EN" && p.SummaryEN != "" {
		return p.SummaryEN
	}
	return p.Summary
}

func (p Post) LocalizedContent(lang string) string {
	if lang == "EN" && p.ContentEN != "" {
		return p.ContentEN
	}
	return p.Content
}
