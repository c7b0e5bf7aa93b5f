package book

import (
	"time"

	"github.com/google/uuid"
)

// Status is the publication state of a book.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusUpcoming  Status = "upcoming"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusUpcoming:
		return true
	}
	return false
}

// Book is a catalog entry on the author's site.
type Book struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	CategoryID uuid.UUID `json:"category_id"`

	Year            *string `json:"year,omitempty"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description,omitempty"`
	Pages           *int    `json:"pages,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`

	Status        Status `json:"status"`
	CoverImageURL string `json:"cover_image_url"`

	SEOTitle       *string `json:"seo_title,omitempty"`
	SEODescription *string `json:"seo_description,omitempty"`
	SEOKeywords    *string `json:"seo_keywords,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Content limits mirrored by the database schema.
const (
	MinTitleLength       = 2
	MaxDescriptionLength = 150
	MaxSEODescriptionLen = 160
)
