package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title      string    `json:"title"`
	CategoryID uuid.UUID `json:"category_id"`

	Year            *string `json:"year"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description"`
	Pages           *int    `json:"pages"`
	Publisher       *string `json:"publisher"`
	ISBN            *string `json:"isbn"`

	Status        string `json:"status"`
	CoverImageURL string `json:"cover_image_url"`

	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	SEOKeywords    *string `json:"seo_keywords"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(MinTitleLength, 200)),
		validation.Field(&r.CategoryID, validation.Required, validation.By(nonNilUUID)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, MaxDescriptionLength)),
		validation.Field(&r.Status, validation.Required, validation.In("draft", "published", "upcoming")),
		validation.Field(&r.CoverImageURL, validation.Required),
		validation.Field(&r.SEODescription, validation.Length(0, MaxSEODescriptionLen)),
	)
}

func nonNilUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return ErrMissingFields
	}
	return nil
}

// UpdateBookRequest carries a partial update; nil fields keep their
// stored value.
type UpdateBookRequest struct {
	Title      *string    `json:"title"`
	CategoryID *uuid.UUID `json:"category_id"`

	Year            *string `json:"year"`
	Description     *string `json:"description"`
	LongDescription *string `json:"long_description"`
	Pages           *int    `json:"pages"`
	Publisher       *string `json:"publisher"`
	ISBN            *string `json:"isbn"`

	Status        *string `json:"status"`
	CoverImageURL *string `json:"cover_image_url"`

	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	SEOKeywords    *string `json:"seo_keywords"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(MinTitleLength, 200)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, MaxDescriptionLength)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In("draft", "published", "upcoming")),
		validation.Field(&r.CoverImageURL, validation.NilOrNotEmpty),
		validation.Field(&r.SEODescription, validation.Length(0, MaxSEODescriptionLen)),
	)
}

// ListBooksQuery filters the public catalog listing.
type ListBooksQuery struct {
	CategoryID *uuid.UUID `form:"category_id"`
	Status     *string    `form:"status"`
	Limit      int        `form:"limit"`
}

// BookWithCategory annotates a book with its category name for
// listings.
type BookWithCategory struct {
	Book
	CategoryName string `json:"category_name"`
}
