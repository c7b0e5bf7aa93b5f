package comment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the moderation state of a comment.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is a known moderation state.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsResolution reports whether s is a state a moderator may assign.
// Comments are born pending; moderation only moves them to approved
// or rejected.
func (s Status) IsResolution() bool {
	return s == StatusApproved || s == StatusRejected
}

// Rating bounds, in half-star steps.
const (
	MinRating = 0.5
	MaxRating = 5.0
)

// Comment is a reader review of a book. Name and city are absent when
// the reader submitted anonymously.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	BookID      uuid.UUID `json:"book_id"`
	Name        *string   `json:"name,omitempty"`
	City        *string   `json:"city,omitempty"`
	Rating      float64   `json:"rating"`
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"is_anonymous"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentWithBook annotates a comment with its book's title for the
// moderation queue.
type CommentWithBook struct {
	Comment
	BookTitle string `json:"book_title"`
}
