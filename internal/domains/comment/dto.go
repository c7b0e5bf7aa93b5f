package comment

import (
	"github.com/google/uuid"
)

// SubmitCommentRequest is the public review submission payload. Name
// and city are optional and are discarded when IsAnonymous is set.
//
// Field checks live in the service so their ordering (missing fields,
// then book existence, then rating bounds) stays in one place.
type SubmitCommentRequest struct {
	BookID      uuid.UUID `json:"book_id"`
	Name        *string   `json:"name,omitempty"`
	City        *string   `json:"city,omitempty"`
	Rating      float64   `json:"rating"`
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"is_anonymous"`
}

// UpdateStatusRequest is the moderation verdict payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListCommentsQuery filters the moderation queue and the public feed.
type ListCommentsQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}
