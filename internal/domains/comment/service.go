package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for reader comments and
// their moderation.
type Service interface {
	// Submit validates and persists a new comment as pending, then
	// notifies moderators. Notification failures never fail the
	// submission.
	Submit(ctx context.Context, req *SubmitCommentRequest) (*Comment, error)

	// List returns comments in the given state, newest first, with
	// book titles. An empty status defaults to approved.
	List(ctx context.Context, q *ListCommentsQuery) ([]CommentWithBook, error)

	// Count returns the number of comments in the given state. An
	// empty status defaults to approved.
	Count(ctx context.Context, status string) (int, error)

	// UpdateStatus records a moderation verdict. Only approved and
	// rejected are accepted; repeating a verdict is a no-op success.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Comment, error)
}
