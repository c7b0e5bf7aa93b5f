package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/book"
	"authorsite-backend/internal/domains/comment"
	"authorsite-backend/pkg/logger"
)

// moderationQueueLink is the deep link attached to every new-comment
// notification.
const moderationQueueLink = "/admin/comments"

// Dispatcher fans a notification event out to every elevated account.
// Implemented by the notification domain.
type Dispatcher interface {
	Dispatch(ctx context.Context, eventType, message string, link *string) error
}

type commentServiceImpl struct {
	repository comment.Repository
	books      book.Repository
	dispatcher Dispatcher
}

func NewCommentService(repo comment.Repository, books book.Repository, dispatcher Dispatcher) comment.Service {
	return &commentServiceImpl{
		repository: repo,
		books:      books,
		dispatcher: dispatcher,
	}
}

func (s *commentServiceImpl) Submit(ctx context.Context, req *comment.SubmitCommentRequest) (*comment.Comment, error) {
	if req == nil || req.BookID == uuid.Nil || req.Rating == 0 || strings.TrimSpace(req.Content) == "" {
		return nil, comment.ErrMissingFields
	}

	exists, err := s.books.ExistsByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, comment.ErrBookNotFound
	}

	if req.Rating < comment.MinRating || req.Rating > comment.MaxRating {
		return nil, comment.ErrInvalidRating
	}

	c := &comment.Comment{
		BookID:      req.BookID,
		Name:        req.Name,
		City:        req.City,
		Rating:      req.Rating,
		Content:     strings.TrimSpace(req.Content),
		IsAnonymous: req.IsAnonymous,
		Status:      comment.StatusPending,
	}
	// Anonymous submissions keep no identity, even if the client sent
	// one anyway.
	if c.IsAnonymous {
		c.Name = nil
		c.City = nil
	}

	if err := s.repository.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("comment submitted", map[string]interface{}{
		"comment_id": c.ID.String(),
		"book_id":    c.BookID.String(),
	})

	s.notifyModerators(ctx, c)

	return c, nil
}

// notifyModerators alerts elevated accounts about the pending comment.
// The submission already succeeded; failures here are logged only.
func (s *commentServiceImpl) notifyModerators(ctx context.Context, c *comment.Comment) {
	title, err := s.books.FindTitle(ctx, c.BookID)
	if err != nil {
		logger.Error("failed to resolve book title for comment notification", err, map[string]interface{}{
			"comment_id": c.ID.String(),
		})
		return
	}

	author := "Anonymous"
	if !c.IsAnonymous && c.Name != nil && *c.Name != "" {
		author = *c.Name
	}

	message := fmt.Sprintf("New comment from %s on '%s' is awaiting approval.", author, title)
	link := moderationQueueLink

	if err := s.dispatcher.Dispatch(ctx, "comment", message, &link); err != nil {
		logger.Error("failed to dispatch comment notification", err, map[string]interface{}{
			"comment_id": c.ID.String(),
		})
	}
}

func (s *commentServiceImpl) List(ctx context.Context, q *comment.ListCommentsQuery) ([]comment.CommentWithBook, error) {
	status, err := resolveStatus(q.Status)
	if err != nil {
		return nil, err
	}
	return s.repository.FindByStatus(ctx, status, q.Limit)
}

func (s *commentServiceImpl) Count(ctx context.Context, statusFilter string) (int, error) {
	status, err := resolveStatus(statusFilter)
	if err != nil {
		return 0, err
	}
	return s.repository.CountByStatus(ctx, status)
}

func (s *commentServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, statusValue string) (*comment.Comment, error) {
	status := comment.Status(statusValue)
	if !status.IsResolution() {
		return nil, comment.ErrInvalidStatus
	}

	c, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status != status {
		if err := s.repository.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		c.Status = status

		logger.Info("comment moderated", map[string]interface{}{
			"comment_id": c.ID.String(),
			"status":     string(status),
		})
	}

	return c, nil
}

func resolveStatus(filter string) (comment.Status, error) {
	if filter == "" {
		return comment.StatusApproved, nil
	}
	status := comment.Status(filter)
	if !status.IsValid() {
		return "", comment.ErrInvalidStatus
	}
	return status, nil
}
