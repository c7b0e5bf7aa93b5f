package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/book"
	"authorsite-backend/internal/domains/category"
	"authorsite-backend/pkg/logger"
)

type bookServiceImpl struct {
	repository   book.Repository
	categoryRepo category.Repository
}

func NewBookService(repo book.Repository, categoryRepo category.Repository) book.Service {
	return &bookServiceImpl{
		repository:   repo,
		categoryRepo: categoryRepo,
	}
}

func (s *bookServiceImpl) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if req == nil || req.Title == "" || req.CategoryID == uuid.Nil ||
		req.Description == "" || req.CoverImageURL == "" {
		return nil, book.ErrMissingFields
	}

	title := strings.TrimSpace(req.Title)
	if len(title) < book.MinTitleLength {
		return nil, book.ErrTitleTooShort
	}
	if len(req.Description) > book.MaxDescriptionLength {
		return nil, book.ErrDescriptionTooLong
	}

	status := book.Status(req.Status)
	if status == "" {
		status = book.StatusDraft
	}
	if !status.IsValid() {
		return nil, book.ErrInvalidStatus
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, book.ErrCategoryNotFound
	}

	b := &book.Book{
		Title:           title,
		CategoryID:      req.CategoryID,
		Year:            req.Year,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Pages:           req.Pages,
		Publisher:       req.Publisher,
		ISBN:            req.ISBN,
		Status:          status,
		CoverImageURL:   req.CoverImageURL,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
		SEOKeywords:     req.SEOKeywords,
	}

	if err := s.repository.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"book_id": b.ID.String(),
		"title":   b.Title,
		"status":  string(b.Status),
	})

	return b, nil
}

func (s *bookServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *bookServiceImpl) List(ctx context.Context, q *book.ListBooksQuery) ([]book.BookWithCategory, error) {
	if q == nil {
		q = &book.ListBooksQuery{}
	}
	if q.Status != nil && !book.Status(*q.Status).IsValid() {
		return nil, book.ErrInvalidStatus
	}

	return s.repository.FindAll(ctx, q)
}

func (s *bookServiceImpl) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	b, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if len(title) < book.MinTitleLength {
			return nil, book.ErrTitleTooShort
		}
		b.Title = title
	}
	if req.Description != nil {
		if len(*req.Description) > book.MaxDescriptionLength {
			return nil, book.ErrDescriptionTooLong
		}
		b.Description = *req.Description
	}
	if req.Status != nil {
		status := book.Status(*req.Status)
		if !status.IsValid() {
			return nil, book.ErrInvalidStatus
		}
		b.Status = status
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, book.ErrCategoryNotFound
		}
		b.CategoryID = *req.CategoryID
	}
	if req.Year != nil {
		b.Year = req.Year
	}
	if req.LongDescription != nil {
		b.LongDescription = req.LongDescription
	}
	if req.Pages != nil {
		b.Pages = req.Pages
	}
	if req.Publisher != nil {
		b.Publisher = req.Publisher
	}
	if req.ISBN != nil {
		b.ISBN = req.ISBN
	}
	if req.CoverImageURL != nil {
		b.CoverImageURL = *req.CoverImageURL
	}
	if req.SEOTitle != nil {
		b.SEOTitle = req.SEOTitle
	}
	if req.SEODescription != nil {
		b.SEODescription = req.SEODescription
	}
	if req.SEOKeywords != nil {
		b.SEOKeywords = req.SEOKeywords
	}

	if err := s.repository.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *bookServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repository.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{
		"book_id": id.String(),
	})

	return nil
}

func (s *bookServiceImpl) Count(ctx context.Context) (int, error) {
	return s.repository.Count(ctx)
}
