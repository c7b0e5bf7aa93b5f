package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/category"
	"authorsite-backend/pkg/logger"
)

type categoryServiceImpl struct {
	repository category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryServiceImpl{repository: repo}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, category.ErrMissingName
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, category.ErrNameTooShort
	}

	if _, err := s.repository.FindByName(ctx, name); err == nil {
		return nil, category.ErrCategoryExists
	}

	c := &category.Category{
		Name:        name,
		Description: req.Description,
	}

	if err := s.repository.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("category created", map[string]interface{}{
		"category_id": c.ID.String(),
		"name":        c.Name,
	})

	return c, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]category.Category, error) {
	return s.repository.FindAll(ctx)
}

func (s *categoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryRequest) (*category.Category, error) {
	c, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 {
			return nil, category.ErrNameTooShort
		}

		if existing, err := s.repository.FindByName(ctx, name); err == nil && existing.ID != id {
			return nil, category.ErrCategoryExists
		}
		c.Name = name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repository.FindByID(ctx, id); err != nil {
		return err
	}

	// Books keep a hard reference; deleting underneath them would
	// orphan the catalog.
	count, err := s.repository.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return category.ErrCategoryInUse
	}

	return s.repository.Delete(ctx, id)
}
